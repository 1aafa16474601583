
// Package heartbeat emits a timestamped liveness line on a fixed interval.
package heartbeat

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Chinsusu/hello-worker/pkg/config"
)

const (
	Label = "Hello, Worker!"
	// TimeLayout mirrors the classic Date string: weekday, date, time, offset, zone.
	TimeLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"
)

func Format(env string, at time.Time) string {
	return fmt.Sprintf("%s [env=%s] %s", Label, env, at.Format(TimeLayout))
}

type Loop struct {
	Out      io.Writer
	Lookup   func() string
	Now      func() time.Time
	Interval time.Duration
}

func New(out io.Writer, lookup func() string) *Loop {
	return &Loop{ Out: out, Lookup: lookup, Now: time.Now, Interval: config.HeartbeatInterval }
}

// Beat writes a single heartbeat line.
func (l *Loop) Beat() error {
	if _, err := fmt.Fprintln(l.Out, Format(l.Lookup(), l.Now())); err != nil {
		return fmt.Errorf("write heartbeat: %w", err)
	}
	return nil
}

// Run alternates Beat and a full Interval sleep until a write fails or ctx
// is done. The sleep restarts each cycle, so time spent in Beat is not
// subtracted from it.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil { return err }
		if err := l.Beat(); err != nil { return err }
		t := time.NewTimer(l.Interval)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
}
