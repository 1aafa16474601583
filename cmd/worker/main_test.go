package main

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type oneShot struct {
	sb     strings.Builder
	cancel context.CancelFunc
}

func (w *oneShot) Write(p []byte) (int, error) {
	defer w.cancel()
	return w.sb.Write(p)
}

func TestRun_UsesEnv(t *testing.T) {
	for _, tc := range []struct {
		name, env, want string
		unset           bool
	}{
		{name: "unset", unset: true, want: "[env=unknown]"},
		{name: "production", env: "production", want: "[env=production]"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("ENV", tc.env)
			if tc.unset {
				require.NoError(t, os.Unsetenv("ENV"))
			}
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			w := &oneShot{cancel: cancel}

			require.ErrorIs(t, run(ctx, w), context.Canceled)
			line := w.sb.String()
			assert.True(t, strings.HasPrefix(line, "Hello, Worker! "+tc.want+" "), line)
			assert.True(t, strings.HasSuffix(line, "\n"))
		})
	}
}

type closedPipe struct{}

func (closedPipe) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestRun_WriteFailure(t *testing.T) {
	err := run(context.Background(), closedPipe{})
	assert.True(t, errors.Is(err, os.ErrClosed))
}
