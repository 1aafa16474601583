
package main

import (
	"context"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/Chinsusu/hello-worker/pkg/config"
	"github.com/Chinsusu/hello-worker/pkg/heartbeat"
	"github.com/Chinsusu/hello-worker/pkg/logging"
)

func main() {
	cfg := config.LoadWorker()
	logging.Setup(cfg.Debug)
	id := uuid.New().String()
	log := logging.Log.With().Str("worker_id", id).Logger()
	log.Info().Str("env", cfg.Env).Dur("interval", cfg.Interval).Msg("worker starting")
	if err := run(context.Background(), os.Stdout); err != nil {
		log.Error().Err(err).Msg("worker stopped")
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer) error {
	return heartbeat.New(out, config.Env).Run(ctx)
}
