
package config

import (
	"os"
	"strings"
	"time"
)

const (
	DefaultEnv        = "unknown"
	HeartbeatInterval = 2 * time.Second
)

type Worker struct {
	Env      string
	Interval time.Duration
	Debug    bool
}

// Env resolves ENV on every call. Only an unset variable falls back to
// DefaultEnv; ENV="" is reported as empty.
func Env() string {
	if v, ok := os.LookupEnv("ENV"); ok { return v }
	return DefaultEnv
}

func LoadWorker() Worker {
	return Worker{ Env: Env(), Interval: HeartbeatInterval, Debug: strings.EqualFold(os.Getenv("DEBUG"), "true") }
}
