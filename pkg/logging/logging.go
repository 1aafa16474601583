
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Log writes diagnostics to stderr. Stdout carries only heartbeat lines.
var Log = New(os.Stderr, false)

func New(w io.Writer, debug bool) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if debug { lvl = zerolog.DebugLevel }
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).Level(lvl).With().Timestamp().Logger()
}

func Setup(debug bool) { Log = New(os.Stderr, debug) }
