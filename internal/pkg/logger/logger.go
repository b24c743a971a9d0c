package logx

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/murkotick/inventory-ledger/internal/config"
)

type Options struct {
	Environment config.Environment
	// Writer defaults to stderr so log lines never mix with presenter output.
	Writer io.Writer
}

// New builds a logger: JSON at info level in production, a console writer
// with timestamps and callers at debug level elsewhere.
func New(opts Options) zerolog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	if opts.Environment.IsProduction() {
		return zerolog.New(w).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Caller().Logger().Level(zerolog.DebugLevel)
}

// Init replaces the global logger and returns it.
func Init(opts Options) zerolog.Logger {
	log.Logger = New(opts)
	return log.Logger
}
