// Package log holds the process-wide logger. Everything goes to
// stderr; stdout is reserved for the prompt line and must stay clean.
// Logging is disabled until SetLevel raises it.
package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(io.Discard)

// SetLevel configures the global logger for the given level.
// zerolog.Disabled routes everything to io.Discard.
func SetLevel(level zerolog.Level) {
	if level == zerolog.Disabled {
		logger = zerolog.New(io.Discard)
		return
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr}
	logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// Debug starts a debug-level log event.
func Debug() *zerolog.Event {
	return logger.Debug()
}

// Error starts an error-level log event.
func Error() *zerolog.Event {
	return logger.Error()
}
