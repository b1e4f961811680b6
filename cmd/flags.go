package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"

	"github.com/zbiljic/gitprompt/internal/config"
	"github.com/zbiljic/gitprompt/internal/log"
)

// LogLevelType represents the supported diagnostic log levels.
type LogLevelType enumflag.Flag

const (
	// LogLevelOff disables diagnostic output entirely.
	LogLevelOff LogLevelType = iota
	// LogLevelError reports failures of the subsidiary git queries.
	LogLevelError
	// LogLevelDebug traces every query and classification pass.
	LogLevelDebug
)

// LogLevelIds maps LogLevelType to their string representations.
var LogLevelIds = map[LogLevelType][]string{
	LogLevelOff:   {"off"},
	LogLevelError: {"error"},
	LogLevelDebug: {"debug"},
}

var logLevels = map[LogLevelType]zerolog.Level{
	LogLevelOff:   zerolog.Disabled,
	LogLevelError: zerolog.ErrorLevel,
	LogLevelDebug: zerolog.DebugLevel,
}

type rootOptions struct {
	Dir      string
	LogLevel LogLevelType
}

var rootFlags = rootOptions{
	LogLevel: LogLevelOff,
}

func rootAddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&rootFlags.Dir, "dir", "C", "", "Run as if started in the given directory")
	cmd.Flags().Var(enumflag.New(&rootFlags.LogLevel, "level", LogLevelIds, enumflag.EnumCaseInsensitive), "log-level", "Diagnostic output on stderr (off, error, debug)")
}

// applyLogLevel configures the global logger. The flag wins over the
// config file; both default to off so stdout stays machine-clean.
func applyLogLevel(cmd *cobra.Command, cfg *config.Config) {
	level := rootFlags.LogLevel

	if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
		if parsed, ok := logLevelFromName(cfg.LogLevel); ok {
			level = parsed
		}
	}

	log.SetLevel(logLevels[level])
}

func logLevelFromName(name string) (LogLevelType, bool) {
	for level, names := range LogLevelIds {
		for _, n := range names {
			if n == name {
				return level, true
			}
		}
	}
	return LogLevelOff, false
}
