// Package logger sets up the application's zerolog instance.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a console logger at the given level. Packages derive
// their own component loggers from it with With().Str("component", ...).
func New(level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a config string to a zerolog level, defaulting to
// info for anything unrecognized.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
