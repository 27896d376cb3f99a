// Package logging builds the zerolog loggers used by the model and the CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const permission = 0664

// DefaultLevel is used when no level is configured.
const DefaultLevel = "info"

// ParseLevel maps a level name ("debug", "info", "warn", ...) to a zerolog
// level. The empty string selects DefaultLevel.
func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logging: %w", err)
	}

	return lvl, nil
}

// New returns a timestamped logger writing JSON lines to w at level.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// Console is New with zerolog's human-readable console writer.
func Console(w io.Writer, level string) (zerolog.Logger, error) {
	return New(zerolog.ConsoleWriter{Out: w, NoColor: true}, level)
}

// Open appends to the file at path. The caller closes the returned file.
func Open(path, level string) (zerolog.Logger, *os.File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	l, err := New(zerolog.SyncWriter(f), level)
	if err != nil {
		_ = f.Close()
		return zerolog.Nop(), nil, err
	}

	return l, f, nil
}

// Nop returns a disabled logger.
func Nop() zerolog.Logger { return zerolog.Nop() }
