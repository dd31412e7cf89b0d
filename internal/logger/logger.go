// Package logger builds the optional zerolog debug log of a run.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing JSON lines at the given level to file.
// An empty file disables logging: the logger is a no-op and the closer does nothing.
// The closer must be called when the run is over.
func New(level, file string) (zerolog.Logger, func() error, error) {
	if file == "" {
		return zerolog.Nop(), func() error { return nil }, nil
	}

	logLevel, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	output, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return NewWriter(output, logLevel), output.Close, nil
}

// NewWriter returns a logger writing JSON lines at level to w.
func NewWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// init pins the timestamp format so log lines sort lexically.
func init() { //nolint:gochecknoinits // zerolog time format is package-global
	zerolog.TimeFieldFormat = time.RFC3339Nano
}
