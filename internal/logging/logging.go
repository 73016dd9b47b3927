// Package logging builds the zerolog logger. Output goes to a file because
// anything written to stderr corrupts the Bubble Tea screen.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"widgetdeck/internal/config"
)

// New returns a JSON logger writing to cfg.File, plus a closer for the file.
// An empty File yields a disabled logger.
func New(cfg config.Log) (zerolog.Logger, io.Closer, error) {
	if cfg.File == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o700); err != nil {
		return zerolog.Nop(), io.NopCloser(nil), fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), fmt.Errorf("open log file: %w", err)
	}
	return NewWithWriter(f, level), f, nil
}

// NewWithWriter returns a logger on w at level. Used by tests.
func NewWithWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Str("app", "widgetdeck").Logger()
}

// ParseLevel maps config level names to zerolog levels. Empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}
