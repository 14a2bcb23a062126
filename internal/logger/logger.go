// Package logger builds the zerolog loggers used by the executables.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

// ParseLevel maps a settings value to a zerolog level. Empty means info.
func ParseLevel(value string) (zerolog.Level, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(value)
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("parse log level %q: %w", value, err)
	}
	return level, nil
}

// New returns a console logger writing to out.
func New(out io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: timeFormat,
		NoColor:    out != os.Stderr && out != os.Stdout,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// OpenFile returns a logger appending to path, creating parent directories.
// The returned closer releases the file.
func OpenFile(path string, level zerolog.Level) (zerolog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	return New(file, level), file, nil
}
