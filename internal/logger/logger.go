// Package logger configures the process-wide slog logger with a tint
// console handler. Both binaries call Init once at startup; packages
// receive the logger through their Options rather than the global.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/lmittmann/tint"
)

var (
	once   sync.Once
	logger *slog.Logger
)

// Options controls handler construction.
type Options struct {
	Level      slog.Leveler // default: slog.LevelInfo
	Writer     io.Writer    // default: os.Stderr, keeping stdout for program output
	TimeFormat string       // default: 15:04:05
}

// Init builds the tint handler and installs it as the slog default.
// Subsequent calls are no-ops.
func Init(opts *Options) {
	once.Do(func() {
		if opts == nil {
			opts = &Options{}
		}

		writer := opts.Writer
		if writer == nil {
			writer = os.Stderr
		}

		level := opts.Level
		if level == nil {
			level = slog.LevelInfo
		}

		handler := tint.NewHandler(writer, &tint.Options{
			Level:      level,
			TimeFormat: opts.TimeFormat,
		})

		logger = slog.New(handler)
		slog.SetDefault(logger)
	})
}

// L returns the configured logger, or the slog default if Init has not run.
func L() *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// ParseLevel maps a config/flag level string to a slog level.
// Unknown strings fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
