// Package logging wraps log/slog behind a small interface so the logger
// can be injected and swapped in tests.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the logging surface used across the tool.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// Config holds logger configuration.
type Config struct {
	Level   slog.Level
	Output  io.Writer
	AddTime bool
}

type slogLogger struct {
	logger *slog.Logger
}

// NewLogger creates a logger with the given configuration. CLI output goes
// to stderr by default, without timestamps.
func NewLogger(config Config) Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: config.Level}
	if !config.AddTime {
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		}
	}

	return &slogLogger{logger: slog.New(slog.NewTextHandler(config.Output, opts))}
}

// NewDefaultLogger shows warnings and errors, keeping stdout clean for the
// prompt itself.
func NewDefaultLogger() Logger {
	return NewLogger(Config{Level: slog.LevelWarn})
}

// NewVerboseLogger shows progress and debug information.
func NewVerboseLogger() Logger {
	return NewLogger(Config{Level: slog.LevelDebug})
}

// NewQuietLogger only shows errors.
func NewQuietLogger() Logger {
	return NewLogger(Config{Level: slog.LevelError})
}

// NewDisabledLogger discards all output; useful in tests.
func NewDisabledLogger() Logger {
	return NewLogger(Config{Level: slog.Level(1000), Output: io.Discard})
}

func (l *slogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *slogLogger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *slogLogger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *slogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}
