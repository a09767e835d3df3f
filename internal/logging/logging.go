package logging

import (
	"io"
	"log/slog"
	"os"
)

// Verbose reports whether debug logging is enabled.
var Verbose bool

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Setup configures the debug logger. When verbose is true, debug-level
// records are emitted. When jsonFormat is true, records are written as
// JSON instead of logfmt-style text. A nil writer falls back to stderr.
func Setup(verbose, jsonFormat bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	Verbose = verbose

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if jsonFormat {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger = slog.New(handler)
}

// Debug logs a debug message. Only visible in verbose mode.
func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

// Info logs an info message.
func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}

// With returns a logger with the given attributes attached to every record.
func With(args ...any) *slog.Logger {
	return logger.With(args...)
}
