// Package logger provides the process-wide structured logger used by the
// development server. CLI commands render their own user-facing output; this
// logger carries request and lifecycle events on stderr so they never mix
// with command output.
package logger

import (
	"log/slog"
	"os"
)

// Log is the process-wide logger. It defaults to text output at info level
// until Init replaces it.
var Log *slog.Logger

func init() {
	Log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// Init configures the global logger. Format is "text" or "json"; anything
// else falls back to text.
func Init(format string, level slog.Level) {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	Log = slog.New(handler)
}

// Info logs at info level using the global logger.
func Info(msg string, args ...any) {
	Log.Info(msg, args...)
}

// Warn logs at warn level using the global logger.
func Warn(msg string, args ...any) {
	Log.Warn(msg, args...)
}

// Error logs at error level using the global logger.
func Error(msg string, args ...any) {
	Log.Error(msg, args...)
}

// Debug logs at debug level using the global logger.
func Debug(msg string, args ...any) {
	Log.Debug(msg, args...)
}
