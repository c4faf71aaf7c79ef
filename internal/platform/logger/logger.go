// Package logger provides structured logging setup for the tool.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/deckpush/internal/config"
)

// Setup initializes the process-wide structured logger from the logging
// configuration and installs it as the slog default. All diagnostics go to
// stderr; stdout is reserved for run summaries.
//
// Configuration validation normally rejects bad levels and formats before
// this runs, so unknown values fall back to info and text with a warning
// rather than failing.
func Setup(cfg config.LogConfig) *slog.Logger {
	// Parse the log level from configuration (case-insensitive)
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo

		// Create a temporary logger to output the warning
		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "info")
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)

	// Set this logger as the default so package-level slog calls share the
	// same handler
	slog.SetDefault(logger)

	return logger
}
