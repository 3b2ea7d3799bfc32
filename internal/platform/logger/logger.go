// Package logger provides structured logging functionality for the
// application.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/streamly-api/internal/config"
)

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured JSON logger with the
// appropriate log level and sets it as the default logger for the
// application.
func Setup(cfg config.ServerConfig) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))

	// Set as the process default so package-level slog calls use it too.
	slog.SetDefault(logger)

	return logger
}

// parseLevel maps a configured level name to a slog.Level, case-insensitively.
// Unknown names fall back to info with a warning on the default handler.
func parseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		slog.Warn("invalid log level configured, using default level",
			"configured_level", name,
			"default_level", "info")
		return slog.LevelInfo
	}
}
