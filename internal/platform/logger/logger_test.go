package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/streamly-api/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.name), "parseLevel(%q)", tt.name)
	}
}

func TestSetupConfiguresDefaultLogger(t *testing.T) {
	logger := Setup(config.ServerConfig{LogLevel: "debug"})

	assert.NotNil(t, logger)
	assert.Same(t, logger, slog.Default())
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}
