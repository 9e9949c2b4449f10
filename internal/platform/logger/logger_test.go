package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graceshop/shop-api/internal/config"
	"github.com/graceshop/shop-api/internal/platform/logger"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		wantsSet slog.Level
	}{
		{"debug level", "debug", slog.LevelDebug},
		{"info level", "info", slog.LevelInfo},
		{"warn level", "warn", slog.LevelWarn},
		{"error level", "error", slog.LevelError},
		{"case insensitive", "WARN", slog.LevelWarn},
		{"invalid falls back to info", "verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.Setup(config.ServerConfig{LogLevel: tt.logLevel})
			require.NoError(t, err)
			require.NotNil(t, log)

			ctx := context.Background()
			assert.True(t, log.Enabled(ctx, tt.wantsSet))
			if tt.wantsSet > slog.LevelDebug {
				assert.False(t, log.Enabled(ctx, tt.wantsSet-4))
			}
		})
	}
}

func TestFromContext(t *testing.T) {
	base := slog.Default()

	// Without a logger in context, the default is returned
	assert.Same(t, base, logger.FromContext(context.Background()))

	// With a logger in context, that logger is returned
	custom := base.With(slog.String("component", "test"))
	ctx := logger.WithLogger(context.Background(), custom)
	assert.Same(t, custom, logger.FromContext(ctx))
}

func TestFromContextOrDefault(t *testing.T) {
	fallback := slog.Default().With(slog.String("component", "store"))

	// Falls back to the provided logger
	assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))

	// Falls back to the process default when given nil
	assert.Same(t, slog.Default(), logger.FromContextOrDefault(context.Background(), nil))

	// Context-carried logger wins
	custom := slog.Default().With(slog.String("trace_id", "abc"))
	ctx := logger.WithLogger(context.Background(), custom)
	assert.Same(t, custom, logger.FromContextOrDefault(ctx, fallback))
}
