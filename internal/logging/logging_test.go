package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		level   string
		enabled slog.Level
		muted   slog.Level
	}{
		{level: "debug", enabled: slog.LevelDebug, muted: slog.LevelDebug - 1},
		{level: "info", enabled: slog.LevelInfo, muted: slog.LevelDebug},
		{level: "warn", enabled: slog.LevelWarn, muted: slog.LevelInfo},
		{level: "error", enabled: slog.LevelError, muted: slog.LevelWarn},
		{level: "", enabled: slog.LevelInfo, muted: slog.LevelDebug},
		{level: "WARN", enabled: slog.LevelWarn, muted: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level_"+tt.level, func(t *testing.T) {
			l := New(tt.level)
			assert.True(t, l.Handler().Enabled(ctx, tt.enabled))
			assert.False(t, l.Handler().Enabled(ctx, tt.muted))
		})
	}
}

func TestContextRoundTrip(t *testing.T) {
	l := New("info").With("service", "cart")

	ctx := IntoContext(context.Background(), l)
	require.Same(t, l, FromContext(ctx))

	// empty context falls back to the default logger
	require.NotNil(t, FromContext(context.Background()))
}
