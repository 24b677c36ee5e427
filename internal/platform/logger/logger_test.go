// Package logger_test contains tests for the logger package
package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/ntua-el20123/fridge-mate-app/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreDefault puts back the process-wide default logger after Setup replaces it.
func restoreDefault(t *testing.T) {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func TestSetup(t *testing.T) {
	restoreDefault(t)
	buf := &logger.TestLogBuffer{}

	l, err := logger.Setup(logger.LoggerConfig{Level: "info", Output: buf})
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Debug("debug test message")
	l.Info("info test message", "key", "value")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1, "debug messages should be filtered at info level")
	assert.Equal(t, "info test message", entries[0]["msg"])
	assert.Equal(t, "value", entries[0]["key"])
	assert.Same(t, l, slog.Default(), "Setup should install the logger as default")
}

func TestInvalidLogLevelParsing(t *testing.T) {
	restoreDefault(t)
	buf := &logger.TestLogBuffer{}

	l, err := logger.Setup(logger.LoggerConfig{Level: "invalid_level", Output: buf})
	require.NoError(t, err, "Setup should not fail for an invalid level")
	require.NotNil(t, l)

	logger.AssertLogContains(t, buf, "invalid log level configured")
	logger.AssertLogContains(t, buf, "invalid_level")

	buf.Reset()
	l.Debug("debug test message")
	l.Info("info test message")
	assert.NotContains(t, buf.String(), "debug test message")
	assert.Contains(t, buf.String(), "info test message")
}

func TestValidLogLevelParsing(t *testing.T) {
	testCases := []struct {
		name     string
		logLevel string
		want     slog.Level
	}{
		{name: "debug level", logLevel: "debug", want: slog.LevelDebug},
		{name: "info level", logLevel: "info", want: slog.LevelInfo},
		{name: "warn level", logLevel: "warn", want: slog.LevelWarn},
		{name: "error level", logLevel: "error", want: slog.LevelError},
		{name: "case insensitive - DEBUG", logLevel: "DEBUG", want: slog.LevelDebug},
		{name: "case insensitive - Info", logLevel: "Info", want: slog.LevelInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := logger.ParseLevel(tc.logLevel)
			assert.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	got, ok := logger.ParseLevel("verbose")
	assert.False(t, ok)
	assert.Equal(t, slog.LevelInfo, got)
}

func TestFromContextOrDefault(t *testing.T) {
	defaultLogger := slog.Default()
	customLogger, _ := logger.GetTestLogger(t)

	tests := []struct {
		name     string
		ctx      context.Context
		expected *slog.Logger
	}{
		{
			name:     "nil_context_returns_default",
			ctx:      nil,
			expected: defaultLogger,
		},
		{
			name:     "context_without_logger_returns_default",
			ctx:      context.Background(),
			expected: defaultLogger,
		},
		{
			name:     "context_with_logger_returns_context_logger",
			ctx:      logger.WithLogger(context.Background(), customLogger),
			expected: customLogger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			//nolint:staticcheck // nil context is part of the contract under test
			result := logger.FromContextOrDefault(tt.ctx, defaultLogger)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestWithLogger(t *testing.T) {
	t.Run("valid_logger", func(t *testing.T) {
		customLogger, _ := logger.GetTestLogger(t)
		ctx := logger.WithLogger(context.Background(), customLogger)

		assert.Equal(t, customLogger, logger.FromContext(ctx))
	})

	t.Run("nil_logger_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.WithLogger(context.Background(), nil)
		})
	})
}

func TestWithRequestID(t *testing.T) {
	t.Run("attaches id to context logger", func(t *testing.T) {
		l, buf := logger.GetTestLogger(t)
		ctx := logger.WithLogger(context.Background(), l)
		ctx = logger.WithRequestID(ctx, "req-123")

		assert.Equal(t, "req-123", logger.RequestIDFromContext(ctx))
		logger.FromContext(ctx).Info("with id")

		entries, err := buf.GetLogEntries()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "req-123", entries[0]["request_id"])
	})

	t.Run("attaches id to fallback logger", func(t *testing.T) {
		l, buf := logger.GetTestLogger(t)
		ctx := logger.WithRequestID(context.Background(), "req-456")

		logger.FromContextOrDefault(ctx, l).Info("fallback with id")
		logger.AssertLogContains(t, buf, "req-456")
	})

	t.Run("missing id", func(t *testing.T) {
		assert.Empty(t, logger.RequestIDFromContext(context.Background()))
	})
}
