package main

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/ntua-el20123/fridge-mate-app/internal/config"
	"github.com/ntua-el20123/fridge-mate-app/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "token-generator-test-secret-0123456789"

// isolate runs in an empty directory with no Gemini key configured, since
// minting a token does not involve the LLM settings.
func isolate(t *testing.T, secret string) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("FRIDGEMATE_LLM_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("FRIDGEMATE_AUTH_JWT_SECRET", secret)
	t.Setenv("FRIDGEMATE_AUTH_TOKEN_LIFETIME_MINUTES", "")
	t.Setenv("FRIDGEMATE_LOG_LEVEL", "")
	t.Setenv("FRIDGEMATE_SERVER_PORT", "")

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestRun_PrintsValidToken(t *testing.T) {
	isolate(t, testSecret)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"kitchen-display"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	token := strings.TrimSpace(stdout.String())
	svc, err := auth.NewTokenService(config.AuthConfig{
		JWTSecret:            testSecret,
		TokenLifetimeMinutes: config.DefaultTokenLifetimeMinutes,
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "kitchen-display", claims.Subject)
}

func TestRun_IgnoresMissingGeminiKey(t *testing.T) {
	isolate(t, testSecret)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"kitchen-display"}, &stdout, &stderr)

	assert.Equal(t, 0, code, stderr.String())
	assert.NotEmpty(t, strings.TrimSpace(stdout.String()))
	assert.NotContains(t, stderr.String(), "API key")
}

func TestRun_Usage(t *testing.T) {
	isolate(t, testSecret)

	for _, args := range [][]string{nil, {""}, {"a", "b"}} {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 2, run(context.Background(), args, &stdout, &stderr))
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "usage:")
	}
}

func TestRun_NoSecretConfigured(t *testing.T) {
	isolate(t, "")
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"client"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "jwt_secret is not configured")
}
