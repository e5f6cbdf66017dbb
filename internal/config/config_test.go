package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_CONNECTION_STRING", "host=localhost user=app dbname=app")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	t.Setenv("CHATBOT_PROVIDER", "gemini")
	t.Setenv("GOOGLE_GEMINI_API_KEY", "test-key")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "header", cfg.Auth.TokenTransport)
	assert.Equal(t, "gemini", cfg.Chatbot.Provider)
	assert.Equal(t, 30*time.Second, cfg.Chatbot.Timeout)
}

func TestLoadMissingSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadMissingProviderKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GOOGLE_GEMINI_API_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadBadTransport(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("AUTH_TOKEN_TRANSPORT", "query-param")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadNonPositiveTimeout(t *testing.T) {
	setRequiredEnv(t)

	t.Setenv("CHATBOT_TIMEOUT_SECONDS", "0")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("CHATBOT_TIMEOUT_SECONDS", "-5")
	_, err = Load()
	assert.Error(t, err)
}
