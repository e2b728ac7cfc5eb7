package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("AI_CHAT_MODEL", "")
	t.Setenv("AI_RECEIPT_MODEL", "")
	t.Setenv("AI_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderAnthropic, cfg.AI.Provider)
	assert.Equal(t, "claude-sonnet-4-20250514", cfg.AI.ChatModel)
	assert.Equal(t, "claude-3-5-haiku-20241022", cfg.AI.ReceiptModel)
	assert.Equal(t, 1024, cfg.AI.ChatMaxTokens)
	assert.Equal(t, 256, cfg.AI.ReceiptMaxTokens)
	assert.Zero(t, cfg.AI.Timeout)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
}

func TestLoadGigaChatModels(t *testing.T) {
	t.Setenv("AI_PROVIDER", ProviderGigaChat)
	t.Setenv("AI_CHAT_MODEL", "")
	t.Setenv("AI_RECEIPT_MODEL", "GigaChat-Pro")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "GigaChat", cfg.AI.ChatModel)
	assert.Equal(t, "GigaChat-Pro", cfg.AI.ReceiptModel)
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	t.Setenv("AI_PROVIDER", "openai")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown AI_PROVIDER")
}

func TestLoadRejectsBadTokenCeiling(t *testing.T) {
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("AI_RECEIPT_MAX_TOKENS", "0")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("AI_RECEIPT_MAX_TOKENS", "many")
	_, err = Load()
	require.Error(t, err)
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", d.DSN())

	d.URL = "postgres://u:p@db/n"
	assert.Equal(t, "postgres://u:p@db/n", d.DSN())
}
