package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("VOYAGE_CONFIG", "")
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("VOYAGE_HTTP_ADDR", "")
	t.Setenv("VOYAGE_ADMIN_MONTHLY_QUOTA", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.Equal(t, 60, cfg.HTTP.RequestTimeoutSeconds)
	assert.Equal(t, 200, cfg.AI.AdminMonthlyQuota)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "voyage.yaml")
	content := []byte(`
http:
  addr: ":9000"
  cors_origins: ["https://a.example"]
ai:
  provider: gemini
  gemini:
    model: gemini-1.5-pro
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("VOYAGE_CONFIG", path)
	t.Setenv("AI_PROVIDER", "custom")
	t.Setenv("VOYAGE_HTTP_ADDR", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("VOYAGE_CORS_ORIGINS", "https://b.example, https://c.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.HTTP.Addr)
	assert.Equal(t, "custom", cfg.AI.Provider)
	assert.Equal(t, "gemini-1.5-pro", cfg.AI.Gemini.Model)
	assert.Equal(t, []string{"https://b.example", "https://c.example"}, cfg.HTTP.CORSOrigins)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("VOYAGE_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("VOYAGE_CONFIG", "")
	t.Setenv("VOYAGE_REQUEST_TIMEOUT_SECONDS", "0")
	_, err := Load()
	require.Error(t, err)
}
