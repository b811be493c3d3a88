package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "production", cfg.Sanity.Dataset)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.Equal(t, "587", cfg.SMTP.Port)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SANITY_PROJECT_ID", "abc123")
	t.Setenv("SANITY_DATASET", "staging")
	t.Setenv("GMAIL_USER", "me@example.com")
	t.Setenv("GMAIL_APP_PASSWORD", "hunter2")
	t.Setenv("CORS_ORIGINS", "https://example.com, https://www.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "abc123", cfg.Sanity.ProjectID)
	assert.Equal(t, "staging", cfg.Sanity.Dataset)
	assert.Equal(t, "me@example.com", cfg.SMTP.User)
	// Recipient falls back to the sender account when CONTACT_TO is unset.
	assert.Equal(t, "me@example.com", cfg.SMTP.To)
	assert.Equal(t, []string{"https://example.com", "https://www.example.com"}, cfg.CORS.Origins)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_YAMLFileWithEnvWinning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 3001
sanity:
  projectId: from-file
  useCdn: true
`), 0o644))

	t.Setenv("PORTFOLIO_CONFIG_PATH", path)
	t.Setenv("SANITY_PROJECT_ID", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.Server.Port)
	assert.True(t, cfg.Sanity.UseCDN)
	assert.Equal(t, "from-env", cfg.Sanity.ProjectID)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv("PORTFOLIO_CONFIG_PATH", "/does/not/exist.yaml")
	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.Error(t, Config{}.Validate())
	assert.NoError(t, Config{Sanity: SanityConfig{ProjectID: "abc"}}.Validate())
}
