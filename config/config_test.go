package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, []string{"https://ecitizen.go.ke/en/help-and-support"}, cfg.ECitizen.StartURLs)
	assert.Equal(t, "eCitizen General", cfg.ECitizen.Category)
	assert.Equal(t, []string{"SHA", "health", "Kenya"}, cfg.SHA.Tags)
	assert.NotEmpty(t, cfg.SHA.WaitSelector)
	assert.Equal(t, []string{"kra.go.ke"}, cfg.KRA.AllowedDomains)
	assert.Equal(t, float64(18), cfg.Slides.MinTitleFontSize)
	assert.Equal(t, 500, cfg.Traversal.MaxPages)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Port, cfg.Port)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9000"
redisAddr: ""
traversal:
  maxPages: 10
slides:
  credentialsFile: /etc/creds.json
  minTitleFontSize: 20
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 10, cfg.Traversal.MaxPages)
	assert.Equal(t, "/etc/creds.json", cfg.Slides.CredentialsFile)
	assert.Equal(t, float64(20), cfg.Slides.MinTitleFontSize)

	// Untouched sections keep their defaults.
	assert.Equal(t, 12*time.Hour, cfg.CacheTTL)
	assert.Equal(t, "eCitizen General", cfg.ECitizen.Category)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}
