package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Defaults(t *testing.T) {
	require.NoError(t, Init(""))

	assert.Equal(t, 10, Config.Rename.PrefixLength)
	assert.Equal(t, 30, Config.Scraper.TimeoutSeconds)
	assert.Equal(t, "whisper-1", Config.Transcriber.Model)
	assert.Equal(t, 300, Config.Transcriber.ChunkSeconds)
	assert.NotEmpty(t, Config.Transcriber.APIURL)
}

func TestInit_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
rename:
  prefix_length: 16
scraper:
  user_agent: custom-agent
notifications:
  skip_empty_run: true
  service:
    discord: https://example.com/webhook
`), 0o644))

	require.NoError(t, Init(path))

	assert.Equal(t, 16, Config.Rename.PrefixLength)
	assert.Equal(t, "custom-agent", Config.Scraper.UserAgent)
	assert.True(t, Config.Notifications.SkipEmptyRun)
	assert.Equal(t, "https://example.com/webhook", Config.Notifications.Service.Discord)

	// untouched keys keep their defaults
	assert.Equal(t, 30, Config.Scraper.TimeoutSeconds)
}

func TestInit_MissingFileUsesDefaults(t *testing.T) {
	require.NoError(t, Init(filepath.Join(t.TempDir(), "nope.yaml")))
	assert.Equal(t, 10, Config.Rename.PrefixLength)
}

func TestInit_APIKeyFromEnv(t *testing.T) {
	t.Setenv("FKIT_TRANSCRIBER_API_KEY", "secret-from-env")

	require.NoError(t, Init(""))
	assert.Equal(t, "secret-from-env", Config.Transcriber.APIKey)
}

func TestGetDefaultConfigDirectory(t *testing.T) {
	dir := GetDefaultConfigDirectory("fkit", "config.yaml")
	assert.NotEmpty(t, dir)
	assert.Contains(t, dir, "fkit")
}
