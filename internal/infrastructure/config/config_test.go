package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, 10, cfg.Feed.PostsPerPage)
	assert.Equal(t, 50, cfg.Feed.MaxPageSize)
	assert.Equal(t, 2*time.Second, cfg.Search.Timeout)
	assert.Equal(t, []string{"http://elasticsearch:9200"}, cfg.Search.Addresses)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `
env: test
feed:
  posts_per_page: 25
search:
  enabled: false
  timeout: 500ms
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, 25, cfg.Feed.PostsPerPage)
	assert.False(t, cfg.Search.Enabled)
	assert.Equal(t, 500*time.Millisecond, cfg.Search.Timeout)
	assert.Equal(t, 50, cfg.Feed.MaxPageSize)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("MICROBLOG_FEED_MAX_PAGE_SIZE", "7")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Feed.MaxPageSize)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("feed: [unclosed"), 0o600))

	_, err := Load(dir)
	assert.Error(t, err)
}
