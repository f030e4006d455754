package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateconpizza/mzd/internal/config"
)

func TestLoadDataPathFromEnv(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(config.App.Env.Home, tmp)

	p, err := loadDataPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "mzd"), p)
}

func TestGetConfig(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	_, err := getConfig(filepath.Join(dir, "missing.yml"))
	require.ErrorIs(t, err, ErrConfigFileNotFound)

	p := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(p, []byte("sidecar: /opt/cli\nquery_timeout: 5s\n"), 0o600))
	cfg, err := getConfig(p)
	require.NoError(t, err)
	assert.Equal(t, "/opt/cli", cfg.Sidecar)
	assert.Equal(t, config.DefaultNativeHost, cfg.NativeHost)
	assert.Equal(t, config.Duration(5*time.Second), cfg.QueryTimeout)
	assert.Equal(t, config.DefaultMaxRequests, cfg.MaxRequests)

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("query_timeout: -1s\n"), 0o600))
	_, err = getConfig(bad)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestCommandTree(t *testing.T) {
	t.Parallel()
	for _, path := range [][]string{
		{"init"},
		{"manifest", "write"},
		{"manifest", "write-all"},
		{"manifest", "custom"},
		{"manifest", "list"},
		{"custom", "add"},
		{"custom", "remove"},
		{"query"},
		{"exec"},
		{"tabs", "switch"},
		{"bookmarks", "new"},
		{"history"},
		{"doctor"},
		{"serve"},
	} {
		c, rest, err := Root.Find(path)
		require.NoError(t, err, path)
		assert.Empty(t, rest, path)
		assert.Equal(t, path[len(path)-1], c.Name())
	}
}
