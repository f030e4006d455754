//go:build !darwin && !windows

package platform

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppPathsDirsXDG(t *testing.T) {
	root := t.TempDir()
	cfg, data := filepath.Join(root, "cfg"), filepath.Join(root, "data")
	t.Setenv("XDG_CONFIG_HOME", cfg)
	t.Setenv("XDG_DATA_HOME", data)

	d := NewAppPathsDirs()
	p, err := d.ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, cfg, p)

	p, err = d.LocalDataDir()
	require.NoError(t, err)
	assert.Equal(t, data, p)

	c := NewCatalog(d)
	p, ok := c.BaseUserDir(Linux, Firefox)
	require.True(t, ok)
	assert.Equal(t, cfg, p)
	p, ok = c.BaseUserDir(Linux, Chrome)
	require.True(t, ok)
	assert.Equal(t, data, p)
}
