//go:build darwin

package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppPathsDirsDarwin(t *testing.T) {
	t.Parallel()
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	support := filepath.Join(home, "Library", "Application Support")

	d := NewAppPathsDirs()
	p, err := d.ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, support, p)

	p, err = d.LocalDataDir()
	require.NoError(t, err)
	assert.Equal(t, support, p)

	c := NewCatalog(d)
	p, ok := c.BaseUserDir(MacOS, Firefox)
	require.True(t, ok)
	assert.Equal(t, support, p)
	assert.NotContains(t, p, "Preferences")
}
