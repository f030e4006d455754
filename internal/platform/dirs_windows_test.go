//go:build windows

package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppPathsDirsWindows(t *testing.T) {
	t.Parallel()
	d := NewAppPathsDirs()

	p, err := d.ConfigDir()
	require.NoError(t, err)
	if roaming := os.Getenv("APPDATA"); roaming != "" {
		assert.Equal(t, filepath.Clean(roaming), filepath.Clean(p))
	}
	assert.NotEqual(t, "Config", filepath.Base(p))

	p, err = d.LocalDataDir()
	require.NoError(t, err)
	if local := os.Getenv("LOCALAPPDATA"); local != "" {
		assert.Equal(t, filepath.Clean(local), filepath.Clean(p))
	}
}
