package browserpath

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mateconpizza/mzd/internal/platform"
)

func TestProfilesFile(t *testing.T) {
	t.Setenv("HOME", "/home/test")
	t.Setenv("APPDATA", `C:\appdata`)
	t.Setenv("LOCALAPPDATA", `C:\localappdata`)

	for _, b := range platform.Builtins() {
		p, ok := ProfilesFile(b)
		assert.True(t, ok, b.String())
		if b == platform.Firefox {
			assert.Equal(t, "profiles.ini", filepath.Base(p))
		} else {
			assert.Equal(t, "Local State", filepath.Base(p))
		}
	}

	_, ok := ProfilesFile(platform.Custom("Brave"))
	assert.False(t, ok)
}
