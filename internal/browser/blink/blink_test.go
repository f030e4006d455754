package blink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const localStateJSON = `{
  "browser": {"enabled_labs_experiments": []},
  "profile": {
    "info_cache": {
      "Default":   {"name": "Person 1", "is_using_default_name": true},
      "Profile 2": {"name": "Work"},
      "Profile 3": {}
    }
  }
}`

func TestProfiles(t *testing.T) {
	t.Parallel()
	p := filepath.Join(t.TempDir(), "Local State")
	require.NoError(t, os.WriteFile(p, []byte(localStateJSON), 0o644))

	got, err := Profiles(p)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"Person 1":  "Default",
		"Work":      "Profile 2",
		"Profile 3": "Profile 3",
	}, got)
}

func TestParseProfilesInvalid(t *testing.T) {
	t.Parallel()
	_, err := parseProfiles([]byte("{"))
	assert.Error(t, err)

	got, err := parseProfiles([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, got)
}
