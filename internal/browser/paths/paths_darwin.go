package browserpath

import (
	"os"
	"path/filepath"

	"github.com/mateconpizza/mzd/internal/platform"
)

var profileFiles = map[platform.Kind][]string{
	platform.KindFirefox: {"Firefox", "profiles.ini"},
	platform.KindChrome:  {"Google", "Chrome", "Local State"},
	platform.KindEdge:    {"Microsoft Edge", "Local State"},
}

// profilesRoot returns the application support directory on macOS.
func profilesRoot(platform.Browser) string {
	h, _ := os.UserHomeDir()
	if h == "" {
		return ""
	}

	return filepath.Join(h, "Library", "Application Support")
}
