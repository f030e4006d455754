package browserpath

import (
	"os"

	"github.com/mateconpizza/mzd/internal/platform"
)

var profileFiles = map[platform.Kind][]string{
	platform.KindFirefox: {".mozilla", "firefox", "profiles.ini"},
	platform.KindChrome:  {".config", "google-chrome", "Local State"},
	platform.KindEdge:    {".config", "microsoft-edge", "Local State"},
}

// profilesRoot returns the home directory on Linux.
func profilesRoot(platform.Browser) string {
	h, _ := os.UserHomeDir()
	return h
}
