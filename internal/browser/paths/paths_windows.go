package browserpath

import (
	"os"

	"github.com/mateconpizza/mzd/internal/platform"
)

var profileFiles = map[platform.Kind][]string{
	platform.KindFirefox: {"Mozilla", "Firefox", "profiles.ini"},
	platform.KindChrome:  {"Google", "Chrome", "User Data", "Local State"},
	platform.KindEdge:    {"Microsoft", "Edge", "User Data", "Local State"},
}

// profilesRoot returns %APPDATA% for Firefox and %LOCALAPPDATA% for the
// Chromium browsers.
func profilesRoot(b platform.Browser) string {
	if b.Kind() == platform.KindFirefox {
		return os.Getenv("APPDATA")
	}

	return os.Getenv("LOCALAPPDATA")
}
