// Package browserpath locates the profile files of the built-in browsers.
package browserpath

import (
	"path/filepath"

	"github.com/mateconpizza/mzd/internal/platform"
)

// ProfilesFile returns the file listing the profiles of browser b:
// profiles.ini for Firefox, "Local State" for Chrome and Edge.
func ProfilesFile(b platform.Browser) (string, bool) {
	segs, ok := profileFiles[b.Kind()]
	if !ok {
		return "", false
	}
	root := profilesRoot(b)
	if root == "" {
		return "", false
	}

	return filepath.Join(append([]string{root}, segs...)...), true
}
