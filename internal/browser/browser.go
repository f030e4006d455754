// Package browser reads the profiles of the installed browsers.
package browser

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/mateconpizza/mzd/internal/browser/blink"
	"github.com/mateconpizza/mzd/internal/browser/gecko"
	browserpath "github.com/mateconpizza/mzd/internal/browser/paths"
	"github.com/mateconpizza/mzd/internal/platform"
	"github.com/mateconpizza/mzd/internal/sys/files"
)

var ErrNoProfiles = errors.New("no profiles found")

// Profile is a browser profile.
type Profile struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Profiles returns the profiles of browser b, sorted by name.
func Profiles(b platform.Browser) ([]Profile, error) {
	f, ok := b.Family()
	if !ok {
		return nil, fmt.Errorf("%w: %s", platform.ErrUnsupportedCombination, b)
	}
	p, ok := browserpath.ProfilesFile(b)
	if !ok {
		return nil, fmt.Errorf("%w: %s", platform.ErrUnsupportedCombination, b)
	}
	if !files.Exists(p) {
		return nil, fmt.Errorf("%w: %q", ErrNoProfiles, p)
	}

	var (
		m   map[string]string
		err error
	)
	switch f {
	case platform.FamilyGecko:
		m, err = gecko.Profiles(p)
	case platform.FamilyChromium:
		m, err = blink.Profiles(p)
	}
	if err != nil {
		return nil, err
	}

	ps := make([]Profile, 0, len(m))
	for name, path := range m {
		ps = append(ps, Profile{Name: name, Path: path})
	}
	slices.SortFunc(ps, func(a, b Profile) int {
		return strings.Compare(a.Name, b.Name)
	})

	return ps, nil
}
