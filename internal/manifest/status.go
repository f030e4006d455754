package manifest

import (
	"fmt"
	"path/filepath"

	"github.com/mateconpizza/mzd/internal/platform"
	"github.com/mateconpizza/mzd/internal/sys/files"
)

// Status describes the manifest of a browser without modifying anything.
type Status struct {
	Browser    platform.Browser `json:"browser"`
	Dir        string           `json:"dir"`
	Installed  bool             `json:"installed"`
	Present    bool             `json:"present"`
	Registered bool             `json:"registered"`
}

// Inspect reports whether browser b is installed and its manifest present and
// registered.
func (s *Store) Inspect(os platform.OS, b platform.Browser) (*Status, error) {
	if !b.IsBuiltin() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBrowser, b)
	}
	dir, err := s.UserDirPath(os, b)
	if err != nil {
		return nil, err
	}

	st := &Status{
		Browser:   b,
		Dir:       dir,
		Installed: files.Exists(filepath.Dir(dir)),
	}
	dest := filepath.Join(dir, Filename)
	st.Present = files.Exists(dest)
	if !st.Present {
		return st, nil
	}
	registered, err := s.registered(os, b, dest)
	if err != nil {
		return nil, err
	}
	st.Registered = registered

	return st, nil
}
