package platform

import (
	"fmt"

	gap "github.com/muesli/go-app-paths"
)

// BaseDirs resolves the user's config and local-data directories.
type BaseDirs interface {
	ConfigDir() (string, error)
	LocalDataDir() (string, error)
}

// AppPathsDirs resolves base directories with the user scope of
// go-app-paths.
type AppPathsDirs struct {
	scope *gap.Scope
}

// NewAppPathsDirs returns the user-scoped resolver.
func NewAppPathsDirs() *AppPathsDirs {
	return &AppPathsDirs{scope: gap.NewScope(gap.User, "")}
}

// ConfigDir returns the roaming config root: ~/Library/Application Support on
// macOS, %APPDATA% on Windows and $XDG_CONFIG_HOME elsewhere.
func (d *AppPathsDirs) ConfigDir() (string, error) {
	p, err := d.configRoot()
	if err != nil {
		return "", fmt.Errorf("%w: config: %w", ErrUserDirNotFound, err)
	}

	return p, nil
}

// LocalDataDir returns the local data root: ~/Library/Application Support on
// macOS, %LOCALAPPDATA% on Windows and $XDG_DATA_HOME elsewhere.
func (d *AppPathsDirs) LocalDataDir() (string, error) {
	p, err := d.scope.DataPath("")
	if err != nil {
		return "", fmt.Errorf("%w: data: %w", ErrUserDirNotFound, err)
	}

	return p, nil
}

// StaticDirs is a BaseDirs with fixed paths. Empty fields resolve to
// ErrUserDirNotFound.
type StaticDirs struct {
	Config    string
	LocalData string
}

func (d StaticDirs) ConfigDir() (string, error) {
	if d.Config == "" {
		return "", ErrUserDirNotFound
	}

	return d.Config, nil
}

func (d StaticDirs) LocalDataDir() (string, error) {
	if d.LocalData == "" {
		return "", ErrUserDirNotFound
	}

	return d.LocalData, nil
}
