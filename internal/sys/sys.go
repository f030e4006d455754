// Package sys wraps the host operating system: binaries on $PATH, the home
// directory, the clipboard and the default browser.
package sys

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/atotto/clipboard"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/browser"
)

var (
	ErrCopyToClipboard = errors.New("copy to clipboard")
	ErrHomeNotFound    = errors.New("home directory not found")
	ErrExecutable      = errors.New("failed to locate executable")
)

// Env retrieves an environment variable.
//
// If the environment variable is not set, returns the default value.
func Env(s, def string) string {
	if v, ok := os.LookupEnv(s); ok {
		return v
	}

	return def
}

// BinPath returns the path of the binary, empty if not found in $PATH.
func BinPath(s string) string {
	p, err := exec.LookPath(s)
	if err != nil {
		return ""
	}
	slog.Debug("lookpath", "bin", s, "path", p)

	return p
}

// BinExists checks if the binary exists in $PATH.
func BinExists(s string) bool {
	return BinPath(s) != ""
}

// WmctrlInstalled reports whether wmctrl is available. It is used to raise
// the browser window after switching tabs on X11.
func WmctrlInstalled() bool {
	return BinExists("wmctrl")
}

// HomeDir returns the current user's home directory.
func HomeDir() (string, error) {
	h, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHomeNotFound, err)
	}

	return h, nil
}

// SiblingPath returns the path of the executable name placed next to the
// running binary. On Windows the ".exe" suffix is added when missing.
func SiblingPath(name string) (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecutable, err)
	}
	if runtime.GOOS == "windows" && filepath.Ext(name) == "" {
		name += ".exe"
	}

	return filepath.Join(filepath.Dir(exe), name), nil
}

// OpenInBrowser opens a URL in the default browser.
func OpenInBrowser(s string) error {
	if err := browser.OpenURL(s); err != nil {
		return fmt.Errorf("%w: opening in browser", err)
	}

	return nil
}

// CopyClipboard copies a string to the clipboard.
func CopyClipboard(s string) error {
	if err := clipboard.WriteAll(s); err != nil {
		return fmt.Errorf("%w: %w", ErrCopyToClipboard, err)
	}
	slog.Debug("text copied to clipboard", "text", s)

	return nil
}
