package platform

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// Root is the user directory a browser's native-messaging directory lives
// under.
type Root int

const (
	RootConfig Root = iota + 1
	RootLocalData
)

func (r Root) String() string {
	switch r {
	case RootConfig:
		return "config"
	case RootLocalData:
		return "local-data"
	}

	return "unknown"
}

// nativeDirs holds the path segments of each native-messaging-hosts
// directory, relative to the browser's root.
var nativeDirs = map[OS]map[Kind][]string{
	MacOS: {
		KindFirefox: {"Mozilla", "NativeMessagingHosts"},
		KindChrome:  {"Google", "Chrome", "NativeMessagingHosts"},
		KindEdge:    {"Microsoft Edge", "NativeMessagingHosts"},
	},
	Linux: {
		KindFirefox: {".mozilla", "native-messaging-hosts"},
		KindChrome:  {".config", "google-chrome", "NativeMessagingHosts"},
		KindEdge:    {".config", "microsoft-edge", "NativeMessagingHosts"},
	},
	Windows: {
		KindFirefox: {"Mozilla", "NativeMessagingHosts"},
		KindChrome:  {"Google", "Chrome", "NativeMessagingHosts"},
		KindEdge:    {"Microsoft", "Edge", "NativeMessagingHosts"},
	},
}

// DirName returns the native-messaging-hosts directory of browser b on os,
// relative to the browser's root directory.
func DirName(os OS, b Browser) (string, error) {
	segs, err := segments(os, b)
	if err != nil {
		return "", err
	}

	return filepath.Join(segs...), nil
}

func segments(os OS, b Browser) ([]string, error) {
	table, ok := nativeDirs[os]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCombination, os)
	}
	segs, ok := table[b.Kind()]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnsupportedCombination, os, b)
	}

	return segs, nil
}

// RootOf returns the root a browser roots under. It is the same on every
// supported OS.
func RootOf(b Browser) (Root, bool) {
	switch b.Kind() {
	case KindFirefox:
		return RootConfig, true
	case KindChrome, KindEdge:
		return RootLocalData, true
	case KindCustom:
		return 0, false
	}

	return 0, false
}

// RegistryKey returns the HKCU-relative key under which Windows browsers look
// up the native host named host.
func RegistryKey(b Browser, host string) (string, error) {
	segs, err := segments(Windows, b)
	if err != nil {
		return "", err
	}

	return `Software\` + strings.Join(segs, `\`) + `\` + host, nil
}

// Catalog resolves browser directories against the user's base directories.
type Catalog struct {
	dirs BaseDirs
}

// NewCatalog returns a Catalog backed by d.
func NewCatalog(d BaseDirs) *Catalog {
	return &Catalog{dirs: d}
}

// BaseUserDir returns the root directory of browser b. Custom browsers have
// no catalog entry and report false.
func (c *Catalog) BaseUserDir(os OS, b Browser) (string, bool) {
	if !os.Valid() {
		return "", false
	}
	root, ok := RootOf(b)
	if !ok {
		return "", false
	}

	var (
		p   string
		err error
	)
	switch root {
	case RootConfig:
		p, err = c.dirs.ConfigDir()
	case RootLocalData:
		p, err = c.dirs.LocalDataDir()
	}
	if err != nil || p == "" {
		slog.Warn("resolving base dir", "browser", b, "root", root, "error", err)
		return "", false
	}

	return p, true
}
