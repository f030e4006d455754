// Package manifest renders and writes the native-messaging manifests that let
// a browser locate the native host.
package manifest

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/mateconpizza/mzd/internal/platform"
	"github.com/mateconpizza/mzd/internal/sys"
	"github.com/mateconpizza/mzd/internal/sys/files"
)

const (
	// Filename is the manifest filename inside a native-messaging directory.
	Filename = "mozeidon.json"
	// DefaultHost is the native host binary shipped next to the application.
	DefaultHost = "mozeidon-native-app"
)

// HostPathFn returns the absolute path of the native host executable.
type HostPathFn func() (string, error)

// Store writes manifests into the browsers' native-messaging directories.
type Store struct {
	catalog   *platform.Catalog
	templates Templates
	registry  platform.Registry
	hostPath  HostPathFn
	host      string
}

// OptFn is an option function for the store.
type OptFn func(*Store)

// WithTemplates sets the template source.
func WithTemplates(t Templates) OptFn {
	return func(s *Store) {
		s.templates = t
	}
}

// WithRegistry sets the registry used on systems that need one.
func WithRegistry(r platform.Registry) OptFn {
	return func(s *Store) {
		s.registry = r
	}
}

// WithHostPath sets the resolver of the native host executable path.
func WithHostPath(fn HostPathFn) OptFn {
	return func(s *Store) {
		s.hostPath = fn
	}
}

// WithHost sets the native host name. It names the executable placed next to
// the running binary and the registry key.
func WithHost(name string) OptFn {
	return func(s *Store) {
		if name != "" {
			s.host = name
		}
	}
}

// New returns a Store resolving directories with c.
func New(c *platform.Catalog, opts ...OptFn) *Store {
	s := &Store{
		catalog:   c,
		templates: NewBundle(""),
		registry:  platform.NewRegistry(),
		host:      DefaultHost,
	}
	for _, fn := range opts {
		fn(s)
	}
	if s.hostPath == nil {
		host := s.host
		s.hostPath = func() (string, error) {
			return sys.SiblingPath(host)
		}
	}

	return s
}

// Host returns the native host name.
func (s *Store) Host() string {
	return s.host
}

// UserDirPath returns the native-messaging directory of browser b. An OS and
// browser pair without a catalog entry is reported before the base directory
// is resolved.
func (s *Store) UserDirPath(os platform.OS, b platform.Browser) (string, error) {
	dir, err := platform.DirName(os, b)
	if err != nil {
		return "", err
	}
	base, ok := s.catalog.BaseUserDir(os, b)
	if !ok {
		return "", fmt.Errorf("%w: %s on %s", platform.ErrUserDirNotFound, b, os)
	}

	return filepath.Join(base, dir), nil
}

// Write makes sure the manifest for browser b exists and, where the system
// uses a registry, is registered. A browser whose parent directory is absent
// is reported as not installed.
func (s *Store) Write(os platform.OS, b platform.Browser) (*Result, error) {
	if !b.IsBuiltin() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBrowser, b)
	}
	dir, err := s.UserDirPath(os, b)
	if err != nil {
		return nil, err
	}

	if !files.Exists(filepath.Dir(dir)) {
		slog.Debug("browser not installed", "browser", b, "parent", filepath.Dir(dir))
		return NotInstalled(b), nil
	}

	dest := filepath.Join(dir, Filename)
	if files.Exists(dest) {
		content, err := files.ReadString(dest)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIO, err)
		}
		registered, err := s.registered(os, b, dest)
		if err != nil {
			return nil, err
		}
		if registered {
			slog.Debug("manifest already present", "browser", b, "path", dest)
			return Present(b, dest, content), nil
		}
		slog.Info("manifest not registered, rewriting", "browser", b, "path", dest)
	}

	content, err := s.render(b)
	if err != nil {
		return nil, err
	}
	if err := files.MkdirAll(dir); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := files.WriteString(dest, content); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	if !os.UsesRegistry() {
		slog.Info("manifest written", "browser", b, "path", dest)
		return Written(b, dest, content), nil
	}

	key, err := s.register(b, dest)
	if err != nil {
		return nil, err
	}
	slog.Info("manifest registered", "browser", b, "key", key, "path", dest)

	return Written(b, key, content), nil
}

// WriteCustom writes content as the manifest inside relDir, relative to the
// base directory of browser b's root. relDir must already exist.
func (s *Store) WriteCustom(os platform.OS, relDir, content string, b platform.Browser) (*Result, error) {
	if !b.IsBuiltin() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBrowser, b)
	}
	if _, err := platform.DirName(os, b); err != nil {
		return nil, err
	}
	base, ok := s.catalog.BaseUserDir(os, b)
	if !ok {
		return nil, fmt.Errorf("%w: %s on %s", platform.ErrUserDirNotFound, b, os)
	}

	dir := filepath.Join(base, relDir)
	if !files.IsDir(dir) {
		return nil, fmt.Errorf("%w: %q", ErrDirectoryNotFound, dir)
	}

	dest := filepath.Join(dir, Filename)
	if err := files.WriteString(dest, content); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	slog.Info("custom manifest written", "browser", b, "path", dest)

	return Written(b, dest, content), nil
}

// Read returns the manifest inside dir, if any.
func Read(dir string) (path, content string, ok bool, err error) {
	path = filepath.Join(dir, Filename)
	if !files.Exists(path) {
		return "", "", false, nil
	}
	content, err = files.ReadString(path)
	if err != nil {
		return "", "", false, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return path, content, true, nil
}

// render returns the manifest for browser b with the native host path
// substituted.
func (s *Store) render(b platform.Browser) (string, error) {
	name, err := templateName(b)
	if err != nil {
		return "", err
	}
	tmpl, err := s.templates.Load(name)
	if err != nil {
		return "", err
	}
	exe, err := s.hostPath()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSidecarNotFound, err)
	}

	return Render(tmpl, exe), nil
}

// registered reports whether the registry points browser b at dest. Systems
// without a registry trust the file on disk.
func (s *Store) registered(os platform.OS, b platform.Browser, dest string) (bool, error) {
	if !os.UsesRegistry() {
		return true, nil
	}
	key, err := platform.RegistryKey(b, s.host)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrUnsupportedBrowser, err)
	}
	v, ok, err := s.registry.Lookup(key)
	if err != nil {
		return false, fmt.Errorf("%w: registry: %w", ErrIO, err)
	}

	return ok && samePath(v, dest), nil
}

func (s *Store) register(b platform.Browser, dest string) (string, error) {
	key, err := platform.RegistryKey(b, s.host)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsupportedBrowser, err)
	}
	if err := s.registry.Set(key, dest); err != nil {
		return "", fmt.Errorf("%w: registry: %w", ErrIO, err)
	}

	return platform.RegistryRoot + key, nil
}

// samePath compares registry paths, which are case-insensitive.
func samePath(a, b string) bool {
	return strings.EqualFold(filepath.Clean(a), filepath.Clean(b))
}
