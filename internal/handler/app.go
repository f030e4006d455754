// Package handler wires the provisioning engine and the sidecar bridge
// together and serves them to the command line and the request loop.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/mateconpizza/mzd/internal/actions"
	"github.com/mateconpizza/mzd/internal/config"
	"github.com/mateconpizza/mzd/internal/db"
	"github.com/mateconpizza/mzd/internal/manifest"
	"github.com/mateconpizza/mzd/internal/platform"
	"github.com/mateconpizza/mzd/internal/provision"
	"github.com/mateconpizza/mzd/internal/sidecar"
	"github.com/mateconpizza/mzd/internal/sys"
	"github.com/mateconpizza/mzd/internal/sys/files"
)

// App holds the components shared by every command.
type App struct {
	OS      platform.OS
	Store   *manifest.Store
	Session *provision.Session
	Bridge  *sidecar.Bridge
	Actions *actions.Actions
	DBPath  string
}

// OptFn is an option function for the app.
type OptFn func(*App)

// WithStore replaces the manifest store.
func WithStore(s *manifest.Store) OptFn {
	return func(a *App) {
		a.Store = s
	}
}

// WithBridge replaces the sidecar bridge.
func WithBridge(b *sidecar.Bridge) OptFn {
	return func(a *App) {
		a.Bridge = b
	}
}

// WithOS overrides the detected operating system.
func WithOS(o platform.OS) OptFn {
	return func(a *App) {
		a.OS = o
	}
}

// NewApp builds the app from the configuration.
func NewApp(cfg *config.ConfigFile, dbPath string, opts ...OptFn) (*App, error) {
	os, err := platform.Current()
	if err != nil {
		return nil, err
	}

	a := &App{OS: os, DBPath: dbPath}
	for _, fn := range opts {
		fn(a)
	}
	if a.Store == nil {
		a.Store = manifest.New(
			platform.NewCatalog(platform.NewAppPathsDirs()),
			manifest.WithHost(cfg.NativeHost),
			manifest.WithTemplates(manifest.NewBundle(cfg.TemplatesDir)),
		)
	}
	if a.Bridge == nil {
		a.Bridge = sidecar.New(SidecarPath(cfg.Sidecar), sidecar.WithTimeout(time.Duration(cfg.QueryTimeout)))
	}
	a.Session = provision.NewSession(a.Store, a.OS)
	a.Actions = actions.New(a.Bridge)

	return a, nil
}

// SidecarPath resolves the sidecar executable: an absolute path is used as
// is, otherwise the binary next to the running executable, then $PATH.
func SidecarPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	sibling, err := sys.SiblingPath(name)
	if err == nil && files.Exists(sibling) {
		return sibling
	}
	if p := sys.BinPath(name); p != "" {
		return p
	}
	slog.Warn("sidecar not found", "name", name)
	if sibling != "" {
		return sibling
	}

	return name
}

// CustomManifests returns the registered custom manifests. A missing database
// means no custom manifests.
func (a *App) CustomManifests(ctx context.Context) ([]*provision.CustomManifest, error) {
	if a.DBPath == "" || !files.Exists(a.DBPath) {
		return nil, nil
	}
	r, err := db.New(a.DBPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return r.List(ctx)
}

// OpenDB opens the custom manifests database, creating it if needed.
func (a *App) OpenDB(ctx context.Context) (*db.SQLite, error) {
	r, err := db.Open(ctx, a.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	return r, nil
}

// BrowserManifests lists the built-in manifests plus the given custom ones,
// or the registered ones when customs is nil.
func (a *App) BrowserManifests(ctx context.Context, customs []*provision.CustomManifest) ([]*manifest.Result, error) {
	if customs == nil {
		var err error
		customs, err = a.CustomManifests(ctx)
		if err != nil {
			slog.Warn("loading custom manifests", "error", err)
		}
	}

	return provision.BrowserManifests(a.Store, a.OS, customs)
}
