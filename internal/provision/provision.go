// Package provision runs the manifest store over every built-in browser and
// lists the manifests known to the user.
package provision

import (
	"fmt"
	"log/slog"

	"github.com/mateconpizza/mzd/internal/manifest"
	"github.com/mateconpizza/mzd/internal/platform"
	"github.com/mateconpizza/mzd/internal/sys/files"
)

// Writer writes the manifest of a single browser.
type Writer interface {
	Write(os platform.OS, b platform.Browser) (*manifest.Result, error)
}

// CustomManifest references a manifest the user installed for a browser
// outside the built-in set.
type CustomManifest struct {
	ID          int    `db:"id"                    json:"id,omitempty"`
	BrowserName string `db:"browser_name"          json:"browserName"`
	RelativeDir string `db:"manifest_relative_dir" json:"manifestRelativeDir"`
	CreatedAt   string `db:"created_at"            json:"createdAt,omitempty"`
}

// Browser returns the browser the entry refers to.
func (c *CustomManifest) Browser() platform.Browser {
	return platform.Lookup(c.BrowserName)
}

// WriteAll writes the manifest of every built-in browser, in order. The first
// failure aborts the batch.
func WriteAll(w Writer, os platform.OS) ([]*manifest.Result, error) {
	builtins := platform.Builtins()
	results := make([]*manifest.Result, 0, len(builtins))
	for _, b := range builtins {
		r, err := w.Write(os, b)
		if err != nil {
			return nil, fmt.Errorf("writing %s manifest: %w", b, err)
		}
		results = append(results, r)
	}

	return results, nil
}

// BrowserManifests runs WriteAll and appends the custom manifests found on
// disk. Custom entries that can not be read are logged and skipped.
func BrowserManifests(w Writer, os platform.OS, customs []*CustomManifest) ([]*manifest.Result, error) {
	results, err := WriteAll(w, os)
	if err != nil {
		return nil, err
	}

	for _, c := range customs {
		r, err := readCustom(c)
		if err != nil {
			slog.Warn("skipping custom manifest", "browser", c.BrowserName, "path", c.RelativeDir, "error", err)
			continue
		}
		results = append(results, r)
	}

	return results, nil
}

// readCustom reads the manifest referenced by c. The path may name the
// manifest file or the directory holding it.
func readCustom(c *CustomManifest) (*manifest.Result, error) {
	p := files.ExpandHomeDir(c.RelativeDir)
	if p == "" {
		return nil, files.ErrPathEmpty
	}
	if files.IsDir(p) {
		path, content, ok, err := manifest.Read(p)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %q", files.ErrFileNotFound, p)
		}

		return manifest.Present(c.Browser(), path, content), nil
	}
	if !files.Exists(p) {
		return nil, fmt.Errorf("%w: %q", files.ErrPathNotFound, p)
	}
	content, err := files.ReadString(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", manifest.ErrIO, err)
	}

	return manifest.Present(c.Browser(), p, content), nil
}
