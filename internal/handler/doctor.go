package handler

import (
	"context"
	"log/slog"

	"github.com/mateconpizza/mzd/internal/browser"
	"github.com/mateconpizza/mzd/internal/manifest"
	"github.com/mateconpizza/mzd/internal/platform"
	"github.com/mateconpizza/mzd/internal/provision"
	"github.com/mateconpizza/mzd/internal/sys"
	"github.com/mateconpizza/mzd/internal/sys/files"
)

// BrowserReport is the state of one built-in browser.
type BrowserReport struct {
	*manifest.Status
	Profiles []browser.Profile `json:"profiles,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// Report is the output of Doctor.
type Report struct {
	OS           platform.OS                 `json:"os"`
	Sidecar      string                      `json:"sidecar"`
	SidecarFound bool                        `json:"sidecar_found"`
	Wmctrl       bool                        `json:"wmctrl"`
	Browsers     []*BrowserReport            `json:"browsers"`
	Custom       []*provision.CustomManifest `json:"custom"`
}

// Doctor inspects every built-in browser without writing anything.
func (a *App) Doctor(ctx context.Context) (*Report, error) {
	r := &Report{
		OS:           a.OS,
		Sidecar:      a.Bridge.Path,
		SidecarFound: files.Exists(a.Bridge.Path),
		Wmctrl:       a.OS == platform.Linux && sys.WmctrlInstalled(),
	}

	for _, b := range platform.Builtins() {
		st, err := a.Store.Inspect(a.OS, b)
		if err != nil {
			slog.Warn("inspecting browser", "browser", b, "error", err)
			r.Browsers = append(r.Browsers, &BrowserReport{
				Status: &manifest.Status{Browser: b},
				Error:  err.Error(),
			})

			continue
		}
		br := &BrowserReport{Status: st}
		if st.Installed {
			ps, err := browser.Profiles(b)
			if err != nil {
				slog.Debug("reading profiles", "browser", b, "error", err)
			}
			br.Profiles = ps
		}
		r.Browsers = append(r.Browsers, br)
	}

	cs, err := a.CustomManifests(ctx)
	if err != nil {
		slog.Warn("loading custom manifests", "error", err)
	}
	r.Custom = cs

	return r, nil
}
