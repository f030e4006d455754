package manifest

import "github.com/mateconpizza/mzd/internal/platform"

// Result is the outcome of provisioning one browser. Path and Content are
// set whenever a manifest exists on disk after the call.
type Result struct {
	Browser platform.Browser `json:"browser"`
	Written bool             `json:"written"`
	Path    *string          `json:"path"`
	Content *string          `json:"content"`
}

// NotInstalled reports a browser whose native-messaging parent directory is
// absent.
func NotInstalled(b platform.Browser) *Result {
	return &Result{Browser: b}
}

// Present reports a manifest that already exists and is picked up by the
// browser.
func Present(b platform.Browser, path, content string) *Result {
	return &Result{Browser: b, Path: &path, Content: &content}
}

// Written reports a manifest created by this call.
func Written(b platform.Browser, path, content string) *Result {
	return &Result{Browser: b, Written: true, Path: &path, Content: &content}
}

// Installed reports whether a manifest exists on disk.
func (r *Result) Installed() bool {
	return r.Path != nil
}
