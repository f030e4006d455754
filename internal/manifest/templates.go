package manifest

import (
	"embed"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/mateconpizza/mzd/internal/platform"
	"github.com/mateconpizza/mzd/internal/sys/files"
)

// Placeholder is replaced with the native host executable path.
const Placeholder = "__NATIVE_HOST_EXECUTABLE_PATH__"

// template filenames.
const (
	templateGecko    = "firefox_native_manifest.json"
	templateChromium = "chrome_native_manifest.json"
)

//go:embed templates/*.json
var bundled embed.FS

// Templates provides the raw manifest templates by filename.
type Templates interface {
	Load(name string) (string, error)
}

// Bundle serves the embedded templates. Files found in the override
// directory take precedence.
type Bundle struct {
	dir string
}

// NewBundle returns the embedded templates, overridden by files in dir when
// dir is not empty.
func NewBundle(dir string) *Bundle {
	return &Bundle{dir: files.ExpandHomeDir(dir)}
}

func (b *Bundle) Load(name string) (string, error) {
	if b.dir != "" {
		p := filepath.Join(b.dir, name)
		if files.Exists(p) {
			slog.Debug("loading template override", "path", p)
			s, err := files.ReadString(p)
			if err != nil {
				return "", fmt.Errorf("%w: %w", ErrIO, err)
			}

			return s, nil
		}
	}

	data, err := bundled.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrResourceResolve, name, err)
	}

	return string(data), nil
}

// templateName returns the template filename for a built-in browser.
func templateName(b platform.Browser) (string, error) {
	f, ok := b.Family()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedBrowser, b)
	}

	switch f {
	case platform.FamilyGecko:
		return templateGecko, nil
	case platform.FamilyChromium:
		return templateChromium, nil
	}

	return "", fmt.Errorf("%w: %s", ErrResourceResolve, b)
}

// jsonEscaper escapes a path for use inside a JSON string literal.
var jsonEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Render substitutes the placeholder with the executable path.
func Render(tmpl, executable string) string {
	return strings.ReplaceAll(tmpl, Placeholder, jsonEscaper.Replace(executable))
}
