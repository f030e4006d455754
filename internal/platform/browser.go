package platform

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind tags the Browser variants.
type Kind int

const (
	KindFirefox Kind = iota + 1
	KindChrome
	KindEdge
	KindCustom
)

// Family groups browsers sharing the same manifest format.
type Family int

const (
	FamilyGecko Family = iota + 1
	FamilyChromium
)

// Browser is either one of the built-in browsers or a custom browser known
// only by the name the user gave it.
type Browser struct {
	kind Kind
	name string
}

var (
	Firefox = Browser{kind: KindFirefox}
	Chrome  = Browser{kind: KindChrome}
	Edge    = Browser{kind: KindEdge}
)

// Custom returns a browser referenced by name only. Custom browsers are never
// written by the engine.
func Custom(name string) Browser {
	return Browser{kind: KindCustom, name: name}
}

// Builtins returns the browsers handled automatically, in provisioning order.
func Builtins() []Browser {
	return []Browser{Firefox, Chrome, Edge}
}

// Kind returns the variant tag.
func (b Browser) Kind() Kind {
	return b.kind
}

// IsBuiltin reports whether b is Firefox, Chrome or Edge.
func (b Browser) IsBuiltin() bool {
	switch b.kind {
	case KindFirefox, KindChrome, KindEdge:
		return true
	case KindCustom:
		return false
	}

	return false
}

// Family returns the manifest family of a built-in browser.
func (b Browser) Family() (Family, bool) {
	switch b.kind {
	case KindFirefox:
		return FamilyGecko, true
	case KindChrome, KindEdge:
		return FamilyChromium, true
	case KindCustom:
		return 0, false
	}

	return 0, false
}

// Name returns the display name.
func (b Browser) Name() string {
	switch b.kind {
	case KindFirefox:
		return "Firefox"
	case KindChrome:
		return "Chrome"
	case KindEdge:
		return "Edge"
	case KindCustom:
		return b.name
	}

	return ""
}

func (b Browser) String() string {
	if b.kind == KindCustom {
		return "Custom(" + b.name + ")"
	}

	return b.Name()
}

// MarshalJSON encodes the browser as its name.
func (b Browser) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Name())
}

// UnmarshalJSON decodes a built-in name, anything else becomes a custom
// browser.
func (b *Browser) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decoding browser: %w", err)
	}
	*b = Lookup(s)

	return nil
}

// ParseBuiltin parses the name of a built-in browser, case-insensitive.
func ParseBuiltin(s string) (Browser, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "firefox":
		return Firefox, nil
	case "chrome":
		return Chrome, nil
	case "edge":
		return Edge, nil
	}

	return Browser{}, fmt.Errorf("%w: %q", ErrUnknownBrowser, s)
}

// Lookup returns the built-in browser named s, or a custom browser.
func Lookup(s string) Browser {
	if b, err := ParseBuiltin(s); err == nil {
		return b
	}

	return Custom(s)
}
