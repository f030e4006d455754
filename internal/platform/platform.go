// Package platform provides the static tables that map an operating system
// and a browser to its native-messaging-hosts location.
package platform

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	ErrUnsupportedPlatform    = errors.New("unsupported platform")
	ErrUnsupportedCombination = fmt.Errorf("%w: no catalog entry", ErrUnsupportedPlatform)
	ErrUserDirNotFound        = errors.New("user directory not found")
	ErrUnknownBrowser         = errors.New("invalid browser string")
)

// OS is one of the supported operating systems.
type OS int

const (
	MacOS OS = iota + 1
	Linux
	Windows
)

func (o OS) String() string {
	switch o {
	case MacOS:
		return "MacOS"
	case Linux:
		return "Linux"
	case Windows:
		return "Windows"
	}

	return fmt.Sprintf("OS(%d)", int(o))
}

// Valid reports whether o is one of the supported systems.
func (o OS) Valid() bool {
	return o == MacOS || o == Linux || o == Windows
}

// UsesRegistry reports whether a manifest must also be registered in the
// system registry to be picked up by the browser.
func (o OS) UsesRegistry() bool {
	return o == Windows
}

// MarshalText implements encoding.TextMarshaler.
func (o OS) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Current returns the OS the binary was built for.
func Current() (OS, error) {
	return fromGOOS(runtime.GOOS)
}

func fromGOOS(goos string) (OS, error) {
	switch goos {
	case "darwin":
		return MacOS, nil
	case "linux":
		return Linux, nil
	case "windows":
		return Windows, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedPlatform, goos)
}
