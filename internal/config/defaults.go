package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	DefaultSidecar      = "mozeidon-cli"        // Query CLI shipped next to the app
	DefaultNativeHost   = "mozeidon-native-app" // Native host referenced by manifests
	DefaultQueryTimeout = 30 * time.Second
	DefaultMaxRequests  = 8
)

// ConfigFile represents the configuration file.
type ConfigFile struct {
	Sidecar      string   `json:"sidecar"                 yaml:"sidecar"`                 // Sidecar executable name
	NativeHost   string   `json:"native_host"             yaml:"native_host"`             // Native host executable name
	QueryTimeout Duration `json:"query_timeout"           yaml:"query_timeout"`           // Bound for a single sidecar call, 0 disables it
	TemplatesDir string   `json:"templates_dir,omitempty" yaml:"templates_dir,omitempty"` // Override for the embedded manifest templates
	MaxRequests  int      `json:"max_requests"            yaml:"max_requests"`            // Concurrent requests in serve mode
}

// Defaults holds the default configuration.
var Defaults = &ConfigFile{
	Sidecar:      DefaultSidecar,
	NativeHost:   DefaultNativeHost,
	QueryTimeout: Duration(DefaultQueryTimeout),
	MaxRequests:  DefaultMaxRequests,
}

// Current is the configuration in use, Defaults until a file is loaded.
var Current = Defaults

// Validate fills empty fields with defaults and rejects invalid values.
func Validate(cfg *ConfigFile) error {
	if cfg.Sidecar == "" {
		slog.Warn("empty sidecar, loading default", "sidecar", DefaultSidecar)
		cfg.Sidecar = DefaultSidecar
	}
	if cfg.NativeHost == "" {
		slog.Warn("empty native host, loading default", "native_host", DefaultNativeHost)
		cfg.NativeHost = DefaultNativeHost
	}
	if cfg.QueryTimeout < 0 {
		return fmt.Errorf("%w: negative query_timeout %s", ErrInvalidConfig, cfg.QueryTimeout)
	}
	if cfg.MaxRequests <= 0 {
		cfg.MaxRequests = DefaultMaxRequests
	}

	return nil
}

// Duration is a time.Duration read from a YAML string such as "30s".
type Duration time.Duration

func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML implements the legacy yaml.Unmarshaler signature supported
// by yaml.v3.
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return fmt.Errorf("%w: duration: %w", ErrInvalidConfig, err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("%w: duration %q: %w", ErrInvalidConfig, s, err)
	}
	*d = Duration(v)

	return nil
}
