//go:build windows

package platform

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sys/windows/registry"
)

// NewRegistry returns the HKCU registry.
func NewRegistry() Registry {
	return winRegistry{}
}

type winRegistry struct{}

func (winRegistry) Lookup(key string) (string, bool, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, key, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return "", false, nil
		}

		return "", false, fmt.Errorf("opening key %q: %w", key, err)
	}
	defer func() {
		if err := k.Close(); err != nil {
			slog.Error("closing registry key", "key", key, "error", err)
		}
	}()

	v, _, err := k.GetStringValue("")
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return "", false, nil
		}

		return "", false, fmt.Errorf("reading key %q: %w", key, err)
	}

	return v, true, nil
}

func (winRegistry) Set(key, value string) error {
	k, _, err := registry.CreateKey(registry.CURRENT_USER, key, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("creating key %q: %w", key, err)
	}
	defer func() {
		if err := k.Close(); err != nil {
			slog.Error("closing registry key", "key", key, "error", err)
		}
	}()

	if err := k.SetStringValue("", value); err != nil {
		return fmt.Errorf("setting key %q: %w", key, err)
	}
	slog.Debug("registry value set", "key", key, "value", value)

	return nil
}
