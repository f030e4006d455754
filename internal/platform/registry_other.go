//go:build !windows

package platform

// NewRegistry returns a no-op registry.
func NewRegistry() Registry {
	return NoopRegistry{}
}
