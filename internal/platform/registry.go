package platform

// RegistryRoot prefixes keys reported to callers.
const RegistryRoot = `HKEY_CURRENT_USER\`

// Registry reads and writes the default value of keys under the current
// user's software hive.
type Registry interface {
	// Lookup returns the default value of key, false when the key or value
	// does not exist.
	Lookup(key string) (string, bool, error)
	// Set creates key if needed and sets its default value.
	Set(key, value string) error
}

// NoopRegistry is used on systems without a registry.
type NoopRegistry struct{}

func (NoopRegistry) Lookup(string) (string, bool, error) { return "", false, nil }

func (NoopRegistry) Set(string, string) error { return nil }
