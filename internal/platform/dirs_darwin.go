//go:build darwin

package platform

// configRoot is the user data dir, go-app-paths maps the config dir to
// ~/Library/Preferences where browsers keep no native-messaging hosts.
func (d *AppPathsDirs) configRoot() (string, error) {
	return d.scope.DataPath("")
}
