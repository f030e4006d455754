//go:build !darwin && !windows

package platform

func (d *AppPathsDirs) configRoot() (string, error) {
	return d.scope.ConfigPath("")
}
