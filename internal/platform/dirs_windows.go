//go:build windows

package platform

import "golang.org/x/sys/windows"

// configRoot is the roaming AppData folder. go-app-paths only resolves
// folders under LocalAppData.
func (d *AppPathsDirs) configRoot() (string, error) {
	return windows.KnownFolderPath(windows.FOLDERID_RoamingAppData, windows.KF_FLAG_DEFAULT)
}
