// Package gecko reads the profiles of Firefox based browsers.
package gecko

import (
	"fmt"
	"strings"

	ini "gopkg.in/ini.v1"
)

// Profiles returns the profile name to profile path mapping found in the
// profiles.ini file at p.
func Profiles(p string) (map[string]string, error) {
	inidata, err := ini.Load(p)
	if err != nil {
		return nil, fmt.Errorf("error loading file: %w", err)
	}

	result := make(map[string]string)
	for _, sec := range inidata.Sections() {
		if !strings.HasPrefix(sec.Name(), "Profile") {
			continue
		}
		name := sec.Key("Name").String()
		if name == "" {
			continue
		}
		result[name] = sec.Key("Path").String()
	}

	return result, nil
}
