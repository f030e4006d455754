// Package blink reads the profiles of Chromium based browsers.
package blink

import (
	"encoding/json"
	"fmt"
	"os"
)

// structure of the JSON profile file.
//
//	"profile": {
//	    "info_cache": {
//	        "Profile 1": {...},
//	        "Profile 2": {...},
//	        ...
//	    }
//	}
type jsonProfile struct {
	InfoCache map[string]struct {
		Name string `json:"name"`
	} `json:"info_cache"`
}

type localState struct {
	Profile jsonProfile `json:"profile"`
}

// Profiles returns the profile name to profile directory mapping found in the
// "Local State" file at p.
func Profiles(p string) (map[string]string, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("reading local state: %w", err)
	}

	return parseProfiles(data)
}

func parseProfiles(data []byte) (map[string]string, error) {
	var s localState
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	result := make(map[string]string)
	for dir, info := range s.Profile.InfoCache {
		name := info.Name
		if name == "" {
			name = dir
		}
		result[name] = dir
	}

	return result, nil
}
