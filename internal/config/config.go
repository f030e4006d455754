package config

import "path/filepath"

// Flags holds the command line flags shared by all subcommands.
type Flags struct {
	Force   bool   // Force action
	JSON    bool   // JSON output
	Verbose int    // Verbose flag
	Line    string // Raw argument line for the sidecar
}

// App is the default application configuration.
var App = &AppConfig{
	Name:   appName,
	Cmd:    command,
	DBName: MainDBName,
	Flags:  &Flags{},
	Info: information{
		URL:     "https://github.com/mateconpizza/mzd#readme",
		Title:   "mzd: mozeidon desktop host",
		Desc:    "Provision browser native-messaging manifests and bridge requests to mozeidon-cli",
		Version: version,
	},
	Env: environment{
		Home: "MZD_HOME",
	},
}

// SetAppPaths sets the app data path.
func SetAppPaths(p string) {
	App.Path.Data = p
	App.Path.ConfigFile = filepath.Join(p, configFilename)
	App.DBPath = filepath.Join(p, App.DBName)
}
