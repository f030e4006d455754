package config

import (
	"log/slog"
	"os"
	"path/filepath"
)

// version of the application.
var version = "0.1.0"

const (
	appName         string = "mzd"          // Default name of the application
	command         string = "mzd"          // Default name of the executable
	MainDBName      string = "manifests.db" // Default name of the main database
	DefaultFilename string = "config.yml"   // Default config filename
	configFilename  string = "config.yml"   // Default config filename
)

type (
	AppConfig struct {
		Name    string      `json:"name"`    // Name of the application
		Cmd     string      `json:"cmd"`     // Name of the executable
		DBName  string      `json:"db"`      // Database name
		DBPath  string      `json:"db_path"` // Database path
		Info    information `json:"data"`    // Application information
		Env     environment `json:"env"`     // Application environment variables
		Path    path        `json:"path"`    // Application path
		Flags   *Flags      `json:"-"`       // Command line flags
		Verbose bool        `json:"-"`       // Logging level
	}

	path struct {
		Data       string `json:"data"`   // Path to store database
		ConfigFile string `json:"config"` // Path to config file
	}

	information struct {
		URL     string `json:"url"`     // URL of the application
		Title   string `json:"title"`   // Title of the application
		Desc    string `json:"desc"`    // Description of the application
		Version string `json:"version"` // Version of the application
	}

	environment struct {
		Home string `json:"home"` // Environment variable for the home directory
	}
)

// SetVerbosity configures the default slog logger. Each level of verbose
// lowers the threshold: error, warn, info, debug.
func SetVerbosity(verbose int) {
	levels := []slog.Level{
		slog.LevelError,
		slog.LevelWarn,
		slog.LevelInfo,
		slog.LevelDebug,
	}
	level := levels[min(max(verbose, 0), len(levels)-1)]

	logger := slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			AddSource: true,
			Level:     level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == "source" {
					if source, ok := a.Value.Any().(*slog.Source); ok {
						dir, file := filepath.Split(source.File)
						source.File = filepath.Join(filepath.Base(filepath.Clean(dir)), file)

						return slog.Attr{Key: "source", Value: slog.AnyValue(source)}
					}
				}

				return a
			},
		}),
	)
	slog.SetDefault(logger)

	slog.Debug("logging", "level", level)
}
