package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/mzd/internal/config"
	"github.com/mateconpizza/mzd/internal/handler"
	"github.com/mateconpizza/mzd/internal/sys"
)

func initConfig() {
	cfg := config.App
	config.SetVerbosity(cfg.Flags.Verbose)

	// load data home path for the app.
	dataHomePath, err := loadDataPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", cfg.Name, err)
		os.Exit(1)
	}

	config.SetAppPaths(dataHomePath)

	// load config from YAML
	if err := loadConfig(cfg.Path.ConfigFile); err != nil {
		slog.Error("loading config", "err", err)
	}
}

func init() {
	initRootFlags(Root)
	cobra.OnInitialize(initConfig)
}

// loadDataPath loads the path to the application's home directory.
//
// If environment variable MZD_HOME is not set, uses the data user
// directory.
func loadDataPath() (string, error) {
	e := config.App.Env.Home

	envDataHome := sys.Env(e, "")
	if envDataHome != "" {
		slog.Debug("reading home env", e, envDataHome)

		return config.PathJoin(envDataHome), nil
	}

	dataHome, err := config.DataPath()
	if err != nil {
		return "", fmt.Errorf("loading paths: %w", err)
	}

	slog.Debug("home app", "path", dataHome)

	return dataHome, nil
}

// newApp builds the app from the loaded configuration.
func newApp() (*handler.App, error) {
	a, err := handler.NewApp(config.Current, config.App.DBPath)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return a, nil
}

// PrettyVersion formats version in a pretty way.
func PrettyVersion() string {
	return fmt.Sprintf("%s v%s %s/%s", config.App.Name, config.App.Info.Version, runtime.GOOS, runtime.GOARCH)
}
