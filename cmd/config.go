package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/mzd/internal/config"
	"github.com/mateconpizza/mzd/internal/sys/files"
	"github.com/mateconpizza/mzd/internal/sys/terminal"
)

// createConfFlag is the flag for creating a new config file.
var createConfFlag bool

var ErrConfigFileNotFound = errors.New("config file not found")

// createConfig dumps the default configuration to a YAML file.
func createConfig(p string) error {
	force := config.App.Flags.Force
	if files.Exists(p) && !force {
		return fmt.Errorf("%w. use --force to overwrite", files.ErrFileExists)
	}
	t := terminal.New(terminal.WithForce(force))
	if !t.Confirm(fmt.Sprintf("create %q?", p), "y") {
		return nil
	}
	if err := files.MkdirAll(config.App.Path.Data); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := files.YamlWrite(p, config.Defaults, force); err != nil {
		return fmt.Errorf("%w", err)
	}

	fmt.Printf("%s: file saved %q\n", config.App.Name, p)

	return nil
}

// getConfig loads the config file.
func getConfig(p string) (*config.ConfigFile, error) {
	if !files.Exists(p) {
		slog.Warn("configfile not found, loading defaults")
		return nil, ErrConfigFileNotFound
	}

	var cfg *config.ConfigFile
	if err := files.YamlRead(p, &cfg); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if cfg == nil {
		return nil, ErrConfigFileNotFound
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return cfg, nil
}

// loadConfig loads the configuration YAML file into config.Current.
func loadConfig(p string) error {
	cfg, err := getConfig(p)
	if err != nil && !errors.Is(err, ErrConfigFileNotFound) {
		return fmt.Errorf("%w", err)
	}

	if cfg == nil {
		slog.Warn("configfile is empty. loading defaults")
		return nil
	}

	config.Current = cfg

	return nil
}

// configCmd configuration management.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fn := config.App.Path.ConfigFile
		switch {
		case createConfFlag:
			return createConfig(fn)
		case config.App.Flags.JSON:
			return printJSON(config.Current)
		}

		return cmd.Usage()
	},
}

func init() {
	configCmd.Flags().BoolVarP(&createConfFlag, "create", "c", false, "create a config file with the defaults")
	Root.AddCommand(configCmd)
}
