// Package cmd holds the mzd command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/mzd/internal/config"
)

// Root is the main command.
var Root = &cobra.Command{
	Use:           config.App.Cmd,
	Short:         config.App.Info.Title,
	Long:          config.App.Info.Desc,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Usage()
	},
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := Root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", config.App.Name, err)
		os.Exit(1)
	}
}
