package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/mzd/internal/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(_ *cobra.Command, _ []string) error {
		if config.App.Flags.JSON {
			return printJSON(config.App.Info)
		}
		fmt.Println(PrettyVersion())

		return nil
	},
}

func init() {
	Root.AddCommand(versionCmd)
}
