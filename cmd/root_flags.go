package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mateconpizza/mzd/internal/config"
)

func initRootFlags(cmd *cobra.Command) {
	f := config.App.Flags
	cmd.PersistentFlags().CountVarP(&f.Verbose, "verbose", "v", "Increase verbosity (-v, -vv, -vvv)")
	cmd.PersistentFlags().BoolVar(&f.JSON, "json", false, "output in JSON format")
	cmd.PersistentFlags().BoolVar(&f.Force, "force", false, "force action | don't ask confirmation")
	cmd.CompletionOptions.HiddenDefaultCmd = true
}
