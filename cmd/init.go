package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/mzd/internal/config"
	"github.com/mateconpizza/mzd/internal/provision"
)

// initCmd runs the automatic provisioning pass for the built-in browsers.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the manifests of every installed browser",
	RunE: func(_ *cobra.Command, _ []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		var res *provision.InitResult
		err = withSpinner("provisioning manifests...", func() error {
			var err error
			res, err = app.Session.Init()
			return err
		})
		if err != nil {
			return fmt.Errorf("provisioning: %w", err)
		}

		if config.App.Flags.JSON {
			return printJSON(res)
		}

		return printResults(res.Results)
	},
}

func init() {
	Root.AddCommand(initCmd)
}
