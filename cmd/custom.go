package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/mzd/internal/config"
	"github.com/mateconpizza/mzd/internal/provision"
	"github.com/mateconpizza/mzd/internal/sys/terminal"
)

var (
	// customCmd custom manifests registry.
	customCmd = &cobra.Command{
		Use:     "custom",
		Aliases: []string{"c"},
		Short:   "Custom browser manifests registry",
	}

	customAddCmd = &cobra.Command{
		Use:   "add <browser> <path>",
		Short: "Register the manifest of a custom browser",
		Long: `Register the manifest of a custom browser.

path is the manifest file or the directory that holds mozeidon.json.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			r, err := app.OpenDB(cmd.Context())
			if err != nil {
				return err
			}
			defer r.Close()

			c := &provision.CustomManifest{BrowserName: args[0], RelativeDir: args[1]}
			if err := r.Add(cmd.Context(), c); err != nil {
				return fmt.Errorf("%w", err)
			}
			if config.App.Flags.JSON {
				return printJSON(c)
			}
			fmt.Printf("%s: registered %q\n", config.App.Name, c.BrowserName)

			return nil
		},
	}

	customListCmd = &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the registered custom manifests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			cs, err := app.CustomManifests(cmd.Context())
			if err != nil {
				return err
			}
			if config.App.Flags.JSON {
				if cs == nil {
					cs = []*provision.CustomManifest{}
				}
				return printJSON(cs)
			}
			for _, c := range cs {
				fmt.Printf("%-3d %-12s %s\n", c.ID, c.BrowserName, c.RelativeDir)
			}

			return nil
		},
	}

	customRemoveCmd = &cobra.Command{
		Use:     "remove <browser>",
		Aliases: []string{"rm"},
		Short:   "Remove a registered custom manifest",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			r, err := app.OpenDB(cmd.Context())
			if err != nil {
				return err
			}
			defer r.Close()

			c, err := r.ByBrowser(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("%w", err)
			}
			t := terminal.New(terminal.WithForce(config.App.Flags.Force))
			if err := t.ConfirmErr(fmt.Sprintf("remove %q (%s)?", c.BrowserName, c.RelativeDir), "n"); err != nil {
				return err
			}
			if err := r.Remove(cmd.Context(), c.BrowserName); err != nil {
				return fmt.Errorf("%w", err)
			}
			fmt.Printf("%s: removed %q\n", config.App.Name, c.BrowserName)

			return nil
		},
	}
)

func init() {
	customCmd.AddCommand(customAddCmd, customListCmd, customRemoveCmd)
	Root.AddCommand(customCmd)
}
