package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/mzd/internal/actions"
	"github.com/mateconpizza/mzd/internal/config"
	"github.com/mateconpizza/mzd/internal/sys"
)

// validURL checks s the same way bookmarks are checked.
func validURL(s string) error {
	b := &actions.Bookmark{URL: s}
	return b.Validate()
}

var (
	openCmd = &cobra.Command{
		Use:   "open <url>",
		Short: "Open a URL in the default browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := validURL(args[0]); err != nil {
				return err
			}

			return sys.OpenInBrowser(args[0])
		},
	}

	copyCmd = &cobra.Command{
		Use:   "copy <url>",
		Short: "Copy a URL to the system clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := validURL(args[0]); err != nil {
				return err
			}
			if err := sys.CopyClipboard(args[0]); err != nil {
				return err
			}
			fmt.Printf("%s: copied %q\n", config.App.Name, args[0])

			return nil
		},
	}
)

func init() {
	Root.AddCommand(openCmd, copyCmd)
}
