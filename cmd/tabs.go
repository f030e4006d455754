package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/mzd/internal/actions"
	"github.com/mateconpizza/mzd/internal/config"
	"github.com/mateconpizza/mzd/internal/sidecar"
)

var closedFlag bool

// withActions builds the app and runs fn with its sidecar actions.
func withActions(ctx context.Context, fn func(context.Context, *actions.Actions) error) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	return fn(ctx, app.Actions)
}

func printTabs(tabs []sidecar.TabItem) error {
	if config.App.Flags.JSON {
		return printJSON(tabs)
	}
	for _, t := range tabs {
		fmt.Printf("%d:%d  %s  %s\n", t.WindowID, t.ID, t.Title, t.URL)
	}

	return nil
}

var (
	// tabsCmd lists the open or recently closed tabs.
	tabsCmd = &cobra.Command{
		Use:     "tabs",
		Aliases: []string{"t"},
		Short:   "List the open tabs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withActions(cmd.Context(), func(ctx context.Context, a *actions.Actions) error {
				get := a.Tabs
				if closedFlag {
					get = a.RecentlyClosed
				}
				tabs, err := get(ctx)
				if err != nil {
					return err
				}

				return printTabs(tabs)
			})
		},
	}

	tabsSwitchCmd = &cobra.Command{
		Use:   "switch <id>",
		Short: "Focus a tab",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withActions(cmd.Context(), func(ctx context.Context, a *actions.Actions) error {
				return a.SwitchTab(ctx, args[0])
			})
		},
	}

	tabsCloseCmd = &cobra.Command{
		Use:   "close <id>",
		Short: "Close a tab",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withActions(cmd.Context(), func(ctx context.Context, a *actions.Actions) error {
				return a.CloseTab(ctx, args[0])
			})
		},
	}
)

func init() {
	tabsCmd.Flags().BoolVar(&closedFlag, "closed", false, "list the recently closed tabs")
	tabsCmd.AddCommand(tabsSwitchCmd, tabsCloseCmd)
	Root.AddCommand(tabsCmd)
}
