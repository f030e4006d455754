package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/mzd/internal/actions"
	"github.com/mateconpizza/mzd/internal/config"
	"github.com/mateconpizza/mzd/internal/sys/terminal"
)

var bookmarkFlags = actions.Bookmark{}

func initBookmarkFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&bookmarkFlags.Title, "title", "t", "", "bookmark title")
	f.StringVarP(&bookmarkFlags.URL, "url", "u", "", "bookmark URL")
	f.StringVarP(&bookmarkFlags.Folder, "folder", "f", "", "folder path, such as /Bookmarks Toolbar/go/")
	_ = cmd.MarkFlagRequired("url")
}

var (
	// bookmarksCmd lists and edits the browser bookmarks.
	bookmarksCmd = &cobra.Command{
		Use:     "bookmarks",
		Aliases: []string{"b"},
		Short:   "List the browser bookmarks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withActions(cmd.Context(), func(ctx context.Context, a *actions.Actions) error {
				bs, err := a.Bookmarks(ctx)
				if err != nil {
					return err
				}
				if config.App.Flags.JSON {
					return printJSON(bs)
				}
				for _, b := range bs {
					fmt.Printf("%s  %s  %s\n", b.ID, b.Title, b.URL)
				}

				return nil
			})
		},
	}

	bookmarksNewCmd = &cobra.Command{
		Use:   "new",
		Short: "Create a bookmark",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withActions(cmd.Context(), func(ctx context.Context, a *actions.Actions) error {
				return a.CreateBookmark(ctx, &bookmarkFlags)
			})
		},
	}

	bookmarksUpdateCmd = &cobra.Command{
		Use:   "update <id>",
		Short: "Update a bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withActions(cmd.Context(), func(ctx context.Context, a *actions.Actions) error {
				return a.UpdateBookmark(ctx, args[0], &bookmarkFlags)
			})
		},
	}

	bookmarksDeleteCmd = &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a bookmark",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := terminal.New(terminal.WithForce(config.App.Flags.Force))
			if err := t.ConfirmErr(fmt.Sprintf("delete bookmark %q?", args[0]), "n"); err != nil {
				return err
			}

			return withActions(cmd.Context(), func(ctx context.Context, a *actions.Actions) error {
				return a.DeleteBookmark(ctx, args[0])
			})
		},
	}

	// historyCmd lists the browsing history.
	historyCmd = &cobra.Command{
		Use:   "history",
		Short: "List the browsing history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withActions(cmd.Context(), func(ctx context.Context, a *actions.Actions) error {
				hs, err := a.History(ctx)
				if err != nil {
					return err
				}
				if config.App.Flags.JSON {
					return printJSON(hs)
				}
				for _, h := range hs {
					last := time.UnixMilli(int64(h.T)).Format(time.DateTime)
					fmt.Printf("%s  %4d  %s  %s\n", last, h.VC, h.Title, h.URL)
				}

				return nil
			})
		},
	}
)

func init() {
	initBookmarkFlags(bookmarksNewCmd)
	initBookmarkFlags(bookmarksUpdateCmd)
	bookmarksCmd.AddCommand(bookmarksNewCmd, bookmarksUpdateCmd, bookmarksDeleteCmd)
	Root.AddCommand(bookmarksCmd, historyCmd)
}
