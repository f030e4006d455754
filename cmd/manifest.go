package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/mzd/internal/config"
	"github.com/mateconpizza/mzd/internal/manifest"
	"github.com/mateconpizza/mzd/internal/platform"
	"github.com/mateconpizza/mzd/internal/provision"
	"github.com/mateconpizza/mzd/internal/sys/files"
)

var ErrContentMissing = errors.New("manifest content is empty")

type customFlagType struct {
	dir     string
	file    string
	content string
	browser string
}

var customFlags = customFlagType{}

var (
	// manifestCmd manifest management.
	manifestCmd = &cobra.Command{
		Use:     "manifest",
		Aliases: []string{"m"},
		Short:   "Native-messaging manifests management",
	}

	manifestWriteCmd = &cobra.Command{
		Use:       "write <firefox|chrome|edge>",
		Short:     "Write the manifest of a browser",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"firefox", "chrome", "edge"},
		RunE: func(_ *cobra.Command, args []string) error {
			b, err := platform.ParseBuiltin(args[0])
			if err != nil {
				return err
			}
			app, err := newApp()
			if err != nil {
				return err
			}
			r, err := app.Store.Write(app.OS, b)
			if err != nil {
				return fmt.Errorf("writing %s manifest: %w", b.Name(), err)
			}

			return printResults([]*manifest.Result{r})
		},
	}

	manifestWriteAllCmd = &cobra.Command{
		Use:   "write-all",
		Short: "Write the manifests of every built-in browser",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			var rs []*manifest.Result
			err = withSpinner("writing manifests...", func() error {
				var err error
				rs, err = provision.WriteAll(app.Store, app.OS)
				return err
			})
			if err != nil {
				return err
			}

			return printResults(rs)
		},
	}

	manifestCustomCmd = &cobra.Command{
		Use:   "custom",
		Short: "Write a manifest under a directory of the user config dir",
		RunE: func(_ *cobra.Command, _ []string) error {
			content := customFlags.content
			if customFlags.file != "" {
				s, err := files.ReadString(files.ExpandHomeDir(customFlags.file))
				if err != nil {
					return fmt.Errorf("%w", err)
				}
				content = s
			}
			if content == "" {
				return ErrContentMissing
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			b := platform.Lookup(customFlags.browser)
			r, err := app.Store.WriteCustom(app.OS, customFlags.dir, content, b)
			if err != nil {
				return err
			}

			return printResults([]*manifest.Result{r})
		},
	}

	manifestListCmd = &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the built-in and registered custom manifests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			rs, err := app.BrowserManifests(cmd.Context(), nil)
			if err != nil {
				return err
			}

			return printResults(rs)
		},
	}

	manifestPathCmd = &cobra.Command{
		Use:   "path <firefox|chrome|edge>",
		Short: "Print the native-messaging directory of a browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			b, err := platform.ParseBuiltin(args[0])
			if err != nil {
				return err
			}
			app, err := newApp()
			if err != nil {
				return err
			}
			p, err := app.Store.UserDirPath(app.OS, b)
			if err != nil {
				return err
			}
			if config.App.Flags.JSON {
				return printJSON(map[string]string{"browser": b.Name(), "path": p})
			}
			fmt.Println(p)

			return nil
		},
	}
)

func init() {
	f := manifestCustomCmd.Flags()
	f.StringVarP(&customFlags.dir, "dir", "d", "", "directory relative to the user config dir")
	f.StringVarP(&customFlags.file, "file", "f", "", "read the manifest content from file")
	f.StringVarP(&customFlags.content, "content", "c", "", "manifest content")
	f.StringVarP(&customFlags.browser, "browser", "b", "", "browser the manifest belongs to")
	_ = manifestCustomCmd.MarkFlagRequired("dir")
	_ = manifestCustomCmd.MarkFlagRequired("browser")
	manifestCustomCmd.MarkFlagsMutuallyExclusive("file", "content")

	manifestCmd.AddCommand(manifestWriteCmd, manifestWriteAllCmd, manifestCustomCmd, manifestListCmd, manifestPathCmd)
	Root.AddCommand(manifestCmd)
}
