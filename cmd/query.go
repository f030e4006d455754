package cmd

import (
	"errors"
	"fmt"
	"strings"

	shellwords "github.com/junegunn/go-shellwords"
	"github.com/spf13/cobra"

	"github.com/mateconpizza/mzd/internal/config"
	"github.com/mateconpizza/mzd/internal/sidecar"
)

var ErrNoArgs = errors.New("no arguments provided")

var (
	// queryCmd runs a sidecar query and prints the aggregated items.
	queryCmd = &cobra.Command{
		Use:   "query <tabs|bookmarks|history> [args...]",
		Short: "Run a mozeidon-cli query and print its items as a JSON array",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			out, err := app.Bridge.Query(cmd.Context(), sidecar.Context(args[0]), strings.Join(args[1:], " "))
			if err != nil {
				return err
			}

			return printRaw(out)
		},
	}

	// execCmd runs a sidecar command and discards its output.
	execCmd = &cobra.Command{
		Use:   "exec [args...]",
		Short: "Run a mozeidon-cli command",
		Example: `  mzd exec bookmark new -t "Go" -u https://go.dev
  mzd exec --line 'bookmark new -t "Go docs" -u https://go.dev/doc'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if line := config.App.Flags.Line; line != "" {
				words, err := shellwords.Parse(line)
				if err != nil {
					return fmt.Errorf("parsing line: %w", err)
				}
				args = append(args, words...)
			}
			if len(args) == 0 {
				return ErrNoArgs
			}

			app, err := newApp()
			if err != nil {
				return err
			}

			return app.Bridge.Write(cmd.Context(), args)
		},
	}
)

func init() {
	execCmd.Flags().StringVarP(&config.App.Flags.Line, "line", "l", "", "argument line, split with shell quoting rules")
	Root.AddCommand(queryCmd, execCmd)
}
