package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/mzd/internal/config"
	"github.com/mateconpizza/mzd/internal/handler"
)

// serveCmd answers JSON-lines requests read from stdin until EOF.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve JSON-lines requests on stdin/stdout",
	Long: `Serve JSON-lines requests on stdin/stdout.

Each line is a request {"id":..,"method":..,"params":{..}} answered with
{"id":..,"result":..} or {"id":..,"error":".."}.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return handler.Serve(ctx, app, os.Stdin, os.Stdout, config.Current.MaxRequests)
	},
}

func init() {
	Root.AddCommand(serveCmd)
}
