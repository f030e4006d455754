package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/mzd/internal/config"
	"github.com/mateconpizza/mzd/internal/handler"
	"github.com/mateconpizza/mzd/internal/platform"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Report the manifest state of every browser",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		r, err := app.Doctor(cmd.Context())
		if err != nil {
			return err
		}
		if config.App.Flags.JSON {
			return printJSON(r)
		}
		printReport(r)

		return nil
	},
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}

func printReport(r *handler.Report) {
	fmt.Println(PrettyVersion())
	fmt.Printf("os:       %s\n", r.OS)
	fmt.Printf("sidecar:  %s (found: %s)\n", r.Sidecar, yesNo(r.SidecarFound))
	if r.OS == platform.Linux {
		fmt.Printf("wmctrl:   %s\n", yesNo(r.Wmctrl))
	}
	fmt.Println()

	for _, b := range r.Browsers {
		if b.Error != "" {
			fmt.Printf("%-8s error: %s\n", b.Browser.Name(), b.Error)
			continue
		}
		fmt.Printf("%-8s installed: %-3s manifest: %-3s registered: %-3s %s\n",
			b.Browser.Name(), yesNo(b.Installed), yesNo(b.Present), yesNo(b.Registered), b.Dir)
		for _, p := range b.Profiles {
			fmt.Printf("         profile %q %s\n", p.Name, p.Path)
		}
	}

	for _, c := range r.Custom {
		fmt.Printf("%-8s custom manifest %s\n", c.BrowserName, c.RelativeDir)
	}
}

func init() {
	Root.AddCommand(doctorCmd)
}
