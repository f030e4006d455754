package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mateconpizza/rotato"

	"github.com/mateconpizza/mzd/internal/config"
	"github.com/mateconpizza/mzd/internal/manifest"
	"github.com/mateconpizza/mzd/internal/sys/terminal"
)

// printJSON prints v as JSON, indented when stdout is a terminal.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	if terminal.IsTerminal(os.Stdout) {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}

	return nil
}

// printRaw prints an already encoded JSON document.
func printRaw(s string) error {
	if !terminal.IsTerminal(os.Stdout) {
		fmt.Println(s)
		return nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(s), "", "  "); err != nil {
		return fmt.Errorf("indenting output: %w", err)
	}
	fmt.Println(buf.String())

	return nil
}

// printResults prints one line per manifest result.
func printResults(rs []*manifest.Result) error {
	if config.App.Flags.JSON {
		return printJSON(rs)
	}

	for _, r := range rs {
		state := "not installed"
		switch {
		case r.Written:
			state = "written"
		case r.Installed():
			state = "present"
		}

		p := ""
		if r.Path != nil {
			p = *r.Path
		}
		fmt.Printf("%-10s %-14s %s\n", r.Browser.Name(), state, p)
	}

	return nil
}

// withSpinner runs fn behind a spinner when stdout is an interactive
// terminal.
func withSpinner(mesg string, fn func() error) error {
	if config.App.Flags.JSON || !terminal.IsTerminal(os.Stdout) {
		return fn()
	}

	sp := rotato.New(
		rotato.WithSpinnerColor(rotato.ColorGray),
		rotato.WithMesg(mesg),
		rotato.WithMesgColor(rotato.ColorBrightGreen, rotato.ColorStyleItalic),
	)
	sp.Start()
	defer sp.Done()

	return fn()
}
