// Package terminal detects interactive terminals and asks for confirmation.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

var ErrActionAborted = errors.New("action aborted")

// IsTerminal reports whether f is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// IsPiped returns true if the input is piped.
func IsPiped() bool {
	return !IsTerminal(os.Stdin)
}

// Term reads answers from a reader and writes prompts to a writer.
type Term struct {
	reader io.Reader
	writer io.Writer
	force  bool
}

// OptFn is an option function for the term.
type OptFn func(*Term)

// WithReader sets the reader for the term.
func WithReader(r io.Reader) OptFn {
	return func(t *Term) {
		t.reader = r
	}
}

// WithWriter sets the writer for the term.
func WithWriter(w io.Writer) OptFn {
	return func(t *Term) {
		t.writer = w
	}
}

// WithForce answers yes to every question.
func WithForce(force bool) OptFn {
	return func(t *Term) {
		t.force = force
	}
}

// New returns a term reading stdin and writing stderr.
func New(opts ...OptFn) *Term {
	t := &Term{reader: os.Stdin, writer: os.Stderr}
	for _, fn := range opts {
		fn(t)
	}

	return t
}

// Confirm asks a yes/no question. def is the answer on empty input.
func (t *Term) Confirm(q, def string) bool {
	if t.force {
		return true
	}
	opts := "[y/N]:"
	if strings.EqualFold(def, "y") {
		opts = "[Y/n]:"
	}

	r := bufio.NewReader(t.reader)
	for {
		fmt.Fprintf(t.writer, "%s %s ", q, opts)
		s, err := r.ReadString('\n')
		s = strings.ToLower(strings.TrimSpace(s))
		if err != nil && s == "" {
			if !errors.Is(err, io.EOF) {
				slog.Error("reading input", "error", err)
			}

			return false
		}

		switch s {
		case "":
			return strings.EqualFold(def, "y")
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		fmt.Fprintln(t.writer, "invalid response. use: [y]es [n]o")
	}
}

// ConfirmErr is Confirm returning ErrActionAborted on a negative answer.
func (t *Term) ConfirmErr(q, def string) error {
	if !t.Confirm(q, def) {
		return ErrActionAborted
	}

	return nil
}
