// Package sidecar runs the mozeidon CLI and aggregates the JSON chunks it
// prints on stdout.
package sidecar

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	ErrSidecarNotFound = errors.New("failed to spawn sidecar")
	ErrDecode          = errors.New("failed to parse sidecar output")
	ErrPathEmpty       = errors.New("sidecar path is empty")
)

// DefaultName is the sidecar executable name.
const DefaultName = "mozeidon-cli"

// maxLineSize bounds a single stdout line.
const maxLineSize = 16 * 1024 * 1024

// Context selects the item type of a query.
type Context string

const (
	Tabs      Context = "tabs"
	Bookmarks Context = "bookmarks"
	History   Context = "history"
)

// decoder returns the line decoder for c, nil for unknown contexts.
func (c Context) decoder() decodeFn {
	switch c {
	case Tabs:
		return decoder[TabItem]()
	case Bookmarks:
		return decoder[BookmarkItem]()
	case History:
		return decoder[HistoryItem]()
	}

	return nil
}

// Known reports whether c has an item type.
func (c Context) Known() bool {
	return c.decoder() != nil
}

// Bridge spawns the sidecar, one process per call.
type Bridge struct {
	// Path is the sidecar executable.
	Path string
	// BaseArgs are passed before the call arguments.
	BaseArgs []string
	// Env is appended to the current environment.
	Env []string
	// Timeout bounds a call. Zero disables it.
	Timeout time.Duration
}

// OptFn is an option function for the bridge.
type OptFn func(*Bridge)

// WithTimeout sets the timeout of each call.
func WithTimeout(d time.Duration) OptFn {
	return func(b *Bridge) {
		b.Timeout = d
	}
}

// WithBaseArgs sets the arguments passed before the call arguments.
func WithBaseArgs(args ...string) OptFn {
	return func(b *Bridge) {
		b.BaseArgs = args
	}
}

// WithEnv appends variables to the sidecar environment.
func WithEnv(env ...string) OptFn {
	return func(b *Bridge) {
		b.Env = append(b.Env, env...)
	}
}

// New returns a bridge running the executable at path.
func New(path string, opts ...OptFn) *Bridge {
	b := &Bridge{Path: path}
	for _, fn := range opts {
		fn(b)
	}

	return b
}

// Query runs the sidecar with argLine split on spaces and returns every item
// of every chunk, in arrival order, as one JSON array. Unknown contexts drain
// stdout without decoding and return an empty array.
func (b *Bridge) Query(ctx context.Context, c Context, argLine string) (string, error) {
	args := strings.Split(argLine, " ")
	decode := c.decoder()
	if decode == nil {
		slog.Warn("unknown sidecar context", "context", c)
	}

	items := make([]json.RawMessage, 0)
	err := b.stream(ctx, args, func(line []byte) error {
		if decode == nil {
			return nil
		}
		got, err := decode(line)
		if err != nil {
			return fmt.Errorf("context %q: %w", c, err)
		}
		items = append(items, got...)

		return nil
	})
	if err != nil {
		return "", err
	}

	out, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encoding items: %w", err)
	}

	return string(out), nil
}

// Write runs the sidecar with args as given. Stdout is only logged.
func (b *Bridge) Write(ctx context.Context, args []string) error {
	return b.stream(ctx, args, func(line []byte) error {
		slog.Debug("sidecar", "stdout", string(line))
		return nil
	})
}

// stream spawns the sidecar and calls fn for every non-blank stdout line on a
// separate goroutine, returning once stdout is closed and the process exited.
func (b *Bridge) stream(ctx context.Context, args []string, fn func([]byte) error) error {
	if b.Path == "" {
		return ErrPathEmpty
	}
	if b.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.Timeout)
		defer cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	argv := append(slices.Clone(b.BaseArgs), args...)
	cmd := exec.CommandContext(ctx, b.Path, argv...)
	if len(b.Env) > 0 {
		cmd.Env = append(os.Environ(), b.Env...)
	}
	cmd.WaitDelay = time.Second
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("%w: stdout pipe: %w", ErrSidecarNotFound, err)
	}

	slog.Debug("spawning sidecar", "path", b.Path, "args", argv)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrSidecarNotFound, b.Path, err)
	}

	var g errgroup.Group
	g.Go(func() error {
		return scanLines(stdout, fn)
	})
	readErr := g.Wait()
	if readErr != nil {
		cancel()
	}
	waitErr := cmd.Wait()

	if err := ctx.Err(); err != nil && readErr == nil {
		return fmt.Errorf("sidecar %q: %w", b.Path, context.Cause(ctx))
	}
	if readErr != nil {
		return readErr
	}
	if waitErr != nil {
		slog.Warn("sidecar exited", "path", b.Path, "error", waitErr, "stderr", strings.TrimSpace(stderr.String()))
	}

	return nil
}

func scanLines(r io.Reader, fn func([]byte) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: reading stdout: %w", ErrDecode, err)
	}

	return nil
}
