// Package actions provides the tab, bookmark and history operations of the
// mozeidon CLI.
package actions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/mateconpizza/mzd/internal/sidecar"
)

var (
	ErrInvalidURL    = errors.New("invalid url")
	ErrInvalidFolder = errors.New("folder path must start and end with '/'")
	ErrIDEmpty       = errors.New("no id provided")
)

// sidecar commands.
const (
	cmdTabs           = "tabs get"
	cmdRecentlyClosed = "tabs get --closed"
	cmdSwitchTab      = "tabs switch"
	cmdCloseTab       = "tabs close"
	cmdBookmarks      = "bookmarks"
	cmdHistory        = "history"
	cmdCreateBookmark = "bookmark new"
	cmdUpdateBookmark = "bookmark update"
	cmdDeleteBookmark = "bookmark delete"
)

// Runner runs sidecar calls.
type Runner interface {
	Query(ctx context.Context, c sidecar.Context, argLine string) (string, error)
	Write(ctx context.Context, args []string) error
}

// Actions runs the CLI operations through a Runner.
type Actions struct {
	r Runner
}

// New returns the actions backed by r.
func New(r Runner) *Actions {
	return &Actions{r: r}
}

// Tabs returns the open tabs.
func (a *Actions) Tabs(ctx context.Context) ([]sidecar.TabItem, error) {
	return query[sidecar.TabItem](ctx, a.r, sidecar.Tabs, cmdTabs)
}

// RecentlyClosed returns the recently closed tabs.
func (a *Actions) RecentlyClosed(ctx context.Context) ([]sidecar.TabItem, error) {
	return query[sidecar.TabItem](ctx, a.r, sidecar.Tabs, cmdRecentlyClosed)
}

// Bookmarks returns every bookmark.
func (a *Actions) Bookmarks(ctx context.Context) ([]sidecar.BookmarkItem, error) {
	return query[sidecar.BookmarkItem](ctx, a.r, sidecar.Bookmarks, cmdBookmarks)
}

// History returns the browsing history.
func (a *Actions) History(ctx context.Context) ([]sidecar.HistoryItem, error) {
	return query[sidecar.HistoryItem](ctx, a.r, sidecar.History, cmdHistory)
}

// SwitchTab focuses the tab with the given id.
func (a *Actions) SwitchTab(ctx context.Context, id string) error {
	return a.tabCmd(ctx, cmdSwitchTab, id)
}

// CloseTab closes the tab with the given id.
func (a *Actions) CloseTab(ctx context.Context, id string) error {
	return a.tabCmd(ctx, cmdCloseTab, id)
}

func (a *Actions) tabCmd(ctx context.Context, cmd, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrIDEmpty
	}
	if _, err := a.r.Query(ctx, sidecar.Tabs, cmd+" "+id); err != nil {
		return fmt.Errorf("%s %s: %w", cmd, id, err)
	}
	slog.Debug("tab command done", "cmd", cmd, "id", id)

	return nil
}

// Bookmark holds the editable fields of a bookmark. Folder is a path such as
// "/Bookmarks Toolbar/go/", empty for the default folder.
type Bookmark struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Folder string `json:"folder"`
}

// Validate checks the URL and the folder path.
func (b *Bookmark) Validate() error {
	if b.URL == "" {
		return fmt.Errorf("%w: empty", ErrInvalidURL)
	}
	u, err := url.Parse(b.URL)
	if err != nil || u.Scheme == "" || (u.Host == "" && u.Opaque == "") {
		return fmt.Errorf("%w: %q", ErrInvalidURL, b.URL)
	}
	if b.Folder != "" && (!strings.HasPrefix(b.Folder, "/") || !strings.HasSuffix(b.Folder, "/")) {
		return fmt.Errorf("%w: %q", ErrInvalidFolder, b.Folder)
	}

	return nil
}

func (b *Bookmark) args() []string {
	return []string{"-t", b.Title, "-u", b.URL, "-f", b.Folder}
}

// CreateBookmark creates a new bookmark.
func (a *Actions) CreateBookmark(ctx context.Context, b *Bookmark) error {
	if err := b.Validate(); err != nil {
		return err
	}
	args := append(strings.Fields(cmdCreateBookmark), b.args()...)

	return a.write(ctx, args)
}

// UpdateBookmark replaces the fields of the bookmark with the given id.
func (a *Actions) UpdateBookmark(ctx context.Context, id string, b *Bookmark) error {
	if strings.TrimSpace(id) == "" {
		return ErrIDEmpty
	}
	if err := b.Validate(); err != nil {
		return err
	}
	args := append(strings.Fields(cmdUpdateBookmark), id)
	args = append(args, b.args()...)

	return a.write(ctx, args)
}

// DeleteBookmark deletes the bookmark with the given id.
func (a *Actions) DeleteBookmark(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrIDEmpty
	}

	return a.write(ctx, append(strings.Fields(cmdDeleteBookmark), id))
}

func (a *Actions) write(ctx context.Context, args []string) error {
	if err := a.r.Write(ctx, args); err != nil {
		return fmt.Errorf("%s: %w", strings.Join(args[:2], " "), err)
	}

	return nil
}

func query[T any](ctx context.Context, r Runner, c sidecar.Context, argLine string) ([]T, error) {
	s, err := r.Query(ctx, c, argLine)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", argLine, err)
	}
	var items []T
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, fmt.Errorf("%w: %w", sidecar.ErrDecode, err)
	}

	return items, nil
}
