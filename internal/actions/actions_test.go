package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateconpizza/mzd/internal/sidecar"
)

type call struct {
	ctx   sidecar.Context
	line  string
	args  []string
	write bool
}

type fakeRunner struct {
	calls  []call
	output string
	err    error
}

func (f *fakeRunner) Query(_ context.Context, c sidecar.Context, argLine string) (string, error) {
	f.calls = append(f.calls, call{ctx: c, line: argLine})
	if f.err != nil {
		return "", f.err
	}
	if f.output == "" {
		return "[]", nil
	}

	return f.output, nil
}

func (f *fakeRunner) Write(_ context.Context, args []string) error {
	f.calls = append(f.calls, call{args: args, write: true})
	return f.err
}

func TestTabs(t *testing.T) {
	t.Parallel()
	r := &fakeRunner{output: `[{"id":3,"domain":"go.dev","title":"Go","url":"https://go.dev","windowId":1}]`}
	tabs, err := New(r).Tabs(t.Context())
	require.NoError(t, err)
	require.Len(t, tabs, 1)
	assert.Equal(t, uint64(3), tabs[0].ID)
	assert.Equal(t, call{ctx: sidecar.Tabs, line: "tabs get"}, r.calls[0])
}

func TestQueries(t *testing.T) {
	t.Parallel()
	r := &fakeRunner{}
	a := New(r)
	_, err := a.Bookmarks(t.Context())
	require.NoError(t, err)
	_, err = a.History(t.Context())
	require.NoError(t, err)
	_, err = a.RecentlyClosed(t.Context())
	require.NoError(t, err)

	assert.Equal(t, []call{
		{ctx: sidecar.Bookmarks, line: "bookmarks"},
		{ctx: sidecar.History, line: "history"},
		{ctx: sidecar.Tabs, line: "tabs get --closed"},
	}, r.calls)
}

func TestTabCommands(t *testing.T) {
	t.Parallel()
	r := &fakeRunner{}
	a := New(r)
	require.NoError(t, a.SwitchTab(t.Context(), "42"))
	require.NoError(t, a.CloseTab(t.Context(), " 7 "))
	assert.Equal(t, "tabs switch 42", r.calls[0].line)
	assert.Equal(t, "tabs close 7", r.calls[1].line)

	assert.ErrorIs(t, a.SwitchTab(t.Context(), ""), ErrIDEmpty)
}

func TestBookmarkWrites(t *testing.T) {
	t.Parallel()
	r := &fakeRunner{}
	a := New(r)
	b := &Bookmark{Title: "Go", URL: "https://go.dev", Folder: "/dev/"}

	require.NoError(t, a.CreateBookmark(t.Context(), b))
	require.NoError(t, a.UpdateBookmark(t.Context(), "b1", b))
	require.NoError(t, a.DeleteBookmark(t.Context(), "b1"))

	assert.Equal(t, []string{"bookmark", "new", "-t", "Go", "-u", "https://go.dev", "-f", "/dev/"}, r.calls[0].args)
	assert.Equal(t, []string{"bookmark", "update", "b1", "-t", "Go", "-u", "https://go.dev", "-f", "/dev/"}, r.calls[1].args)
	assert.Equal(t, []string{"bookmark", "delete", "b1"}, r.calls[2].args)
	for _, c := range r.calls {
		assert.True(t, c.write)
	}

	assert.ErrorIs(t, a.DeleteBookmark(t.Context(), ""), ErrIDEmpty)
	assert.ErrorIs(t, a.UpdateBookmark(t.Context(), "", b), ErrIDEmpty)
}

func TestBookmarkValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		b   Bookmark
		err error
	}{
		{Bookmark{URL: "https://go.dev"}, nil},
		{Bookmark{URL: "https://go.dev", Folder: "/a/b/"}, nil},
		{Bookmark{URL: ""}, ErrInvalidURL},
		{Bookmark{URL: "not a url"}, ErrInvalidURL},
		{Bookmark{URL: "https://go.dev", Folder: "a/b/"}, ErrInvalidFolder},
		{Bookmark{URL: "https://go.dev", Folder: "/a/b"}, ErrInvalidFolder},
	}
	for _, tt := range tests {
		err := tt.b.Validate()
		if tt.err == nil {
			assert.NoError(t, err, tt.b)
			continue
		}
		assert.ErrorIs(t, err, tt.err, tt.b)
	}
}

func TestErrorsPropagate(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	a := New(&fakeRunner{err: boom})
	_, err := a.Tabs(t.Context())
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, a.DeleteBookmark(t.Context(), "1"), boom)

	_, err = New(&fakeRunner{output: "{"}).History(t.Context())
	require.ErrorIs(t, err, sidecar.ErrDecode)
}
