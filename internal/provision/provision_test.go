package provision

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateconpizza/mzd/internal/manifest"
	"github.com/mateconpizza/mzd/internal/platform"
)

var errWrite = errors.New("disk full")

type fakeWriter struct {
	calls  atomic.Int32
	failOn platform.Browser
	seen   []platform.Browser
	mu     sync.Mutex
}

func (f *fakeWriter) Write(_ platform.OS, b platform.Browser) (*manifest.Result, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.seen = append(f.seen, b)
	f.mu.Unlock()
	if b == f.failOn {
		return nil, errWrite
	}

	return manifest.Written(b, "/tmp/"+b.Name(), "{}"), nil
}

func TestWriteAllOrder(t *testing.T) {
	t.Parallel()
	w := &fakeWriter{}
	results, err := WriteAll(w, platform.Linux)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, platform.Builtins(), w.seen)
	for i, b := range platform.Builtins() {
		assert.Equal(t, b, results[i].Browser)
	}
}

func TestWriteAllFailFast(t *testing.T) {
	t.Parallel()
	w := &fakeWriter{failOn: platform.Chrome}
	results, err := WriteAll(w, platform.Linux)
	require.ErrorIs(t, err, errWrite)
	assert.Nil(t, results)
	assert.Equal(t, []platform.Browser{platform.Firefox, platform.Chrome}, w.seen, "edge must not run")
}

func TestSessionInitOnce(t *testing.T) {
	t.Parallel()
	w := &fakeWriter{}
	s := NewSession(w, platform.Linux)
	assert.False(t, s.Done())

	const callers = 16
	var (
		wg    sync.WaitGroup
		first atomic.Int32
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := s.Init()
			assert.NoError(t, err)
			assert.Len(t, r.Results, 3)
			if r.WasFirstCall {
				first.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), first.Load())
	assert.Equal(t, int32(3), w.calls.Load(), "batch must run exactly once")
	assert.True(t, s.Done())

	r, err := s.Init()
	require.NoError(t, err)
	assert.False(t, r.WasFirstCall)
	assert.Equal(t, int32(3), w.calls.Load())
}

func TestSessionCachesError(t *testing.T) {
	t.Parallel()
	w := &fakeWriter{failOn: platform.Firefox}
	s := NewSession(w, platform.Linux)

	_, err := s.Init()
	require.ErrorIs(t, err, errWrite)
	_, err = s.Init()
	require.ErrorIs(t, err, errWrite)
	assert.Equal(t, int32(1), w.calls.Load())
}

func TestBrowserManifestsPartialFailure(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	valid := filepath.Join(dir, manifest.Filename)
	require.NoError(t, os.WriteFile(valid, []byte(`{"name":"mozeidon"}`), 0o644))
	braveDir := filepath.Join(dir, "brave")
	require.NoError(t, os.MkdirAll(braveDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(braveDir, manifest.Filename), []byte(`{}`), 0o644))
	emptyDir := filepath.Join(dir, "empty")
	require.NoError(t, os.MkdirAll(emptyDir, 0o755))

	customs := []*CustomManifest{
		{BrowserName: "Vivaldi", RelativeDir: valid},
		{BrowserName: "Zen", RelativeDir: filepath.Join(dir, "missing", manifest.Filename)},
		{BrowserName: "Brave", RelativeDir: braveDir},
		{BrowserName: "Empty", RelativeDir: emptyDir},
	}

	w := &fakeWriter{}
	results, err := BrowserManifests(w, platform.Linux, customs)
	require.NoError(t, err)
	require.Len(t, results, 5)

	vivaldi := results[3]
	assert.Equal(t, platform.Custom("Vivaldi"), vivaldi.Browser)
	assert.False(t, vivaldi.Written)
	assert.Equal(t, valid, *vivaldi.Path)
	assert.JSONEq(t, `{"name":"mozeidon"}`, *vivaldi.Content)

	assert.Equal(t, platform.Custom("Brave"), results[4].Browser)
	assert.Equal(t, filepath.Join(braveDir, manifest.Filename), *results[4].Path)
}

func TestBrowserManifestsBuiltinFailure(t *testing.T) {
	t.Parallel()
	w := &fakeWriter{failOn: platform.Edge}
	_, err := BrowserManifests(w, platform.Linux, nil)
	assert.ErrorIs(t, err, errWrite)
}

func TestCustomManifestBrowser(t *testing.T) {
	t.Parallel()
	assert.Equal(t, platform.Firefox, (&CustomManifest{BrowserName: "firefox"}).Browser())
	assert.Equal(t, platform.Custom("Arc"), (&CustomManifest{BrowserName: "Arc"}).Browser())
}
