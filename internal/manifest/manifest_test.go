package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateconpizza/mzd/internal/platform"
	"github.com/mateconpizza/mzd/internal/sys/files"
)

const testHostPath = "/opt/mozeidon/mozeidon-native-app"

type fakeRegistry struct {
	mu   sync.Mutex
	keys map[string]string
	sets int
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{keys: make(map[string]string)}
}

func (r *fakeRegistry) Lookup(key string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.keys[key]

	return v, ok, nil
}

func (r *fakeRegistry) Set(key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys[key] = value
	r.sets++

	return nil
}

// setupStore returns a store rooted at a temp dir, with the config and
// local-data roots created.
func setupStore(t *testing.T, opts ...OptFn) (*Store, platform.StaticDirs) {
	t.Helper()
	root := t.TempDir()
	dirs := platform.StaticDirs{
		Config:    filepath.Join(root, "config"),
		LocalData: filepath.Join(root, "data"),
	}
	opts = append([]OptFn{WithHostPath(func() (string, error) { return testHostPath, nil })}, opts...)

	return New(platform.NewCatalog(dirs), opts...), dirs
}

// install creates the parent of browser b's native-messaging directory.
func install(t *testing.T, s *Store, o platform.OS, b platform.Browser) string {
	t.Helper()
	dir, err := s.UserDirPath(o, b)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(dir), 0o755))

	return dir
}

func TestWriteNotInstalled(t *testing.T) {
	t.Parallel()
	s, dirs := setupStore(t)
	for _, b := range platform.Builtins() {
		r, err := s.Write(platform.Linux, b)
		require.NoError(t, err)
		assert.Equal(t, b, r.Browser)
		assert.False(t, r.Written)
		assert.Nil(t, r.Path)
		assert.Nil(t, r.Content)
		assert.False(t, r.Installed())
	}
	assert.NoDirExists(t, dirs.Config)
	assert.NoDirExists(t, dirs.LocalData)
}

func TestWriteIdempotent(t *testing.T) {
	t.Parallel()
	s, _ := setupStore(t)
	dir := install(t, s, platform.Linux, platform.Firefox)

	first, err := s.Write(platform.Linux, platform.Firefox)
	require.NoError(t, err)
	assert.True(t, first.Written)
	require.NotNil(t, first.Path)
	assert.Equal(t, filepath.Join(dir, Filename), *first.Path)
	assert.Contains(t, *first.Content, testHostPath)
	assert.NotContains(t, *first.Content, Placeholder)

	second, err := s.Write(platform.Linux, platform.Firefox)
	require.NoError(t, err)
	assert.False(t, second.Written)
	assert.Equal(t, *first.Path, *second.Path)
	assert.Equal(t, *first.Content, *second.Content)
}

func TestWriteKeepsExistingContent(t *testing.T) {
	t.Parallel()
	s, _ := setupStore(t)
	dir := install(t, s, platform.Linux, platform.Chrome)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	dest := filepath.Join(dir, Filename)
	require.NoError(t, os.WriteFile(dest, []byte(`{"edited":true}`), 0o644))

	r, err := s.Write(platform.Linux, platform.Chrome)
	require.NoError(t, err)
	assert.False(t, r.Written)
	assert.JSONEq(t, `{"edited":true}`, *r.Content)
}

func TestWriteTemplatePerFamily(t *testing.T) {
	t.Parallel()
	s, _ := setupStore(t)
	for _, b := range platform.Builtins() {
		install(t, s, platform.MacOS, b)
		r, err := s.Write(platform.MacOS, b)
		require.NoError(t, err)
		require.True(t, r.Written, b.String())
		if b == platform.Firefox {
			assert.Contains(t, *r.Content, "allowed_extensions")
		} else {
			assert.Contains(t, *r.Content, "allowed_origins")
		}
	}
}

func TestWriteCustomBrowserRejected(t *testing.T) {
	t.Parallel()
	s, _ := setupStore(t)
	_, err := s.Write(platform.Linux, platform.Custom("Brave"))
	assert.ErrorIs(t, err, ErrUnsupportedBrowser)

	_, err = s.WriteCustom(platform.Linux, "x", "{}", platform.Custom("Brave"))
	assert.ErrorIs(t, err, ErrUnsupportedBrowser)
}

func TestWriteUserDirNotFound(t *testing.T) {
	t.Parallel()
	s := New(platform.NewCatalog(platform.StaticDirs{}))
	_, err := s.Write(platform.Linux, platform.Firefox)
	require.ErrorIs(t, err, platform.ErrUserDirNotFound)
	assert.NotErrorIs(t, err, platform.ErrUnsupportedPlatform)

	_, err = s.UserDirPath(platform.Linux, platform.Chrome)
	assert.ErrorIs(t, err, platform.ErrUserDirNotFound)
}

func TestUnsupportedCombinationCheckedFirst(t *testing.T) {
	t.Parallel()
	resolved, _ := setupStore(t)
	unresolved := New(platform.NewCatalog(platform.StaticDirs{}))
	bad := platform.OS(42)

	for _, s := range []*Store{resolved, unresolved} {
		_, err := s.UserDirPath(bad, platform.Firefox)
		require.ErrorIs(t, err, platform.ErrUnsupportedCombination)
		assert.NotErrorIs(t, err, platform.ErrUserDirNotFound)

		_, err = s.UserDirPath(platform.Linux, platform.Custom("Brave"))
		assert.ErrorIs(t, err, platform.ErrUnsupportedCombination)

		_, err = s.Write(bad, platform.Firefox)
		require.ErrorIs(t, err, platform.ErrUnsupportedPlatform)
		assert.NotErrorIs(t, err, platform.ErrUserDirNotFound)

		_, err = s.Inspect(bad, platform.Edge)
		assert.ErrorIs(t, err, platform.ErrUnsupportedPlatform)

		_, err = s.WriteCustom(bad, "x", "{}", platform.Chrome)
		assert.ErrorIs(t, err, platform.ErrUnsupportedPlatform)
	}
}

func TestWriteHostPathError(t *testing.T) {
	t.Parallel()
	s, _ := setupStore(t, WithHostPath(func() (string, error) {
		return "", os.ErrNotExist
	}))
	install(t, s, platform.Linux, platform.Edge)
	_, err := s.Write(platform.Linux, platform.Edge)
	assert.ErrorIs(t, err, ErrSidecarNotFound)
}

func TestWriteWindowsRegistry(t *testing.T) {
	t.Parallel()
	reg := newFakeRegistry()
	s, _ := setupStore(t, WithRegistry(reg))
	dir := install(t, s, platform.Windows, platform.Edge)
	dest := filepath.Join(dir, Filename)
	key := `Software\Microsoft\Edge\NativeMessagingHosts\` + DefaultHost

	r, err := s.Write(platform.Windows, platform.Edge)
	require.NoError(t, err)
	assert.True(t, r.Written)
	assert.Equal(t, platform.RegistryRoot+key, *r.Path)
	assert.Equal(t, dest, reg.keys[key])

	again, err := s.Write(platform.Windows, platform.Edge)
	require.NoError(t, err)
	assert.False(t, again.Written)
	assert.Equal(t, dest, *again.Path)
	assert.Equal(t, 1, reg.sets)
}

func TestWriteWindowsRegistryDrift(t *testing.T) {
	t.Parallel()
	reg := newFakeRegistry()
	s, _ := setupStore(t, WithRegistry(reg))
	dir := install(t, s, platform.Windows, platform.Chrome)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	dest := filepath.Join(dir, Filename)
	require.NoError(t, os.WriteFile(dest, []byte("{}"), 0o644))

	key := `Software\Google\Chrome\NativeMessagingHosts\` + DefaultHost
	reg.keys[key] = `C:\somewhere\else.json`

	r, err := s.Write(platform.Windows, platform.Chrome)
	require.NoError(t, err)
	assert.True(t, r.Written, "drifted registry value must trigger a rewrite")
	assert.Equal(t, dest, reg.keys[key])
	assert.Contains(t, *r.Content, testHostPath)
}

func TestWriteCustom(t *testing.T) {
	t.Parallel()
	s, dirs := setupStore(t)
	rel := filepath.Join("BraveSoftware", "Brave-Browser", "NativeMessagingHosts")
	require.NoError(t, os.MkdirAll(filepath.Join(dirs.LocalData, rel), 0o755))

	r, err := s.WriteCustom(platform.Linux, rel, `{"name":"mozeidon"}`, platform.Chrome)
	require.NoError(t, err)
	assert.True(t, r.Written)
	assert.Equal(t, filepath.Join(dirs.LocalData, rel, Filename), *r.Path)

	data, err := os.ReadFile(*r.Path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"mozeidon"}`, string(data))

	p, content, ok, err := Read(filepath.Join(dirs.LocalData, rel))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, *r.Path, p)
	assert.Equal(t, *r.Content, content)
}

func TestWriteCustomMissingDir(t *testing.T) {
	t.Parallel()
	s, _ := setupStore(t)
	_, err := s.WriteCustom(platform.Linux, "does/not/exist", "{}", platform.Firefox)
	assert.ErrorIs(t, err, ErrDirectoryNotFound)
}

func TestRender(t *testing.T) {
	t.Parallel()
	tmpl := `{"path": "` + Placeholder + `"}`
	assert.JSONEq(t, `{"path": "/usr/bin/host"}`, Render(tmpl, "/usr/bin/host"))
	assert.JSONEq(t, `{"path": "C:\\Program Files\\host.exe"}`, Render(tmpl, `C:\Program Files\host.exe`))
}

func TestBundleOverride(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, templateGecko), []byte(`{"override":"`+Placeholder+`"}`), 0o644))

	b := NewBundle(dir)
	s, err := b.Load(templateGecko)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, `{"override"`))

	s, err = b.Load(templateChromium)
	require.NoError(t, err)
	assert.Contains(t, s, Placeholder)

	_, err = b.Load("missing.json")
	assert.ErrorIs(t, err, ErrResourceResolve)
}

func TestInspect(t *testing.T) {
	t.Parallel()
	s, _ := setupStore(t)

	st, err := s.Inspect(platform.Linux, platform.Firefox)
	require.NoError(t, err)
	assert.False(t, st.Installed)
	assert.False(t, st.Present)

	install(t, s, platform.Linux, platform.Firefox)
	st, err = s.Inspect(platform.Linux, platform.Firefox)
	require.NoError(t, err)
	assert.True(t, st.Installed)
	assert.False(t, st.Present)
	assert.False(t, files.Exists(st.Dir), "inspect must not create directories")

	_, err = s.Write(platform.Linux, platform.Firefox)
	require.NoError(t, err)
	st, err = s.Inspect(platform.Linux, platform.Firefox)
	require.NoError(t, err)
	assert.True(t, st.Present)
	assert.True(t, st.Registered)

	_, err = s.Inspect(platform.Linux, platform.Custom("Brave"))
	assert.ErrorIs(t, err, ErrUnsupportedBrowser)
}
