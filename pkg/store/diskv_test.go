package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func (t testConfig) Editor() string {
	return "true"
}

func (t testConfig) LogLevel() log.Level {
	return log.DebugLevel
}

func (t testConfig) Source() string {
	return ""
}

func TestPersistenceWriteReadList(t *testing.T) {
	base := filepath.Join(t.TempDir(), "WorkJournal")
	p, err := Load(testConfig{path: base})
	require.NoError(t, err)

	assert.False(t, p.Exists(""))
	require.NoError(t, p.Write("3-4-2024.md", "# TODO\n\n# Notes\n"))
	require.NoError(t, p.Write("3-5-2024.md", "# TODO\n- [ ] b\n# Notes\n"))
	assert.True(t, p.Exists(""))
	assert.True(t, p.Exists("3-5-2024.md"))
	assert.False(t, p.Exists("3-6-2024.md"))

	got, err := p.Read("3-5-2024.md")
	require.NoError(t, err)
	assert.Equal(t, "# TODO\n- [ ] b\n# Notes\n", got)

	onDisk, err := os.ReadFile(filepath.Join(base, "3-5-2024.md"))
	require.NoError(t, err)
	assert.Equal(t, got, string(onDisk))
	assert.Equal(t, filepath.Join(base, "3-5-2024.md"), p.Path("3-5-2024.md"))

	names, err := p.List(context.Background())
	require.NoError(t, err)
	sort.Strings(names)
	assert.Equal(t, []string{"3-4-2024.md", "3-5-2024.md"}, names)
}

func TestPersistenceWriteReplaces(t *testing.T) {
	p, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, p.Write("1-1-2024.md", "first, and longer"))
	require.NoError(t, p.Write("1-1-2024.md", "second"))

	got, err := p.Read("1-1-2024.md")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestPersistenceListMissingDir(t *testing.T) {
	p, err := New(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)

	_, err = p.List(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotExist), "%v", err)

	require.NoError(t, p.EnsureDir())
	names, err := p.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestPersistenceListSkipsHiddenAndNested(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, ".DS_Store"), []byte("x"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(base, "archive"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "archive", "1-1-2020.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(base, "1-2-2020.md"), []byte("x"), 0o644))

	p, err := New(base)
	require.NoError(t, err)
	names, err := p.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1-2-2020.md"}, names)
}

func TestPersistenceReadMissing(t *testing.T) {
	p, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = p.Read("9-9-2024.md")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotExist), "%v", err)
}

func TestPersistenceRejectsPaths(t *testing.T) {
	p, err := New(t.TempDir())
	require.NoError(t, err)
	assert.Error(t, p.Write(filepath.Join("..", "escape.md"), "x"))
}

func TestNewRequiresBasePath(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}

func TestPersistenceThroughSymlinkedDir(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "Dropbox", "WorkJournal")
	require.NoError(t, os.MkdirAll(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "3-4-2024.md"), []byte("# TODO\n- [ ] b\n# Notes\n"), 0o644))
	link := filepath.Join(root, "WorkJournal")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	p, err := New(link)
	require.NoError(t, err)
	assert.True(t, p.Exists(""))

	names, err := p.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"3-4-2024.md"}, names)

	require.NoError(t, p.Write("3-5-2024.md", "# TODO\n\n# Notes\n"))
	_, err = os.Stat(filepath.Join(target, "3-5-2024.md"))
	assert.NoError(t, err)
}

func TestPersistenceWriteLeavesNoTempDir(t *testing.T) {
	base := t.TempDir()
	p, err := New(base)
	require.NoError(t, err)

	require.NoError(t, p.Write("1-1-2024.md", "# TODO\n\n# Notes\n"))
	_, err = os.Stat(filepath.Join(base, tempDirName))
	assert.True(t, errors.Is(err, os.ErrNotExist), "%v", err)

	entries, err := os.ReadDir(base)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "1-1-2024.md", entries[0].Name())
}
