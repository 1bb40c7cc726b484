package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dashkit/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ types.FS = (*FS)(nil)

func exerciseFS(t *testing.T, fsys types.FS, root string) {
	t.Helper()

	dir := filepath.Join(root, "dashboards")
	require.NoError(t, fsys.MkdirAll(dir, 0755))

	file := filepath.Join(dir, "alpha.json")
	content := []byte(`{"title":"Alpha"}`)
	require.NoError(t, fsys.WriteFile(file, content, 0644))

	info, err := fsys.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, "alpha.json", info.Name())
	assert.Equal(t, int64(len(content)), info.Size())

	got, err := fsys.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	renamed := filepath.Join(dir, "beta.json")
	require.NoError(t, fsys.Rename(file, renamed))
	_, err = fsys.Stat(file)
	assert.True(t, os.IsNotExist(err))

	entries, err := fsys.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "beta.json", entries[0].Name())

	require.NoError(t, fsys.Remove(renamed))
	_, err = fsys.Stat(renamed)
	assert.True(t, os.IsNotExist(err))
}

func TestNewOS(t *testing.T) {
	exerciseFS(t, NewOS(), t.TempDir())
}

func TestNewMemory(t *testing.T) {
	exerciseFS(t, NewMemory(), "/work")
}

func TestReadFileOnDirectory(t *testing.T) {
	for name, fsys := range map[string]*FS{"memory": NewMemory(), "os": NewOS()} {
		t.Run(name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "work")
			require.NoError(t, fsys.MkdirAll(dir, 0755))

			_, err := fsys.ReadFile(dir)
			assert.Error(t, err)
		})
	}
}

func TestReadDirIsSorted(t *testing.T) {
	fsys := New(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/work", 0755))
	for _, name := range []string{"c.json", "a.json", "b.json"} {
		require.NoError(t, fsys.WriteFile(filepath.Join("/work", name), []byte("{}"), 0644))
	}

	entries, err := fsys.ReadDir("/work")
	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	assert.Equal(t, []string{"a.json", "b.json", "c.json"}, names)
}
