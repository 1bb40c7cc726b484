// pkg/datastore/filesystem_test.go
// TEST TYPE: DataStore Tests
// DEPENDENCIES: In-memory afero filesystem
// PURPOSE: Test loading, saving and listing dashboards

package datastore_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dashkit/pkg/datastore"
	"github.com/arthur-debert/dashkit/pkg/errors"
	"github.com/arthur-debert/dashkit/pkg/filesystem"
	"github.com/arthur-debert/dashkit/pkg/paths"
	"github.com/arthur-debert/dashkit/pkg/testutil"
	"github.com/arthur-debert/dashkit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T, dashboards map[string]string) (datastore.DataStore, types.FS, *paths.Paths) {
	t.Helper()

	p, err := paths.New("/work", "")
	require.NoError(t, err)

	fs := testutil.NewTestFS()
	require.NoError(t, fs.MkdirAll(p.DashboardsDir(), 0755))
	for slug, content := range dashboards {
		require.NoError(t, fs.WriteFile(p.DashboardFile(slug), []byte(content), 0644))
	}

	return datastore.New(fs, p), fs, p
}

func TestLoad(t *testing.T) {
	store, _, _ := setupStore(t, map[string]string{
		"alpha":  testutil.Dashboard("Alpha", testutil.Row("S1", "P1", "P2"), testutil.Row("S2", "P3")),
		"broken": `{"title": "x", "rows": [`,
		"norows": `{"title": "x"}`,
	})

	t.Run("valid dashboard", func(t *testing.T) {
		doc, err := store.Load("alpha")
		require.NoError(t, err)
		assert.Equal(t, "Alpha", doc.Title)
		assert.Equal(t, []string{"S1", "S2"}, testutil.RowTitles(doc))
	})

	t.Run("missing dashboard", func(t *testing.T) {
		_, err := store.Load("ghost")
		assert.True(t, errors.IsErrorCode(err, errors.ErrDocumentNotFound), "got %v", err)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := store.Load("broken")
		assert.True(t, errors.IsErrorCode(err, errors.ErrDocumentInvalid), "got %v", err)
	})

	t.Run("missing required field", func(t *testing.T) {
		_, err := store.Load("norows")
		assert.True(t, errors.IsErrorCode(err, errors.ErrDocumentInvalid), "got %v", err)
		assert.Contains(t, err.Error(), "rows")
	})

	t.Run("invalid slug", func(t *testing.T) {
		_, err := store.Load("../etc/passwd")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
	})
}

func TestSave(t *testing.T) {
	store, fs, p := setupStore(t, map[string]string{
		"alpha": testutil.Dashboard("Alpha", testutil.Row("S1", "P1")),
	})

	doc, err := store.Load("alpha")
	require.NoError(t, err)
	require.True(t, doc.HasVersion())

	doc.Rows[0].Title = "renamed"
	require.NoError(t, store.Save("alpha", doc))

	data, err := fs.ReadFile(p.DashboardFile("alpha"))
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw, "version", "version must be stripped on save")
	assert.Contains(t, string(data), "\n  \"title\": \"Alpha\"", "output is indented with two spaces")
	assert.Equal(t, byte('\n'), data[len(data)-1])

	reloaded, err := store.Load("alpha")
	require.NoError(t, err)
	assert.Equal(t, "renamed", reloaded.Rows[0].Title)

	_, err = fs.Stat(p.DashboardFile("alpha") + ".tmp")
	assert.Error(t, err, "temporary file must not be left behind")
}

func TestSaveCreatesNewDashboard(t *testing.T) {
	store, _, _ := setupStore(t, map[string]string{"beta": testutil.Dashboard("Beta")})

	beta, err := store.Load("beta")
	require.NoError(t, err)

	exists, err := store.Exists("copy")
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, store.Save("copy", beta))
	exists, err = store.Exists("copy")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExistsAndList(t *testing.T) {
	store, fs, p := setupStore(t, map[string]string{
		"beta":  testutil.Dashboard("Beta"),
		"alpha": testutil.Dashboard("Alpha"),
	})
	require.NoError(t, fs.WriteFile(filepath.Join(p.DashboardsDir(), "notes.txt"), []byte("x"), 0644))
	require.NoError(t, fs.MkdirAll(filepath.Join(p.DashboardsDir(), "archive.json"), 0755))

	exists, err := store.Exists("alpha")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.Exists("gamma")
	require.NoError(t, err)
	assert.False(t, exists)

	slugs, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, slugs)
}

func TestInitAndDir(t *testing.T) {
	p, err := paths.New("/work", "grafana")
	require.NoError(t, err)
	store := datastore.New(testutil.NewTestFS(), p)

	dir, exists, err := store.Dir()
	require.NoError(t, err)
	assert.Equal(t, "/work/grafana", filepath.ToSlash(dir))
	assert.False(t, exists)

	_, err = store.List()
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))

	created, err := store.Init()
	require.NoError(t, err)
	assert.True(t, created)

	created, err = store.Init()
	require.NoError(t, err)
	assert.False(t, created)

	_, exists, err = store.Dir()
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestDirIsFile(t *testing.T) {
	p, err := paths.New("/work", "")
	require.NoError(t, err)
	fs := testutil.NewTestFS()
	require.NoError(t, fs.WriteFile(p.DashboardsDir(), []byte("x"), 0644))

	_, _, err = datastore.New(fs, p).Dir()
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}

func TestOSFilesystemRoundTrip(t *testing.T) {
	root := t.TempDir()
	p, err := paths.New(root, "")
	require.NoError(t, err)
	fs := filesystem.NewOS()
	require.NoError(t, fs.MkdirAll(p.DashboardsDir(), 0755))
	require.NoError(t, fs.WriteFile(p.DashboardFile("alpha"),
		[]byte(testutil.Dashboard("Alpha", testutil.Row("S1", "P1"))), 0644))

	store := datastore.New(fs, p)
	doc, err := store.Load("alpha")
	require.NoError(t, err)
	require.NoError(t, store.Save("alpha", doc))

	again, err := store.Load("alpha")
	require.NoError(t, err)
	assert.Equal(t, []string{"S1"}, testutil.RowTitles(again))
	assert.False(t, again.HasVersion())
}
