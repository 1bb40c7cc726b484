package dashkit

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/dashkit/internal/version"
	"github.com/arthur-debert/dashkit/pkg/dashboard"
	"github.com/arthur-debert/dashkit/pkg/errors"
	"github.com/arthur-debert/dashkit/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// project creates a project root with the given dashboards and context and
// isolates the user config, environment and log file from the host.
func project(t *testing.T, context string, dashboards map[string]string) string {
	t.Helper()

	root := t.TempDir()
	t.Setenv("DASHKIT_CONFIG_DIR", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
	for _, kv := range os.Environ() {
		name := strings.SplitN(kv, "=", 2)[0]
		if strings.HasPrefix(name, "DASHKIT_") && name != "DASHKIT_CONFIG_DIR" {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}

	dir := filepath.Join(root, "dashboards")
	require.NoError(t, os.MkdirAll(dir, 0755))
	for slug, content := range dashboards {
		require.NoError(t, os.WriteFile(filepath.Join(dir, slug+".json"), []byte(content), 0644))
	}
	if context != "" {
		cfg := "[context]\ndashboard = \"" + context + "\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(root, "dashkit.toml"), []byte(cfg), 0644))
	}
	return root
}

func run(t *testing.T, root string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"-C", root}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func readDashboard(t *testing.T, root, slug string) *dashboard.Document {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, "dashboards", slug+".json"))
	require.NoError(t, err)
	doc, err := dashboard.Parse(data)
	require.NoError(t, err)
	return doc
}

func fixtures() map[string]string {
	return map[string]string{
		"alpha": testutil.Dashboard("Alpha",
			testutil.Row("S1", "P1", "P2"),
			testutil.Row("S2", "P3"),
		),
		"beta": testutil.Dashboard("Beta",
			testutil.Row("B1", "Q1"),
			testutil.Row("B2", "Q2", "Q3"),
		),
	}
}

func TestMoveCommand(t *testing.T) {
	root := project(t, "alpha", fixtures())

	out, err := run(t, root, "move", "row", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Row successfully moved.")

	alpha := readDashboard(t, root, "alpha")
	assert.Equal(t, []string{"S2", "S1"}, testutil.RowTitles(alpha))
	_, hasVersion := alpha.Field("version")
	assert.False(t, hasVersion, "version is dropped on save")
}

func TestMoveCommandAcceptsUppercaseKind(t *testing.T) {
	root := project(t, "alpha", fixtures())

	_, err := run(t, root, "move", "PANEL", "1.1", "beta.2.1")
	require.NoError(t, err)

	alpha := readDashboard(t, root, "alpha")
	beta := readDashboard(t, root, "beta")
	assert.Equal(t, []string{"P2"}, testutil.PanelTitles(t, alpha, 1))
	assert.Equal(t, []string{"P1", "Q2", "Q3"}, testutil.PanelTitles(t, beta, 2))
}

func TestCopyCommandJSON(t *testing.T) {
	root := project(t, "alpha", fixtures())

	out, err := run(t, root, "--format", "json", "copy", "panel", "1.2", "beta.1.1")
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "copy", got["operation"])
	assert.Equal(t, "panel", got["kind"])
	assert.Equal(t, []interface{}{"beta"}, got["saved"])

	alpha := readDashboard(t, root, "alpha")
	beta := readDashboard(t, root, "beta")
	assert.Equal(t, []string{"P1", "P2"}, testutil.PanelTitles(t, alpha, 1))
	assert.Equal(t, []string{"P2", "Q1"}, testutil.PanelTitles(t, beta, 1))
}

func TestDryRunLeavesFilesUntouched(t *testing.T) {
	dashboards := fixtures()
	root := project(t, "alpha", dashboards)

	out, err := run(t, root, "--dry-run", "move", "row", "1", "beta.1")
	require.NoError(t, err)
	assert.Contains(t, out, "dry run")
	assert.Contains(t, out, "would save: beta, alpha")

	for slug, content := range dashboards {
		data, err := os.ReadFile(filepath.Join(root, "dashboards", slug+".json"))
		require.NoError(t, err)
		assert.Equal(t, content, string(data), slug)
	}
}

func TestRelocateErrors(t *testing.T) {
	tests := []struct {
		name    string
		context string
		args    []string
		code    errors.ErrorCode
	}{
		{"no context", "", []string{"move", "row", "1", "2"}, errors.ErrContextMissing},
		{"bad shape", "alpha", []string{"move", "row", "1.1", "2"}, errors.ErrAddressShape},
		{"unsupported kind", "alpha", []string{"move", "graph", "1", "2"}, errors.ErrUnsupported},
		{"out of range", "alpha", []string{"copy", "row", "7", "1"}, errors.ErrIndexOutOfRange},
		{"missing destination", "alpha", []string{"move", "row", "1", "gamma.1"}, errors.ErrDocumentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := project(t, tt.context, fixtures())

			_, err := run(t, root, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)

			assert.Equal(t, []string{"S1", "S2"}, testutil.RowTitles(readDashboard(t, root, "alpha")))
		})
	}
}

func TestRelocateRequiresThreeArguments(t *testing.T) {
	root := project(t, "alpha", fixtures())

	_, err := run(t, root, "move", "row", "1")
	assert.Error(t, err)
}

func TestSummarizeCommand(t *testing.T) {
	root := project(t, "alpha", fixtures())

	t.Run("context dashboard as yaml", func(t *testing.T) {
		out, err := run(t, root, "-f", "yaml", "summarize")
		require.NoError(t, err)

		var got map[string]interface{}
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Equal(t, "Alpha", got["title"])
		assert.Equal(t, 2, got["rowCount"])
	})

	t.Run("named dashboard as text", func(t *testing.T) {
		out, err := run(t, root, "summarize", "beta")
		require.NoError(t, err)
		assert.Contains(t, out, "Beta")
		assert.Contains(t, out, "Q2, Q3")
		assert.Contains(t, out, "Showed dashboard beta summary successfully.")
	})
}

func TestSetAndShowContext(t *testing.T) {
	root := project(t, "", fixtures())

	out, err := run(t, root, "set", "context", "dashboard", "beta")
	require.NoError(t, err)
	assert.Contains(t, out, "Context dashboard set to beta.")

	out, err = run(t, root, "show", "context")
	require.NoError(t, err)
	assert.Contains(t, out, "beta")

	_, err = run(t, root, "move", "row", "2", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"B2", "B1"}, testutil.RowTitles(readDashboard(t, root, "beta")))
}

func TestSetContextWarnsAboutUnknownDashboard(t *testing.T) {
	root := project(t, "", fixtures())

	out, err := run(t, root, "set", "context", "dashboard", "gamma")
	require.NoError(t, err)
	assert.Contains(t, out, "Dashboard gamma does not exist yet.")
	assert.Contains(t, out, "Context dashboard set to gamma.")
}

func TestSetContextRejectsUnknownKey(t *testing.T) {
	root := project(t, "", fixtures())

	_, err := run(t, root, "set", "context", "panel", "1")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestListCommand(t *testing.T) {
	root := project(t, "beta", fixtures())

	out, err := run(t, root, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "beta (context)")

	out, err = run(t, root, "-f", "json", "list")
	require.NoError(t, err)
	var got listData
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, listData{Dashboards: []string{"alpha", "beta"}, Context: "beta"}, got)
}

func TestStatusCommand(t *testing.T) {
	root := project(t, "alpha", fixtures())

	out, err := run(t, root, "-f", "json", "status")
	require.NoError(t, err)

	var got statusData
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.ConfigExists)
	assert.True(t, got.DashboardsExist)
	assert.Equal(t, 2, got.Dashboards)
	assert.Equal(t, "alpha", got.Context)
	assert.Equal(t, "json", got.Format)
}

func TestInitCommand(t *testing.T) {
	root := project(t, "", nil)
	require.NoError(t, os.RemoveAll(filepath.Join(root, "dashboards")))

	out, err := run(t, root, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created dashboards directory")

	info, err := os.Stat(filepath.Join(root, "dashboards"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	_, err = os.Stat(filepath.Join(root, "dashkit.toml"))
	require.NoError(t, err)

	out, err = run(t, root, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")
}

func TestDashboardsDirFlag(t *testing.T) {
	root := project(t, "alpha", nil)
	other := filepath.Join(root, "elsewhere")
	require.NoError(t, os.MkdirAll(other, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(other, "alpha.json"), []byte(fixtures()["alpha"]), 0644))

	_, err := run(t, root, "--dashboards-dir", "elsewhere", "copy", "row", "2", "1")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(other, "alpha.json"))
	require.NoError(t, err)
	doc, err := dashboard.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"S2", "S1", "S2"}, testutil.RowTitles(doc))
}

func TestNoCommandShowsHelp(t *testing.T) {
	root := project(t, "", nil)

	out, err := run(t, root)
	assert.Error(t, err)
	assert.Contains(t, out, "EDIT")
}

func TestVersionCommand(t *testing.T) {
	root := project(t, "", nil)

	out, err := run(t, root, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version: "+version.Version)
	assert.Contains(t, out, "Commit: "+version.Commit)

	out, err = run(t, root, "-f", "json", "version")
	require.NoError(t, err)
	var got version.Info
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, version.Get(), got)
}

func TestVersionIgnoresBrokenConfig(t *testing.T) {
	root := project(t, "", nil)
	require.NoError(t, os.WriteFile(filepath.Join(root, "dashkit.toml"), []byte("[output\nformat = "), 0644))

	_, err := run(t, root, "status")
	require.Error(t, err)

	_, err = run(t, root, "version")
	assert.NoError(t, err)
}
