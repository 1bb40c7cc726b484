package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/dashkit/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config dir at an empty temp dir and clears the
// environment variables that would leak into Load.
func isolate(t *testing.T) (root, userDir string) {
	t.Helper()
	root = t.TempDir()
	userDir = t.TempDir()
	t.Setenv("DASHKIT_CONFIG_DIR", userDir)
	t.Setenv("DASHKIT_CONFIG", "")
	for _, kv := range os.Environ() {
		name := strings.SplitN(kv, "=", 2)[0]
		if strings.HasPrefix(name, EnvPrefix) && name != "DASHKIT_CONFIG_DIR" && name != "DASHKIT_CONFIG" {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}
	return root, userDir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	root, _ := isolate(t)

	cfg, err := Load(root, nil)
	require.NoError(t, err)

	assert.Equal(t, "dashboards", cfg.Dashboards.Dir)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.False(t, cfg.Context.HasDefaultDocument())
	assert.Equal(t, filepath.Join(root, "dashkit.toml"), cfg.ProjectFile)
}

func TestLoadLayers(t *testing.T) {
	t.Run("user_config", func(t *testing.T) {
		root, userDir := isolate(t)
		writeFile(t, filepath.Join(userDir, "config.toml"), "[output]\nformat = \"yaml\"\n")

		cfg, err := Load(root, nil)
		require.NoError(t, err)
		assert.Equal(t, FormatYAML, cfg.Output.Format)
	})

	t.Run("project_overrides_user", func(t *testing.T) {
		root, userDir := isolate(t)
		writeFile(t, filepath.Join(userDir, "config.toml"), "[output]\nformat = \"yaml\"\n")
		writeFile(t, filepath.Join(root, "dashkit.toml"), `
[output]
format = "JSON"

[context]
dashboard = " alpha "

[dashboards]
dir = "grafana"
`)

		cfg, err := Load(root, nil)
		require.NoError(t, err)
		assert.Equal(t, FormatJSON, cfg.Output.Format)
		assert.Equal(t, "grafana", cfg.Dashboards.Dir)
		assert.True(t, cfg.Context.HasDefaultDocument())
		assert.Equal(t, "alpha", cfg.Context.DefaultDocument())
	})

	t.Run("config_file_from_env", func(t *testing.T) {
		root, _ := isolate(t)
		custom := filepath.Join(t.TempDir(), "elsewhere.toml")
		writeFile(t, custom, "[context]\ndashboard = \"beta\"\n")
		t.Setenv("DASHKIT_CONFIG", custom)

		cfg, err := Load(root, nil)
		require.NoError(t, err)
		assert.Equal(t, "beta", cfg.Context.Dashboard)
		assert.Equal(t, custom, cfg.ProjectFile)
	})

	t.Run("env_overrides_files", func(t *testing.T) {
		root, _ := isolate(t)
		writeFile(t, filepath.Join(root, "dashkit.toml"), "[context]\ndashboard = \"alpha\"\n")
		t.Setenv("DASHKIT_CONTEXT_DASHBOARD", "gamma")
		t.Setenv("DASHKIT_DASHBOARDS_DIR", "/srv/dashboards")

		cfg, err := Load(root, nil)
		require.NoError(t, err)
		assert.Equal(t, "gamma", cfg.Context.Dashboard)
		assert.Equal(t, "/srv/dashboards", cfg.Dashboards.Dir)
	})

	t.Run("overrides_win", func(t *testing.T) {
		root, _ := isolate(t)
		t.Setenv("DASHKIT_OUTPUT_FORMAT", "yaml")

		cfg, err := Load(root, map[string]interface{}{KeyOutputFormat: "json"})
		require.NoError(t, err)
		assert.Equal(t, FormatJSON, cfg.Output.Format)
	})
}

func TestLoadErrors(t *testing.T) {
	t.Run("invalid_toml", func(t *testing.T) {
		root, _ := isolate(t)
		writeFile(t, filepath.Join(root, "dashkit.toml"), "[context\n")

		_, err := Load(root, nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad), "got %v", err)
	})

	t.Run("unknown_format", func(t *testing.T) {
		root, _ := isolate(t)

		_, err := Load(root, map[string]interface{}{KeyOutputFormat: "xml"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
		assert.Contains(t, err.Error(), "xml")
	})
}

func TestSetContext(t *testing.T) {
	root, _ := isolate(t)
	project := filepath.Join(root, "dashkit.toml")
	writeFile(t, project, "[output]\nformat = \"json\"\n")

	cfg, err := Load(root, nil)
	require.NoError(t, err)

	require.NoError(t, cfg.SetContext("dashboard", "alpha"))
	assert.Equal(t, "alpha", cfg.Context.Dashboard)

	data, err := os.ReadFile(project)
	require.NoError(t, err)
	var written map[string]map[string]string
	require.NoError(t, toml.Unmarshal(data, &written))
	assert.Equal(t, "alpha", written["context"]["dashboard"])
	assert.Equal(t, "json", written["output"]["format"], "other settings survive")

	reloaded, err := Load(root, nil)
	require.NoError(t, err)
	assert.Equal(t, "alpha", reloaded.Context.DefaultDocument())
	assert.Equal(t, FormatJSON, reloaded.Output.Format)

	_, err = os.Stat(project + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestSetContextCreatesFile(t *testing.T) {
	root, _ := isolate(t)
	cfg, err := Load(root, nil)
	require.NoError(t, err)

	require.NoError(t, cfg.SetContext("dashboard", "beta"))

	reloaded, err := Load(root, nil)
	require.NoError(t, err)
	assert.Equal(t, "beta", reloaded.Context.Dashboard)
}

func TestSetContextRejectsInvalidInput(t *testing.T) {
	cfg := &Config{ProjectFile: filepath.Join(t.TempDir(), "dashkit.toml")}

	err := cfg.SetContext("datasource", "x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	err = cfg.SetContext("dashboard", "../escape")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, statErr := os.Stat(cfg.ProjectFile)
	assert.True(t, os.IsNotExist(statErr), "nothing is written on invalid input")
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	assert.Contains(t, content, "[dashboards]")
	assert.Contains(t, content, `# dir = "dashboards"`)
	assert.Contains(t, content, `# format = "text"`)

	var parsed map[string]interface{}
	require.NoError(t, toml.Unmarshal([]byte(content), &parsed))
	assert.Empty(t, parsed["dashboards"], "all values are commented out")
}
