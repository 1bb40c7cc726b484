package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dashkit/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigFile overrides the project configuration file location
	EnvConfigFile = "DASHKIT_CONFIG"

	// EnvConfigDir overrides the XDG config directory for dashkit
	EnvConfigDir = "DASHKIT_CONFIG_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name for dashkit-specific user files
	AppDirName = "dashkit"

	// ProjectConfigFile is the per-project configuration file
	ProjectConfigFile = "dashkit.toml"

	// UserConfigFile is the user-level configuration file inside the config dir
	UserConfigFile = "config.toml"

	// DefaultDashboardsDir is the dashboards directory relative to the project root
	DefaultDashboardsDir = "dashboards"

	// DashboardExt is the file extension of a stored dashboard
	DashboardExt = ".json"
)

// Paths resolves every location dashkit reads from or writes to.
type Paths struct {
	root          string
	dashboardsDir string
	configDir     string
}

// New creates a Paths rooted at root (the current directory when empty).
// dashboardsDir is resolved against root unless it is absolute.
func New(root, dashboardsDir string) (*Paths, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to get working directory")
		}
		root = wd
	}

	absRoot, err := filepath.Abs(expandHome(root))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", root)
	}

	if dashboardsDir == "" {
		dashboardsDir = DefaultDashboardsDir
	}
	dashboardsDir = expandHome(dashboardsDir)
	if !filepath.IsAbs(dashboardsDir) {
		dashboardsDir = filepath.Join(absRoot, dashboardsDir)
	}

	configDir := os.Getenv(EnvConfigDir)
	if configDir != "" {
		configDir = expandHome(configDir)
	} else {
		configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	return &Paths{
		root:          absRoot,
		dashboardsDir: filepath.Clean(dashboardsDir),
		configDir:     configDir,
	}, nil
}

// Root returns the project root.
func (p *Paths) Root() string {
	return p.root
}

// DashboardsDir returns the directory holding dashboard files.
func (p *Paths) DashboardsDir() string {
	return p.dashboardsDir
}

// DashboardFile returns the file path of the dashboard with the given slug.
func (p *Paths) DashboardFile(slug string) string {
	return filepath.Join(p.dashboardsDir, slug+DashboardExt)
}

// ProjectConfigPath returns the project configuration file, honoring
// DASHKIT_CONFIG.
func (p *Paths) ProjectConfigPath() string {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return expandHome(path)
	}
	return filepath.Join(p.root, ProjectConfigFile)
}

// UserConfigPath returns the user-level configuration file.
func (p *Paths) UserConfigPath() string {
	return filepath.Join(p.configDir, UserConfigFile)
}

// SlugFromFile returns the slug of a dashboard file name and whether the name
// looks like a dashboard at all.
func SlugFromFile(name string) (string, bool) {
	if filepath.Ext(name) != DashboardExt || strings.HasPrefix(name, ".") {
		return "", false
	}
	return strings.TrimSuffix(name, DashboardExt), true
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
