package config

import (
	"fmt"
	"strings"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Keys of the configuration tree
const (
	KeyDashboardsDir    = "dashboards.dir"
	KeyContextDashboard = "context.dashboard"
	KeyOutputFormat     = "output.format"
)

// Config is the resolved dashkit configuration.
type Config struct {
	Dashboards Dashboards `koanf:"dashboards" json:"dashboards" yaml:"dashboards"`
	Context    Context    `koanf:"context" json:"context" yaml:"context"`
	Output     Output     `koanf:"output" json:"output" yaml:"output"`

	// ProjectFile is where SetContext writes. It is not read from config.
	ProjectFile string `koanf:"-" json:"-" yaml:"-"`
}

// Dashboards configures the dashboard store.
type Dashboards struct {
	Dir string `koanf:"dir" json:"dir" yaml:"dir"`
}

// Context holds the implicit defaults used when a command omits them.
type Context struct {
	Dashboard string `koanf:"dashboard" json:"dashboard" yaml:"dashboard"`
}

// HasDefaultDocument reports whether a context dashboard is set.
func (c Context) HasDefaultDocument() bool {
	return strings.TrimSpace(c.Dashboard) != ""
}

// DefaultDocument returns the context dashboard.
func (c Context) DefaultDocument() string {
	return strings.TrimSpace(c.Dashboard)
}

// Output configures how results are printed.
type Output struct {
	Format string `koanf:"format" json:"format" yaml:"format"`
}

// Validate checks values that cannot be checked while decoding.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q (want %s, %s or %s)",
			c.Output.Format, FormatText, FormatJSON, FormatYAML)
	}
	if strings.TrimSpace(c.Dashboards.Dir) == "" {
		return fmt.Errorf("%s must not be empty", KeyDashboardsDir)
	}
	return nil
}
