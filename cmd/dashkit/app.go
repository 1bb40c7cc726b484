package dashkit

import (
	"fmt"

	"github.com/arthur-debert/dashkit/pkg/config"
	"github.com/arthur-debert/dashkit/pkg/datastore"
	"github.com/arthur-debert/dashkit/pkg/filesystem"
	"github.com/arthur-debert/dashkit/pkg/logging"
	"github.com/arthur-debert/dashkit/pkg/output"
	"github.com/arthur-debert/dashkit/pkg/paths"
	"github.com/arthur-debert/dashkit/pkg/types"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags.
type globalOptions struct {
	verbosity     int
	dryRun        bool
	format        string
	noColor       bool
	project       string
	dashboardsDir string
}

// app is everything a command needs, resolved from flags and config.
type app struct {
	cfg      *config.Config
	paths    *paths.Paths
	fs       types.FS
	store    datastore.DataStore
	renderer output.Renderer
	dryRun   bool
}

// overrides turns flags into config keys. Unset flags leave the config alone.
func (o *globalOptions) overrides() map[string]interface{} {
	overrides := map[string]interface{}{}
	if o.format != "" {
		overrides[config.KeyOutputFormat] = o.format
	}
	if o.dashboardsDir != "" {
		overrides[config.KeyDashboardsDir] = o.dashboardsDir
	}
	return overrides
}

// newApp loads the configuration and wires the store and renderer for cmd.
func (o *globalOptions) newApp(cmd *cobra.Command) (*app, error) {
	logger := logging.GetLogger("cmd")

	cfg, err := config.Load(o.project, o.overrides())
	if err != nil {
		return nil, err
	}

	p, err := paths.New(o.project, cfg.Dashboards.Dir)
	if err != nil {
		return nil, err
	}

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, fmt.Errorf(MsgErrBadFormat, err)
	}
	renderer, err := output.NewRenderer(cmd.OutOrStdout(), output.Options{
		Format:  format,
		NoColor: o.noColor,
	})
	if err != nil {
		return nil, err
	}

	fs := filesystem.NewOS()

	logger.Debug().
		Str("command", cmd.CommandPath()).
		Str("root", p.Root()).
		Str("dashboardsDir", p.DashboardsDir()).
		Str("format", format.String()).
		Bool("dryRun", o.dryRun).
		Msg("Application wired")

	return &app{
		cfg:      cfg,
		paths:    p,
		fs:       fs,
		store:    datastore.New(fs, p),
		renderer: renderer,
		dryRun:   o.dryRun,
	}, nil
}
