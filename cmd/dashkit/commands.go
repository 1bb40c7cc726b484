package dashkit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/dashkit/internal/version"
	"github.com/arthur-debert/dashkit/pkg/config"
	"github.com/arthur-debert/dashkit/pkg/errors"
	"github.com/arthur-debert/dashkit/pkg/logging"
	"github.com/arthur-debert/dashkit/pkg/output"
	"github.com/arthur-debert/dashkit/pkg/relocate"
	"github.com/arthur-debert/dashkit/pkg/summary"
	"github.com/arthur-debert/dashkit/pkg/types"
	"github.com/spf13/cobra"
)

// dashboardCompletion provides shell completion for dashboard slugs
func dashboardCompletion(opts *globalOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		a, err := opts.newApp(cmd)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		slugs, err := a.store.List()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		var matches []string
		for _, slug := range slugs {
			if strings.HasPrefix(slug, toComplete) {
				matches = append(matches, slug)
			}
		}
		return matches, cobra.ShellCompDirectiveNoFileComp
	}
}

func newMoveCmd(opts *globalOptions) *cobra.Command {
	return newRelocateCmd(opts, types.OperationMove, MsgMoveShort, MsgMoveLong, MsgMoveExample)
}

func newCopyCmd(opts *globalOptions) *cobra.Command {
	return newRelocateCmd(opts, types.OperationCopy, MsgCopyShort, MsgCopyLong, MsgCopyExample)
}

func newRelocateCmd(opts *globalOptions, op types.Operation, short, long, example string) *cobra.Command {
	return &cobra.Command{
		Use:     string(op) + " <row|panel> <source> <destination>",
		Short:   short,
		Long:    long,
		Example: example,
		GroupID: "edit",
		Args:    cobra.ExactArgs(3),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return []string{string(types.KindRow), string(types.KindPanel)}, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}

			engine := relocate.New(a.store, a.cfg.Context, relocate.Options{DryRun: a.dryRun})
			result, err := engine.Relocate(relocate.Request{
				Operation:   op,
				Kind:        types.NormalizeKind(args[0]),
				Source:      args[1],
				Destination: args[2],
			})
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(result)
		},
	}
}

func newSummarizeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "summarize [dashboard]",
		Short:             MsgSummarizeShort,
		Long:              MsgSummarizeLong,
		Example:           MsgSummarizeExample,
		GroupID:           "dashboards",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: dashboardCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}

			var slug string
			if len(args) == 1 {
				slug = args[0]
			}

			s, err := summary.NewService(a.store, a.cfg.Context).Summarize(slug)
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(s)
		},
	}
}

func newListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		GroupID: "dashboards",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}

			slugs, err := a.store.List()
			if err != nil {
				return fmt.Errorf(MsgErrListFailed, err)
			}

			items := make([]string, len(slugs))
			for i, slug := range slugs {
				items[i] = slug
				if slug == a.cfg.Context.DefaultDocument() {
					items[i] = fmt.Sprintf(MsgContextMarker, slug)
				}
			}

			return a.renderer.RenderResult(&output.Report{
				Title: MsgListTitle,
				Items: items,
				Empty: MsgNoDashboards,
				Data: listData{
					Dashboards: slugs,
					Context:    a.cfg.Context.DefaultDocument(),
				},
			})
		},
	}
}

type listData struct {
	Dashboards []string `json:"dashboards" yaml:"dashboards"`
	Context    string   `json:"context,omitempty" yaml:"context,omitempty"`
}

type statusData struct {
	Root            string `json:"root" yaml:"root"`
	ConfigFile      string `json:"configFile" yaml:"configFile"`
	ConfigExists    bool   `json:"configExists" yaml:"configExists"`
	DashboardsDir   string `json:"dashboardsDir" yaml:"dashboardsDir"`
	DashboardsExist bool   `json:"dashboardsDirExists" yaml:"dashboardsDirExists"`
	Dashboards      int    `json:"dashboards" yaml:"dashboards"`
	Context         string `json:"context,omitempty" yaml:"context,omitempty"`
	Format          string `json:"format" yaml:"format"`
}

func newStatusCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		GroupID: "dashboards",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}

			dir, exists, err := a.store.Dir()
			if err != nil {
				return err
			}
			data := statusData{
				Root:            a.paths.Root(),
				ConfigFile:      a.cfg.ProjectFile,
				DashboardsDir:   dir,
				DashboardsExist: exists,
				Context:         a.cfg.Context.DefaultDocument(),
				Format:          a.cfg.Output.Format,
			}
			if _, err := a.fs.Stat(a.cfg.ProjectFile); err == nil {
				data.ConfigExists = true
			}
			if exists {
				slugs, err := a.store.List()
				if err != nil {
					return fmt.Errorf(MsgErrListFailed, err)
				}
				data.Dashboards = len(slugs)
			}

			configLabel := data.ConfigFile
			if !data.ConfigExists {
				configLabel = fmt.Sprintf(MsgNotFound, data.ConfigFile)
			}
			dirLabel := dir
			if !exists {
				dirLabel = fmt.Sprintf(MsgMissing, dir)
			}
			contextLabel := data.Context
			if contextLabel == "" {
				contextLabel = MsgNone
			}

			return a.renderer.RenderResult(&output.Report{
				Title: MsgStatusTitle,
				Fields: []output.Field{
					{Label: MsgLabelRoot, Value: data.Root},
					{Label: MsgLabelConfig, Value: configLabel},
					{Label: MsgLabelDashboardsDir, Value: dirLabel},
					{Label: MsgLabelDashboards, Value: strconv.Itoa(data.Dashboards)},
					{Label: MsgLabelContext, Value: contextLabel},
					{Label: MsgLabelFormat, Value: data.Format},
				},
				Data: data,
			})
		},
	}
}

type initData struct {
	DashboardsDir string `json:"dashboardsDir" yaml:"dashboardsDir"`
	DirCreated    bool   `json:"dirCreated" yaml:"dirCreated"`
	ConfigFile    string `json:"configFile" yaml:"configFile"`
	ConfigCreated bool   `json:"configCreated" yaml:"configCreated"`
}

func newInitCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		GroupID: "dashboards",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.init")

			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}

			created, err := a.store.Init()
			if err != nil {
				return err
			}
			dir, _, err := a.store.Dir()
			if err != nil {
				return err
			}
			data := initData{DashboardsDir: dir, DirCreated: created, ConfigFile: a.cfg.ProjectFile}

			if _, err := a.fs.Stat(a.cfg.ProjectFile); err != nil {
				content := []byte(config.GenerateConfigContent())
				if err := a.fs.WriteFile(a.cfg.ProjectFile, content, 0644); err != nil {
					return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", a.cfg.ProjectFile)
				}
				data.ConfigCreated = true
			}

			logger.Info().
				Str("dashboardsDir", dir).
				Bool("dirCreated", data.DirCreated).
				Bool("configCreated", data.ConfigCreated).
				Msg("Project initialized")

			items := []string{fmt.Sprintf(MsgDirExists, dir)}
			if data.DirCreated {
				items[0] = fmt.Sprintf(MsgDirCreated, dir)
			}
			if data.ConfigCreated {
				items = append(items, fmt.Sprintf(MsgConfigCreated, data.ConfigFile))
			} else {
				items = append(items, fmt.Sprintf(MsgConfigExists, data.ConfigFile))
			}

			return a.renderer.RenderResult(&output.Report{Items: items, Data: data})
		},
	}
}

func newSetCmd(opts *globalOptions) *cobra.Command {
	setCmd := &cobra.Command{
		Use:     "set",
		Short:   MsgSetShort,
		Long:    MsgSetLong,
		Example: MsgSetExample,
		GroupID: "misc",
	}

	complete := dashboardCompletion(opts)
	setCmd.AddCommand(&cobra.Command{
		Use:   "context <key> <value>",
		Short: MsgSetContextShort,
		Long:  MsgSetLong,
		Args:  cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return config.ContextKeys, cobra.ShellCompDirectiveNoFileComp
			}
			return complete(cmd, args, toComplete)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}

			key, value := args[0], args[1]
			if err := a.cfg.SetContext(key, value); err != nil {
				return err
			}

			if exists, err := a.store.Exists(value); err == nil && !exists {
				if err := a.renderer.RenderMessage(fmt.Sprintf(MsgContextNotFound, value)); err != nil {
					return err
				}
			}
			return a.renderer.RenderMessage(fmt.Sprintf(MsgContextSet, value))
		},
	})

	return setCmd
}

func newShowCmd(opts *globalOptions) *cobra.Command {
	showCmd := &cobra.Command{
		Use:     "show",
		Short:   MsgShowShort,
		GroupID: "misc",
	}

	showCmd.AddCommand(&cobra.Command{
		Use:   "context",
		Short: MsgShowContextShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}

			value := a.cfg.Context.DefaultDocument()
			if value == "" {
				value = MsgNone
			}
			return a.renderer.RenderResult(&output.Report{
				Title:  MsgContextTitle,
				Fields: []output.Field{{Label: MsgLabelDashboard, Value: value}},
				Data:   a.cfg.Context,
			})
		},
	})

	return showCmd
}

// newVersionCmd renders build info from flags alone, so it works even when
// the project config does not load.
func newVersionCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(opts.format)
			if err != nil {
				return fmt.Errorf(MsgErrBadFormat, err)
			}
			renderer, err := output.NewRenderer(cmd.OutOrStdout(), output.Options{
				Format:  format,
				NoColor: opts.noColor,
			})
			if err != nil {
				return err
			}

			info := version.Get()
			return renderer.RenderResult(&output.Report{
				Title: MsgVersionTitle,
				Fields: []output.Field{
					{Label: MsgLabelVersion, Value: info.Version},
					{Label: MsgLabelCommit, Value: info.Commit},
					{Label: MsgLabelBuilt, Value: info.Date},
				},
				Data: info,
			})
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
