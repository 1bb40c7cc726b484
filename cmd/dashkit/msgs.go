package dashkit

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "Move, copy and summarize Grafana dashboard rows and panels"
	MsgInitShort        = "Create the dashboards directory and a dashkit.toml"
	MsgStatusShort      = "Show the project configuration and dashboards directory"
	MsgListShort        = "List the dashboards in the dashboards directory"
	MsgSetShort         = "Set a context value"
	MsgSetContextShort  = "Set the context dashboard"
	MsgShowShort        = "Show a context value"
	MsgShowContextShort = "Show the context"
	MsgMoveShort        = "Move a row or panel"
	MsgCopyShort        = "Copy a row or panel"
	MsgSummarizeShort   = "Summarize a dashboard"
	MsgVersionShort     = "Print version information"
	MsgCompletionShort  = "Generate shell completion script"

	// Report titles and labels
	MsgStatusTitle        = "dashkit status"
	MsgListTitle          = "Dashboards"
	MsgContextTitle       = "Context"
	MsgLabelRoot          = "Project root"
	MsgLabelConfig        = "Config file"
	MsgLabelDashboardsDir = "Dashboards directory"
	MsgLabelDashboards    = "Dashboards"
	MsgLabelContext       = "Context dashboard"
	MsgLabelFormat        = "Output format"
	MsgLabelDashboard     = "dashboard"
	MsgVersionTitle       = "dashkit"
	MsgLabelVersion       = "Version"
	MsgLabelCommit        = "Commit"
	MsgLabelBuilt         = "Built"

	// Status messages
	MsgNone            = "(none)"
	MsgMissing         = "%s (missing, run `dashkit init`)"
	MsgNotFound        = "%s (not found)"
	MsgNoDashboards    = "No dashboards found."
	MsgContextMarker   = "%s (context)"
	MsgDirCreated      = "Created dashboards directory %s"
	MsgDirExists       = "Dashboards directory %s already exists"
	MsgConfigCreated   = "Created %s"
	MsgConfigExists    = "%s already exists"
	MsgContextSet      = "Context dashboard set to %s."
	MsgContextNotFound = "Dashboard %s does not exist yet."

	// Error messages
	MsgErrNoCommand  = "no command specified"
	MsgErrBadFormat  = "invalid --format: %w"
	MsgErrListFailed = "failed to list dashboards: %w"

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun        = "Perform the edit in memory without saving anything"
	MsgFlagFormat        = "Output format: text, json or yaml (default from config)"
	MsgFlagNoColor       = "Disable colored output"
	MsgFlagProject       = "Project root (default is the current directory)"
	MsgFlagDashboardsDir = "Dashboards directory (default from config)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/move-long.txt
	msgMoveLongRaw string
	MsgMoveLong    = strings.TrimSpace(msgMoveLongRaw)

	//go:embed msgs/move-example.txt
	msgMoveExampleRaw string
	MsgMoveExample    = strings.TrimRight(msgMoveExampleRaw, "\n")

	//go:embed msgs/copy-long.txt
	msgCopyLongRaw string
	MsgCopyLong    = strings.TrimSpace(msgCopyLongRaw)

	//go:embed msgs/copy-example.txt
	msgCopyExampleRaw string
	MsgCopyExample    = strings.TrimRight(msgCopyExampleRaw, "\n")

	//go:embed msgs/summarize-long.txt
	msgSummarizeLongRaw string
	MsgSummarizeLong    = strings.TrimSpace(msgSummarizeLongRaw)

	//go:embed msgs/summarize-example.txt
	msgSummarizeExampleRaw string
	MsgSummarizeExample    = strings.TrimRight(msgSummarizeExampleRaw, "\n")

	//go:embed msgs/set-long.txt
	msgSetLongRaw string
	MsgSetLong    = strings.TrimSpace(msgSetLongRaw)

	//go:embed msgs/set-example.txt
	msgSetExampleRaw string
	MsgSetExample    = strings.TrimRight(msgSetExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
