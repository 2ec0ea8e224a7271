package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render tag markup into terminal escape codes"
	MsgRenderShort     = "Render markup to escape-coded text"
	MsgClearShort      = "Strip escape sequences from text"
	MsgLengthShort     = "Print the visible length of text"
	MsgStylesShort     = "List the available style tags"
	MsgConfigShort     = "Inspect the configuration"
	MsgConfigShowShort = "Print the effective configuration as TOML"
	MsgConfigInitShort = "Print a starter config file"
	MsgConfigPathShort = "List the config file locations, marking existing ones"
	MsgDemoShort       = "Render a few sample lines"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"

	// Output
	MsgVersionFormat = "ansimarkup version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"
	MsgErrorPrefix   = "Error: "

	// Error messages
	MsgErrReadInput  = "failed to read input: %w"
	MsgErrReadFile   = "failed to read %s: %w"
	MsgErrColorMode  = "invalid --color value: %w"
	MsgErrManPage    = "failed to generate man page: %w"
	MsgErrCompletion = "failed to generate %s completion: %w"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default $XDG_CONFIG_HOME/ansimarkup/config.toml)"
	MsgFlagMaxDepth = "Maximum tag nesting depth, 0 for no limit"
	MsgFlagStyles   = "YAML file with additional styles"
	MsgFlagColor    = "When to keep escape codes: auto, always or never"
	MsgFlagFile     = "Read input from a file"
	MsgFlagMarkup   = "Render the input as markup before measuring"
	MsgFlagNewline  = "Do not print a trailing newline"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/clear-long.txt
	msgClearLongRaw string
	MsgClearLong    = strings.TrimSpace(msgClearLongRaw)

	//go:embed msgs/length-long.txt
	msgLengthLongRaw string
	MsgLengthLong    = strings.TrimSpace(msgLengthLongRaw)

	//go:embed msgs/styles-long.txt
	msgStylesLongRaw string
	MsgStylesLong    = strings.TrimSpace(msgStylesLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed help/showcase.am
	msgDemoRaw string
	MsgDemo    = strings.TrimRight(msgDemoRaw, "\n")
)
