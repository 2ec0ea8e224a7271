package cli

import (
	"embed"
	"fmt"
	"io"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/ansimarkup/internal/version"
	"github.com/arthur-debert/ansimarkup/pkg/cobrax/topics"
	"github.com/arthur-debert/ansimarkup/pkg/config"
	"github.com/arthur-debert/ansimarkup/pkg/errors"
	"github.com/arthur-debert/ansimarkup/pkg/logging"
	"github.com/arthur-debert/ansimarkup/pkg/markup"
	"github.com/arthur-debert/ansimarkup/pkg/terminal"
)

//go:embed help
var helpFS embed.FS

// state is what every command shares once the root pre-run has loaded the
// configuration.
type state struct {
	verbosity  int
	configFile string
	maxDepth   int
	stylesFile string
	color      string

	cfg    *config.Config
	parser *markup.Parser
	// am renders ".am" help topics with the loaded parser.
	am *topics.MarkupRenderer
}

// overrides turns the explicitly set global flags into config overrides.
func (s *state) overrides(cmd *cobra.Command) map[string]interface{} {
	flags := cmd.Flags()
	o := map[string]interface{}{}
	if flags.Changed("max-depth") {
		o["parser.max_depth"] = s.maxDepth
	}
	if flags.Changed("styles") {
		o["styles.file"] = s.stylesFile
	}
	if flags.Changed("color") {
		o["output.color"] = s.color
	}
	return o
}

func (s *state) load(cmd *cobra.Command) error {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: s.configFile,
		Overrides:  s.overrides(cmd),
	})
	if err != nil {
		return err
	}
	parser, err := cfg.NewParser()
	if err != nil {
		return err
	}
	s.cfg = cfg
	s.parser = parser
	if s.am != nil {
		s.am.Parser = parser
		s.am.Plain = !cfg.ColorMode().ShouldColor(cmd.OutOrStdout())
	}

	logger := logging.WithFields(map[string]interface{}{
		"command":   cmd.CommandPath(),
		"max_depth": cfg.Parser.MaxDepth,
		"strategy":  cfg.Parser.Strategy,
	})
	logger.Debug().Msg("Parser ready")
	return nil
}

// write prints rendered text, stripping its escape codes when the color
// mode says the destination should not get them.
func (s *state) write(w io.Writer, text string, newline bool) error {
	mode, err := terminal.ParseColorMode(s.cfg.Output.Color)
	if err != nil {
		return fmt.Errorf(MsgErrColorMode, err)
	}
	if !mode.ShouldColor(w) {
		text = s.parser.Clear(text)
	}
	if newline {
		_, err = fmt.Fprintln(w, text)
	} else {
		_, err = fmt.Fprint(w, text)
	}
	return err
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	s := &state{am: &topics.MarkupRenderer{}}

	rootCmd := &cobra.Command{
		Use:     "ansimarkup",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLoggerWithWriter(s.verbosity, cmd.ErrOrStderr())
			logging.LogCommand(cmd.CommandPath(), args)
			if cmd.Annotations["config"] == "skip" {
				return nil
			}
			return s.load(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&s.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVar(&s.configFile, "config", "", MsgFlagConfig)
	pf.IntVar(&s.maxDepth, "max-depth", markup.DefaultMaxDepth, MsgFlagMaxDepth)
	pf.StringVar(&s.stylesFile, "styles", "", MsgFlagStyles)
	pf.StringVar(&s.color, "color", "auto", MsgFlagColor)
	_ = rootCmd.RegisterFlagCompletionFunc("color", cobra.FixedCompletions(
		[]string{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp))

	rootCmd.AddGroup(
		&cobra.Group{ID: "text", Title: "Text Commands:"},
		&cobra.Group{ID: "info", Title: "Information Commands:"},
	)

	rootCmd.AddCommand(newRenderCmd(s))
	rootCmd.AddCommand(newClearCmd(s))
	rootCmd.AddCommand(newLengthCmd(s))
	rootCmd.AddCommand(newStylesCmd(s))
	rootCmd.AddCommand(newDemoCmd(s))
	rootCmd.AddCommand(newConfigCmd(s))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	topicsFS, err := fs.Sub(helpFS, "help")
	if err == nil {
		_, err = topics.InitializeWithOptions(rootCmd, topicsFS, topics.Options{
			Extensions: []string{".md", ".am"},
			Renderer: topics.ByExtension{
				".md": topics.NewGlamourRenderer(),
				".am": s.am,
			},
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// Execute runs the CLI and returns the process exit code. Errors are
// printed to stderr.
func Execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		styles := terminal.NewStyles(stderr)
		_, _ = fmt.Fprintln(stderr, styles.Error.Render(MsgErrorPrefix+describe(err)))
		return 1
	}
	return 0
}

// describe formats an error for users, leaving out the code prefix of
// markup syntax errors.
func describe(err error) string {
	if errors.IsSyntaxError(err) {
		return errors.GetErrorMessage(err)
	}
	return err.Error()
}
