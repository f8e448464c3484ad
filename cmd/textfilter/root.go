package textfilter

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/arthur-debert/textfilter/internal/version"
	"github.com/arthur-debert/textfilter/pkg/config"
	"github.com/arthur-debert/textfilter/pkg/errors"
	"github.com/arthur-debert/textfilter/pkg/logging"
	"github.com/arthur-debert/textfilter/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// errReported is returned by commands that already wrote their failure to
// the output, so Execute only sets the exit code
var errReported = stderrors.New("failure already reported")

// rootOptions is the state shared by every command: global flags, the
// loaded configuration and the output renderer
type rootOptions struct {
	verbosity  int
	configPath string
	rulesPath  string
	format     string

	cfg      *config.Config
	renderer *ui.Renderer
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "textfilter",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&opts.rulesPath, "rules", "r", "", MsgFlagRules)
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "rules", Title: "EDITING:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newApplyCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newPackCmd(opts))
	rootCmd.AddCommand(newAddCmd(opts))
	rootCmd.AddCommand(newUpdateCmd(opts))
	rootCmd.AddCommand(newRemoveCmd(opts))
	rootCmd.AddCommand(newMoveCmd(opts))
	rootCmd.AddCommand(newValidateCmd(opts))
	rootCmd.AddCommand(newQuoteCmd(opts))
	rootCmd.AddCommand(newGenconfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup loads the configuration, then configures logging and output
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath, nil)
	if err != nil {
		logging.SetupLoggerWithOptions(logging.Options{Verbosity: o.verbosity, Console: cmd.ErrOrStderr()})
		return err
	}

	logging.SetupLoggerWithOptions(logging.Options{
		Verbosity: o.verbosity,
		File:      cfg.Log.File,
		Console:   cmd.ErrOrStderr(),
	})
	log.Debug().Str("command", cmd.Name()).Msg("Command started")

	format, err := ui.ParseFormat(o.format)
	if err != nil {
		return err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.renderer = renderer
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !stderrors.Is(err, errReported) {
			if renderer, rerr := ui.NewRenderer(ui.FormatAuto, os.Stderr); rerr == nil {
				_ = renderer.Error(err)
			} else {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
		return 1
	}
	return 0
}
