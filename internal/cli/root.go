package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/xml2conf/internal/version"
	"github.com/arthur-debert/xml2conf/pkg/cobrax/topics"
	"github.com/arthur-debert/xml2conf/pkg/config"
	"github.com/arthur-debert/xml2conf/pkg/core"
	"github.com/arthur-debert/xml2conf/pkg/logging"
	"github.com/arthur-debert/xml2conf/pkg/ui/styles"
)

type rootOptions struct {
	verbosity  int
	output     string
	dryRun     bool
	configFile string

	settings *config.Settings
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "xml2conf <input.xml> --output <file>",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.String(),
		Args:    cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, args[0], opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "", MsgFlagOutput)
	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.Flags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	_ = rootCmd.MarkFlagRequired("output")
	_ = rootCmd.MarkFlagFilename("output", "conf")
	_ = rootCmd.MarkFlagFilename("config", "toml")

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newGenConfigCmd())

	if err := topics.InitializeWithOptions(rootCmd, helpTopics(), topics.Options{
		Renderer: topics.RendererFor(rootCmd.OutOrStdout()),
	}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// setup resolves settings, then configures logging once from them
func setup(cmd *cobra.Command, opts *rootOptions) error {
	settings, err := config.Load(config.LoadOptions{
		ConfigFile:       opts.configFile,
		SearchUserConfig: true,
	})
	if err != nil {
		if cmd == cmd.Root() {
			return err
		}
		// gen-config and help must keep working with a broken config file
		logging.SetupLogger(opts.verbosity, logging.Options{Console: cmd.ErrOrStderr()})
		log.Warn().Err(err).Msg("Ignoring unusable settings")
		return nil
	}
	opts.settings = settings

	logging.SetupLogger(opts.verbosity, logging.Options{
		ToFile:  settings.Log.ToFile,
		Console: cmd.ErrOrStderr(),
	})
	log.Debug().
		Str("command", cmd.Name()).
		Strs("configFiles", settings.Sources).
		Msg("Command started")
	return nil
}

// runTranslate runs the translation pipeline for one input
func runTranslate(cmd *cobra.Command, input string, opts *rootOptions) error {
	settings := opts.settings

	mode, err := settings.FileMode()
	if err != nil {
		return err
	}

	logger := logging.GetLogger("cmd.translate")
	logger.Info().
		Str("input", input).
		Str("output", opts.output).
		Bool("dryRun", opts.dryRun).
		Int("indent", settings.Format.Indent).
		Msg("Starting translation")

	result, err := core.Translate(core.TranslateOptions{
		InputPath:  input,
		OutputPath: opts.output,
		DryRun:     opts.dryRun,
		Indent:     settings.Format.Indent,
		FileMode:   mode,
	})
	if err != nil {
		return err
	}

	logger.Info().
		Int("entries", result.Entries).
		Bool("written", result.Written).
		Msg("Translation finished")

	out := cmd.OutOrStdout()
	if result.DryRun {
		_, _ = fmt.Fprint(out, result.Output)
		errOut := cmd.ErrOrStderr()
		_, _ = fmt.Fprintln(errOut, styles.NewTheme(errOut).Render("Muted", fmt.Sprintf(MsgDryRunNotice, result.OutputPath)))
		return nil
	}

	theme := styles.NewTheme(out)
	_, _ = fmt.Fprintln(out, theme.Render("Success", fmt.Sprintf(MsgTranslated, result.OutputPath)))
	return nil
}
