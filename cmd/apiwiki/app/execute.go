package app

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/apiwiki/pkg/constants"
	"github.com/agentstation/apiwiki/pkg/errors"
	"github.com/agentstation/apiwiki/pkg/logging"
)

// Execute runs the apiwiki CLI with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if errors.IsUsage(err) {
		fmt.Fprint(a.out, rootCmd.UsageString())
	}
	return err
}

// createRootCommand creates the root cobra command.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "apiwiki <wiki_repo_dir> <samples_repo_dir>",
		Short:   "Regenerate the API index of the client library wiki",
		Version: a.version,
		Long: `apiwiki rewrites the generated section of APIs.wiki in a wiki checkout.

It lists every preferred service from the API directory that the client
library generation server can build, with download links, Maven
coordinates, reference links and the matching projects from the samples
checkout. Everything outside the ` + constants.BeginMarker + `
and ` + constants.EndMarker + ` markers is kept as is.`,
		Args:              exactArgs(2),
		PersistentPreRunE: a.setupCommand,
		RunE:              a.run,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.SetOut(a.out)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &errors.UsageError{Message: err.Error()}
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.apiwiki.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.Flags().String("extras", "", "YAML file of services to add to the directory")
	rootCmd.Flags().Int("concurrency", constants.DefaultConcurrency, "number of services processed at once")
	rootCmd.Flags().Float64("rate", 0, "maximum outbound requests per second (0 = unlimited)")
	rootCmd.Flags().Bool("dry-run", false, "print the updated page instead of writing it")

	rootCmd.SetVersionTemplate("apiwiki {{.Version}}\n")

	return rootCmd
}

// setupCommand reloads the configuration with the parsed flags on top and
// rebuilds the logger.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	config, err := LoadConfig(a.config.ConfigFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.config = config

	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// run regenerates the page and reports the outcome.
func (a *App) run(cmd *cobra.Command, args []string) error {
	updater, err := a.Updater(args[0], args[1])
	if err != nil {
		return err
	}

	ctx := logging.WithLogger(cmd.Context(), a.logger)
	result, err := updater.Run(ctx)
	if err != nil {
		return err
	}

	for _, skipped := range result.Skipped {
		a.logger.Debug().Str("reason", skipped.Reason).Msg(skipped.Error())
	}

	if result.DryRun {
		fmt.Fprint(a.out, result.Document)
		return nil
	}

	result.PrintSummary(a.out)
	return nil
}

// exactArgs is cobra.ExactArgs reported as a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &errors.UsageError{
				Message: fmt.Sprintf("%s requires wiki_repo and samples_repo arguments", cmd.Name()),
			}
		}
		return nil
	}
}

// ExitOnError prints err to standard output and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stdout.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
