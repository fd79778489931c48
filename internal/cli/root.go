package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/valveflow/config"
)

var exitFunc = os.Exit

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) {
	input := new(Input)
	if err := createRootCommand(ctx, input, version).Execute(); err != nil {
		exitFunc(1)
	}
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "valveflow",
		Short:        "Plan valve openings that release the most pressure within a time budget.",
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&input.configPath, "config", "c", "", "path to a YAML settings file")
	rootCmd.PersistentFlags().StringVar(&input.envFile, "env-file", "", "path to a .env file with VALVEFLOW_* overrides")
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&input.logFormat, "log-format", "", "log format: text or json")

	rootCmd.AddCommand(newSolveCommand(ctx, input), newGenerateCommand(ctx, input))

	return rootCmd
}

// loadConfig merges the settings sources and the persistent flags, and
// returns a context carrying the resulting logger.
func loadConfig(ctx context.Context, cmd *cobra.Command, input *Input) (context.Context, *config.Config, error) {
	cfg, err := config.Load(input.configPath, input.envFile)
	if err != nil {
		return ctx, nil, err
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = input.logFormat
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat, input.verbose)
	if err != nil {
		return ctx, nil, err
	}

	return WithLogger(ctx, logger), cfg, nil
}
