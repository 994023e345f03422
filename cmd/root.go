package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saurabh/starter-templates/cmd/apply"
	"github.com/saurabh/starter-templates/cmd/generate"
	"github.com/saurabh/starter-templates/cmd/importlegacy"
	"github.com/saurabh/starter-templates/cmd/seed"
	"github.com/saurabh/starter-templates/config"
	"github.com/saurabh/starter-templates/pkg/logger"
)

// RootCommand creates and returns the root command
func RootCommand(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "templatelib",
		Short:         "Starter template library tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		generate.Command(cfg),
		importlegacy.Command(cfg),
		apply.Command(cfg),
		seed.Command(cfg),
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initialize(cfg)
	}

	return rootCmd
}

// initialize validates the configuration after flags are parsed and sets up logging.
func initialize(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logger.InitLogger(cfg.Logging.LoggerConfig()); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}
