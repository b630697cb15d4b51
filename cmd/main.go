package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"dexrooms/internal/config"
)

const programName = "dexrooms"

type configKey struct{}

func configFrom(cmd *cobra.Command) config.Config {
	return cmd.Context().Value(configKey{}).(config.Config)
}

// newLogger initialises the structured logger based on configuration.
func newLogger(cfg config.Config) *slog.Logger {
	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)
	return logger
}

// main is the entry point of dexrooms. Configuration is loaded from the
// environment before any subcommand runs; without a subcommand the HTTP
// server is started.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := &cobra.Command{
		Use:           programName,
		Short:         "Crowdfunding campaigns for Dexscreener token listings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serveRun(cmd)
		},
	}

	rootCmd.AddCommand(serveCommand())
	rootCmd.AddCommand(migrateCommand())
	rootCmd.AddCommand(seedCommand())
	rootCmd.AddCommand(watchCommand())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		cancel()
		os.Exit(1)
	}
}
