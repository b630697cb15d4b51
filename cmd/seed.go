package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"dexrooms/internal/core/domain"
	"dexrooms/internal/db"
)

func seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo campaigns into the configured store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFrom(cmd)
			logger := newLogger(cfg)

			repo, closeStore, err := openStore(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer closeStore()

			ids, err := db.Seed(cmd.Context(), repo, domain.CampaignParams{
				Goal:         cfg.Campaign.Goal,
				Duration:     cfg.Campaign.Duration,
				EscrowWallet: cfg.Campaign.EscrowWallet,
			}, time.Now())
			if err != nil {
				return err
			}
			logger.Info("seeded campaigns", slog.Int("count", len(ids)))
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}
