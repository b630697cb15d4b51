package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	httpadapter "dexrooms/internal/adapter/http"
	"dexrooms/internal/adapter/moralis"
	"dexrooms/internal/adapter/usecase"
	"dexrooms/internal/config/configs"
	"dexrooms/internal/core/domain"
	"dexrooms/internal/db"
	"dexrooms/internal/metrics"
	"dexrooms/internal/sweeper"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the campaign HTTP API (default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serveRun(cmd)
		},
	}
}

// serveRun optionally runs database migrations, connects the configured
// store and starts the HTTP server. On cancellation of the command context
// it gracefully shuts the server down.
func serveRun(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := configFrom(cmd)
	logger := newLogger(cfg)

	// Migrations only apply to the relational store.
	if cfg.Store.Driver == configs.StorePostgres && cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		}
	}

	repo, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	var m *metrics.Metrics
	if cfg.HTTP.Metrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(reg)
	}

	provider := moralis.NewClient(cfg.Moralis, m, logger)
	svc := usecase.NewCampaignUseCase(repo, provider, usecase.Options{
		Params: domain.CampaignParams{
			Goal:         cfg.Campaign.Goal,
			Duration:     cfg.Campaign.Duration,
			EscrowWallet: cfg.Campaign.EscrowWallet,
		},
		AllowDuplicates: cfg.Campaign.AllowDuplicates,
	}, m, logger)

	if cfg.Sweeper.Enabled {
		sw := sweeper.New(svc, cfg.Sweeper, logger)
		if err = sw.Start(ctx); err != nil {
			return err
		}
		defer sw.Stop()
	}

	handler := httpadapter.NewHandler(svc, logger, m)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("store", cfg.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}
