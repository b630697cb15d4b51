package sweeper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron"

	"dexrooms/internal/config/configs"
	"dexrooms/internal/core/port"
)

// runTimeout bounds a single sweep.
const runTimeout = 30 * time.Second

// Sweeper periodically moves funded and expired campaigns out of the
// active status.
type Sweeper struct {
	svc      port.CampaignUseCase
	schedule string
	logger   *slog.Logger
	cron     *cron.Cron
}

func New(svc port.CampaignUseCase, cfg configs.Sweeper, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		svc:      svc,
		schedule: cfg.Schedule,
		logger:   logger.With(slog.String("component", "sweeper")),
	}
}

// RunOnce performs a single sweep.
func (s *Sweeper) RunOnce(ctx context.Context) error {
	changed, err := s.svc.SweepStatuses(ctx)
	if err != nil {
		s.logger.Error("status sweep failed", slog.Any("error", err))
		return err
	}
	if changed > 0 {
		s.logger.Info("status sweep completed", slog.Int("changed", changed))
	}
	return nil
}

// Start schedules sweeps until ctx is cancelled or Stop is called.
func (s *Sweeper) Start(ctx context.Context) error {
	c := cron.New()
	err := c.AddFunc(s.schedule, func() {
		runCtx, cancel := context.WithTimeout(ctx, runTimeout)
		defer cancel()
		_ = s.RunOnce(runCtx)
	})
	if err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", s.schedule, err)
	}
	s.cron = c
	c.Start()
	s.logger.Info("sweeper started", slog.String("schedule", s.schedule))
	return nil
}

// Stop halts the schedule. A sweep already running is not interrupted.
func (s *Sweeper) Stop() {
	if s.cron != nil {
		s.cron.Stop()
		s.cron = nil
	}
}
