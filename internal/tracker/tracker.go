package tracker

import (
	"context"
	"log/slog"
	"time"

	"dexrooms/internal/config/configs"
	"dexrooms/internal/core/domain"
	"dexrooms/internal/core/port"
)

// Source fetches the stored campaign by id.
type Source interface {
	Campaign(ctx context.Context, id string) (*domain.Campaign, error)
}

// Snapshot is the latest fetched campaign with its display values derived
// at Now.
type Snapshot struct {
	Campaign  domain.Campaign
	Derived   domain.Derived
	FetchedAt time.Time
	Now       time.Time
}

// Tracker keeps one campaign view current. It re-fetches the campaign every
// poll interval and re-derives the display values every tick interval and
// after each successful fetch.
type Tracker struct {
	source Source
	id     string
	poll   time.Duration
	tick   time.Duration
	clock  port.Clock
	logger *slog.Logger
}

func New(source Source, id string, cfg configs.Tracker, logger *slog.Logger) *Tracker {
	return &Tracker{
		source: source,
		id:     id,
		poll:   cfg.PollInterval,
		tick:   cfg.TickInterval,
		clock:  port.SystemClock{},
		logger: logger.With(slog.String("campaign", id)),
	}
}

// WithClock replaces the wall clock used for derivation, for tests.
func (t *Tracker) WithClock(c port.Clock) *Tracker {
	t.clock = c
	return t
}

// Run starts the tracker and returns the channel snapshots are published
// on. A failed fetch is logged and the previous snapshot stays current.
// The channel is closed once ctx is cancelled and the loop has exited.
func (t *Tracker) Run(ctx context.Context) <-chan Snapshot {
	out := make(chan Snapshot, 1)
	go t.loop(ctx, out)
	return out
}

func (t *Tracker) loop(ctx context.Context, out chan<- Snapshot) {
	defer close(out)

	var (
		latest    *domain.Campaign
		fetchedAt time.Time
	)

	publish := func() bool {
		if latest == nil {
			return true
		}
		now := t.clock.Now()
		snap := Snapshot{
			Campaign:  *latest,
			Derived:   domain.Derive(*latest, now),
			FetchedAt: fetchedAt,
			Now:       now,
		}
		select {
		case out <- snap:
			return true
		case <-ctx.Done():
			return false
		}
	}

	refresh := func() bool {
		c, err := t.source.Campaign(ctx, t.id)
		if err != nil {
			if ctx.Err() != nil {
				return false
			}
			t.logger.Warn("campaign refresh failed", slog.Any("error", err))
			return true
		}
		latest, fetchedAt = c, t.clock.Now()
		return publish()
	}

	if !refresh() {
		return
	}

	pollTicker := time.NewTicker(t.poll)
	defer pollTicker.Stop()
	tickTicker := time.NewTicker(t.tick)
	defer tickTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.logger.Debug("tracker stopped")
			return
		case <-pollTicker.C:
			if !refresh() {
				return
			}
		case <-tickTicker.C:
			if !publish() {
				return
			}
		}
	}
}
