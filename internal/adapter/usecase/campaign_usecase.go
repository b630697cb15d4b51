package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"dexrooms/internal/core/domain"
	"dexrooms/internal/core/port"
	"dexrooms/internal/metrics"
)

// Options tune campaign creation.
type Options struct {
	Params domain.CampaignParams
	// AllowDuplicates permits a new campaign for a token that already has
	// an active one.
	AllowDuplicates bool
}

// CampaignUseCase provides business logic for creating and reading
// campaigns. It orchestrates the domain, the repository and the metadata
// provider to implement port.CampaignUseCase.
type CampaignUseCase struct {
	repo     port.CampaignRepository
	metadata port.TokenMetadataProvider
	opts     Options
	clock    port.Clock
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewCampaignUseCase creates a new use case. m may be nil.
func NewCampaignUseCase(repo port.CampaignRepository, metadata port.TokenMetadataProvider, opts Options, m *metrics.Metrics, logger *slog.Logger) *CampaignUseCase {
	return &CampaignUseCase{
		repo:     repo,
		metadata: metadata,
		opts:     opts,
		clock:    port.SystemClock{},
		metrics:  m,
		logger:   logger,
	}
}

// WithClock replaces the wall clock, for tests.
func (u *CampaignUseCase) WithClock(c port.Clock) *CampaignUseCase {
	u.clock = c
	return u
}

// CreateCampaign fetches metadata for address and stores a new campaign.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, address string) (primitive.ObjectID, error) {
	meta, err := u.PreviewToken(ctx, address)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return u.CreateCampaignFromMetadata(ctx, *meta)
}

// CreateCampaignFromMetadata validates meta, applies defaults and inserts
// exactly one record. Unless duplicates are allowed, a token with an
// active campaign is rejected. The check and the insert are not atomic.
func (u *CampaignUseCase) CreateCampaignFromMetadata(ctx context.Context, meta domain.TokenMetadata) (primitive.ObjectID, error) {
	c, err := domain.NewCampaign(meta, u.opts.Params, u.clock.Now())
	if err != nil {
		return primitive.NilObjectID, err
	}

	if !u.opts.AllowDuplicates {
		existing, err := u.repo.FindActiveByTokenAddress(ctx, c.TokenAddress)
		if err != nil {
			return primitive.NilObjectID, err
		}
		if existing != nil {
			return primitive.NilObjectID, fmt.Errorf("%w: %s", domain.ErrDuplicateCampaign, existing.ID.Hex())
		}
	}

	id, err := u.repo.Insert(ctx, c)
	if err != nil {
		return primitive.NilObjectID, err
	}
	u.metrics.CampaignCreated()
	u.logger.Info("campaign created",
		slog.String("id", id.Hex()),
		slog.String("token", c.TokenAddress),
		slog.String("symbol", c.Symbol))
	return id, nil
}

// GetCampaign returns the stored campaign for id.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	oid, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}
	c, err := u.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return c, nil
}

// ListCampaigns returns every campaign matching filter, newest first.
// Filtering happens here over the full listing, not in the store.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, filter domain.Filter) ([]domain.Campaign, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(all), nil
}

// PreviewToken looks up token metadata without side effects.
func (u *CampaignUseCase) PreviewToken(ctx context.Context, address string) (*domain.TokenMetadata, error) {
	meta, err := u.metadata.TokenMetadata(ctx, address)
	if err != nil {
		return nil, err
	}
	if meta == nil {
		return nil, fmt.Errorf("%w: empty response for %s", domain.ErrMetadataUnavailable, address)
	}
	return meta, nil
}

// SweepStatuses resolves the status of every active campaign at the
// current time and persists the ones that changed. Campaigns updated
// concurrently by someone else are skipped. It returns the number of
// transitions applied.
func (u *CampaignUseCase) SweepStatuses(ctx context.Context) (int, error) {
	active, err := u.ListCampaigns(ctx, domain.Filter{Status: domain.StatusActive})
	if err != nil {
		return 0, err
	}

	now := u.clock.Now()
	changed := 0
	for _, c := range active {
		next := c.ResolveStatus(now)
		if next == c.Status {
			continue
		}
		ok, err := u.repo.UpdateStatus(ctx, c.ID, c.Status, next)
		if err != nil {
			return changed, err
		}
		if !ok {
			continue
		}
		changed++
		u.metrics.StatusTransition(string(next))
		u.logger.Info("campaign status changed",
			slog.String("id", c.ID.Hex()),
			slog.String("from", string(c.Status)),
			slog.String("to", string(next)))
	}
	return changed, nil
}
