package port

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"dexrooms/internal/core/domain"
)

// CampaignRepository defines the persistence layer for campaigns. It is an
// outbound port in hexagonal architecture. Implementations wrap unexpected
// failures in domain.ErrStoreFailure.
type CampaignRepository interface {
	// Insert stores a new campaign and returns its id.
	Insert(ctx context.Context, c domain.Campaign) (primitive.ObjectID, error)
	// GetByID returns the campaign with id, or nil when there is none.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Campaign, error)
	// List returns all campaigns, newest first.
	List(ctx context.Context) ([]domain.Campaign, error)
	// FindActiveByTokenAddress returns an active campaign for the token, or
	// nil when there is none.
	FindActiveByTokenAddress(ctx context.Context, address string) (*domain.Campaign, error)
	// UpdateStatus sets the status to `to` only if it is currently `from`.
	// It reports whether a record changed.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to domain.Status) (bool, error)
}

// TokenMetadataProvider resolves token metadata for a chain address.
type TokenMetadataProvider interface {
	// TokenMetadata fails with domain.ErrMetadataUnavailable when the
	// upstream lookup fails or returns an unusable payload.
	TokenMetadata(ctx context.Context, address string) (*domain.TokenMetadata, error)
}

// Clock abstracts the current time for use cases and workers.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
