package port

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"dexrooms/internal/core/domain"
)

// CampaignUseCase defines the business operations exposed by the campaign
// service. It is the primary port into the application domain; the HTTP
// adapter depends on it and mocks are generated from it for testing.
type CampaignUseCase interface {
	// CreateCampaign looks up the token at address and stores a new active
	// campaign for it. A failed lookup yields domain.ErrMetadataUnavailable.
	CreateCampaign(ctx context.Context, address string) (primitive.ObjectID, error)

	// CreateCampaignFromMetadata stores a new campaign from metadata the
	// caller already fetched.
	CreateCampaignFromMetadata(ctx context.Context, meta domain.TokenMetadata) (primitive.ObjectID, error)

	// GetCampaign returns the stored record verbatim. Malformed ids fail
	// with domain.ErrInvalidIdentifier before the store is touched and
	// unknown ids with domain.ErrNotFound.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)

	// ListCampaigns loads every campaign and applies filter in memory.
	ListCampaigns(ctx context.Context, filter domain.Filter) ([]domain.Campaign, error)

	// PreviewToken returns token metadata without creating anything.
	PreviewToken(ctx context.Context, address string) (*domain.TokenMetadata, error)

	// SweepStatuses moves active campaigns to completed or failed and
	// returns how many changed.
	SweepStatuses(ctx context.Context) (int, error)
}
