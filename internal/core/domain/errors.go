package domain

import "errors"

var (
	// ErrInvalidIdentifier is returned for ids that are not 24 hex
	// characters. No store access happens in that case.
	ErrInvalidIdentifier = errors.New("invalid campaign id")
	// ErrNotFound is returned when a well formed id has no record.
	ErrNotFound = errors.New("campaign not found")
	// ErrMetadataUnavailable is returned when the token metadata lookup
	// fails or yields an unusable payload.
	ErrMetadataUnavailable = errors.New("token metadata unavailable")
	// ErrStoreFailure wraps unexpected persistence errors.
	ErrStoreFailure = errors.New("store failure")

	ErrInvalidCampaign   = errors.New("invalid campaign")
	ErrDuplicateCampaign = errors.New("an active campaign already exists for this token")
	ErrInvalidGoal       = errors.New("goal must be positive")
	ErrInvalidAmount     = errors.New("amount is not a finite number")
)
