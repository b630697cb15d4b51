package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"dexrooms/internal/core/domain"
	"dexrooms/internal/core/port/mocks"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

var fooMeta = domain.TokenMetadata{Mint: "FooMint", Name: "Foo", Symbol: "FOO"}

func newUseCase(t *testing.T, allowDuplicates bool) (*CampaignUseCase, *mocks.MockCampaignRepository, *mocks.MockTokenMetadataProvider) {
	t.Helper()
	repo := mocks.NewMockCampaignRepository(t)
	provider := mocks.NewMockTokenMetadataProvider(t)
	uc := NewCampaignUseCase(repo, provider, Options{
		Params:          domain.CampaignParams{Goal: 300, Duration: 48 * time.Hour, EscrowWallet: "escrow"},
		AllowDuplicates: allowDuplicates,
	}, nil, slog.New(slog.NewTextHandler(io.Discard, nil))).WithClock(fixedClock(t0))
	return uc, repo, provider
}

// TestCreateCampaign ensures a campaign is built from fetched metadata and
// inserted exactly once with its defaults applied.
func TestCreateCampaign(t *testing.T) {
	uc, repo, provider := newUseCase(t, true)

	provider.EXPECT().TokenMetadata(mock.Anything, "FooMint").Return(&fooMeta, nil)

	var inserted domain.Campaign
	repo.EXPECT().
		Insert(mock.Anything, mock.AnythingOfType("domain.Campaign")).
		RunAndReturn(func(_ context.Context, c domain.Campaign) (primitive.ObjectID, error) {
			inserted = c
			return c.ID, nil
		}).
		Once()

	id, err := uc.CreateCampaign(context.Background(), "FooMint")
	if err != nil {
		t.Fatalf("CreateCampaign error: %v", err)
	}
	assert.Equal(t, inserted.ID, id)
	assert.Equal(t, domain.StatusActive, inserted.Status)
	assert.Equal(t, domain.NoLogo, inserted.Logo)
	assert.Equal(t, domain.NoDescription, inserted.Description)
	assert.Zero(t, inserted.Raised)
	assert.Zero(t, inserted.Contributors)
	assert.Equal(t, t0.Add(48*time.Hour), inserted.ExpiresAt)
	assert.Equal(t, "escrow", inserted.EscrowWallet)
}

func TestCreateCampaignMetadataUnavailable(t *testing.T) {
	uc, _, provider := newUseCase(t, true)

	provider.EXPECT().
		TokenMetadata(mock.Anything, "Nope").
		Return(nil, domain.ErrMetadataUnavailable)

	_, err := uc.CreateCampaign(context.Background(), "Nope")
	assert.ErrorIs(t, err, domain.ErrMetadataUnavailable)
	assert.NotErrorIs(t, err, domain.ErrInvalidCampaign)
}

func TestCreateCampaignFromMetadataValidation(t *testing.T) {
	uc, _, _ := newUseCase(t, true)

	_, err := uc.CreateCampaignFromMetadata(context.Background(), domain.TokenMetadata{Name: "Foo", Symbol: "FOO"})
	assert.ErrorIs(t, err, domain.ErrInvalidCampaign)
}

func TestCreateCampaignDuplicates(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		uc, repo, _ := newUseCase(t, true)
		repo.EXPECT().
			Insert(mock.Anything, mock.AnythingOfType("domain.Campaign")).
			Return(primitive.NewObjectID(), nil).
			Twice()

		for i := 0; i < 2; i++ {
			_, err := uc.CreateCampaignFromMetadata(context.Background(), fooMeta)
			require.NoError(t, err)
		}
		repo.AssertNotCalled(t, "FindActiveByTokenAddress", mock.Anything, mock.Anything)
	})

	t.Run("rejected", func(t *testing.T) {
		uc, repo, _ := newUseCase(t, false)
		existing := &domain.Campaign{ID: primitive.NewObjectID(), TokenAddress: "FooMint", Status: domain.StatusActive}
		repo.EXPECT().FindActiveByTokenAddress(mock.Anything, "FooMint").Return(existing, nil)

		_, err := uc.CreateCampaignFromMetadata(context.Background(), fooMeta)
		assert.ErrorIs(t, err, domain.ErrDuplicateCampaign)
	})

	t.Run("first of its kind", func(t *testing.T) {
		uc, repo, _ := newUseCase(t, false)
		repo.EXPECT().FindActiveByTokenAddress(mock.Anything, "FooMint").Return(nil, nil)
		repo.EXPECT().
			Insert(mock.Anything, mock.AnythingOfType("domain.Campaign")).
			Return(primitive.NewObjectID(), nil)

		_, err := uc.CreateCampaignFromMetadata(context.Background(), fooMeta)
		require.NoError(t, err)
	})
}

func TestCreateCampaignStoreFailure(t *testing.T) {
	uc, repo, _ := newUseCase(t, true)
	repo.EXPECT().
		Insert(mock.Anything, mock.AnythingOfType("domain.Campaign")).
		Return(primitive.NilObjectID, domain.ErrStoreFailure)

	_, err := uc.CreateCampaignFromMetadata(context.Background(), fooMeta)
	assert.ErrorIs(t, err, domain.ErrStoreFailure)
}

// TestGetCampaign covers the three lookup outcomes; a malformed id never
// reaches the repository.
func TestGetCampaign(t *testing.T) {
	uc, repo, _ := newUseCase(t, true)

	_, err := uc.GetCampaign(context.Background(), "not-a-valid-id")
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)

	missing := primitive.NewObjectID()
	repo.EXPECT().GetByID(mock.Anything, missing).Return(nil, nil)
	_, err = uc.GetCampaign(context.Background(), missing.Hex())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	found := &domain.Campaign{ID: primitive.NewObjectID(), Name: "Foo"}
	repo.EXPECT().GetByID(mock.Anything, found.ID).Return(found, nil)
	got, err := uc.GetCampaign(context.Background(), found.ID.Hex())
	require.NoError(t, err)
	assert.Same(t, found, got)

	broken := primitive.NewObjectID()
	repo.EXPECT().GetByID(mock.Anything, broken).Return(nil, errors.Join(domain.ErrStoreFailure, errors.New("timeout")))
	_, err = uc.GetCampaign(context.Background(), broken.Hex())
	assert.ErrorIs(t, err, domain.ErrStoreFailure)
}

func TestListCampaignsFiltersInMemory(t *testing.T) {
	uc, repo, _ := newUseCase(t, true)
	repo.EXPECT().List(mock.Anything).Return([]domain.Campaign{
		{Name: "Foo", Symbol: "FOO", TokenAddress: "a1", Status: domain.StatusActive},
		{Name: "Bar", Symbol: "BAR", TokenAddress: "a2", Status: domain.StatusCompleted},
		{Name: "Food", Symbol: "FD", TokenAddress: "a3", Status: domain.StatusCompleted},
	}, nil)

	got, err := uc.ListCampaigns(context.Background(), domain.Filter{Query: "foo", Status: domain.StatusCompleted})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "FD", got[0].Symbol)
}

func TestSweepStatuses(t *testing.T) {
	uc, repo, _ := newUseCase(t, true)

	funded := domain.Campaign{ID: primitive.NewObjectID(), Status: domain.StatusActive, Goal: 300, Raised: 300, ExpiresAt: t0.Add(time.Hour)}
	expired := domain.Campaign{ID: primitive.NewObjectID(), Status: domain.StatusActive, Goal: 300, Raised: 10, ExpiresAt: t0}
	running := domain.Campaign{ID: primitive.NewObjectID(), Status: domain.StatusActive, Goal: 300, Raised: 10, ExpiresAt: t0.Add(time.Hour)}
	raced := domain.Campaign{ID: primitive.NewObjectID(), Status: domain.StatusActive, Goal: 300, ExpiresAt: t0.Add(-time.Hour)}
	done := domain.Campaign{ID: primitive.NewObjectID(), Status: domain.StatusFailed, Goal: 300, ExpiresAt: t0.Add(-time.Hour)}

	repo.EXPECT().List(mock.Anything).Return([]domain.Campaign{funded, expired, running, raced, done}, nil)
	repo.EXPECT().UpdateStatus(mock.Anything, funded.ID, domain.StatusActive, domain.StatusCompleted).Return(true, nil)
	repo.EXPECT().UpdateStatus(mock.Anything, expired.ID, domain.StatusActive, domain.StatusFailed).Return(true, nil)
	repo.EXPECT().UpdateStatus(mock.Anything, raced.ID, domain.StatusActive, domain.StatusFailed).Return(false, nil)

	n, err := uc.SweepStatuses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
