package postgres

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dexrooms/internal/config/configs"
	"dexrooms/internal/core/domain"
	"dexrooms/internal/db"
)

// newTestRepository connects to the database named by DEXROOMS_TEST_PSQL,
// migrates it and empties the campaigns table. Tests are skipped when the
// variable is unset.
func newTestRepository(t *testing.T) *CampaignRepository {
	t.Helper()
	addr := os.Getenv("DEXROOMS_TEST_PSQL")
	if addr == "" {
		t.Skip("DEXROOMS_TEST_PSQL not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(addr, slog.New(slog.NewTextHandler(io.Discard, nil))))

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE campaigns`)
	require.NoError(t, err)
	return NewCampaignRepository(pool)
}

func newCampaign(t *testing.T, mint string, created time.Time) domain.Campaign {
	t.Helper()
	c, err := domain.NewCampaign(domain.TokenMetadata{Mint: mint, Name: mint, Symbol: mint},
		domain.CampaignParams{Goal: 300, Duration: 48 * time.Hour, EscrowWallet: "escrow"}, created)
	require.NoError(t, err)
	return c
}

func TestCampaignRepositoryRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	older := newCampaign(t, "AAA", now.Add(-time.Hour))
	newer := newCampaign(t, "BBB", now)
	replies := int64(3)
	newer.Replies = &replies

	for _, c := range []domain.Campaign{older, newer} {
		id, err := repo.Insert(ctx, c)
		require.NoError(t, err)
		assert.Equal(t, c.ID, id)
	}

	got, err := repo.GetByID(ctx, newer.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "BBB", got.TokenAddress)
	assert.Equal(t, domain.NoLogo, got.Logo)
	require.NotNil(t, got.Replies)
	assert.Equal(t, int64(3), *got.Replies)
	assert.True(t, newer.ExpiresAt.Equal(got.ExpiresAt))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)

	active, err := repo.FindActiveByTokenAddress(ctx, "AAA")
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, older.ID, active.ID)

	changed, err := repo.UpdateStatus(ctx, older.ID, domain.StatusActive, domain.StatusFailed)
	require.NoError(t, err)
	assert.True(t, changed)
	changed, err = repo.UpdateStatus(ctx, older.ID, domain.StatusActive, domain.StatusFailed)
	require.NoError(t, err)
	assert.False(t, changed)

	active, err = repo.FindActiveByTokenAddress(ctx, "AAA")
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestCampaignRepositoryMissing(t *testing.T) {
	repo := newTestRepository(t)
	got, err := repo.GetByID(context.Background(), newCampaign(t, "CCC", time.Now()).ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
