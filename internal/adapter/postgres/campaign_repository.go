package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"dexrooms/internal/core/domain"
)

const campaignColumns = `id, token_address, name, symbol, logo, description, twitter, website,
    market_cap, total_supply, escrow_wallet, raised, goal, contributors, status,
    created_at, expires_at, replies`

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Ids are stored in their 24 hex character form.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// Insert stores c, generating an id when c has none.
func (r *CampaignRepository) Insert(ctx context.Context, c domain.Campaign) (primitive.ObjectID, error) {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO campaigns (`+campaignColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)`,
		c.ID.Hex(), c.TokenAddress, c.Name, c.Symbol, c.Logo, c.Description,
		c.SocialLinks.Twitter, c.SocialLinks.Website, c.MarketCap, c.TotalSupply,
		c.EscrowWallet, c.Raised, c.Goal, c.Contributors, string(c.Status),
		c.CreatedAt, c.ExpiresAt, c.Replies)
	if err != nil {
		return primitive.NilObjectID, storeErr("insert campaign", err)
	}
	return c.ID, nil
}

// GetByID returns a campaign by id, or nil when absent.
func (r *CampaignRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id.Hex())
	if err != nil {
		return nil, storeErr("find campaign", err)
	}
	c, err := pgx.CollectOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("find campaign", err)
	}
	return &c, nil
}

// List returns all campaigns, newest first.
func (r *CampaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY created_at DESC`)
	if err != nil {
		return nil, storeErr("list campaigns", err)
	}
	campaigns, err := pgx.CollectRows(rows, scanCampaign)
	if err != nil {
		return nil, storeErr("list campaigns", err)
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	return campaigns, nil
}

// FindActiveByTokenAddress returns the newest active campaign for address.
func (r *CampaignRepository) FindActiveByTokenAddress(ctx context.Context, address string) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns
WHERE token_address = $1 AND status = $2 ORDER BY created_at DESC LIMIT 1`, address, string(domain.StatusActive))
	if err != nil {
		return nil, storeErr("find campaign by token", err)
	}
	c, err := pgx.CollectOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("find campaign by token", err)
	}
	return &c, nil
}

// UpdateStatus sets status to `to` where it is still `from`.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to domain.Status) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET status = $1 WHERE id = $2 AND status = $3`,
		string(to), id.Hex(), string(from))
	if err != nil {
		return false, storeErr("update campaign status", err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c      domain.Campaign
		id     string
		status string
	)
	err := row.Scan(
		&id,
		&c.TokenAddress,
		&c.Name,
		&c.Symbol,
		&c.Logo,
		&c.Description,
		&c.SocialLinks.Twitter,
		&c.SocialLinks.Website,
		&c.MarketCap,
		&c.TotalSupply,
		&c.EscrowWallet,
		&c.Raised,
		&c.Goal,
		&c.Contributors,
		&status,
		&c.CreatedAt,
		&c.ExpiresAt,
		&c.Replies,
	)
	if err != nil {
		return c, err
	}
	if c.ID, err = primitive.ObjectIDFromHex(id); err != nil {
		return c, fmt.Errorf("stored id %q: %w", id, err)
	}
	c.Status = domain.Status(status)
	return c, nil
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStoreFailure, op, err)
}
