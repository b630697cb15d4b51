package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"dexrooms/internal/core/domain"
	"dexrooms/internal/core/port"
)

var demoTokens = []domain.TokenMetadata{
	{
		Mint:                 "7GCihgDB8fe6KNjn2MYtkzZcRjQy3t9GHdC8uHYmW2hr",
		Name:                 "POPCAT",
		Symbol:               "POPCAT",
		Description:          "Pop pop pop",
		FullyDilutedValue:    "310000000",
		TotalSupplyFormatted: "979978669",
		Links:                domain.SocialLinks{Twitter: "https://x.com/popcatsolana"},
	},
	{
		Mint:                 "EKpQGSJtjMFqKZ9KQanSqYXRcF8fBopzLHYxdM65zcjm",
		Name:                 "dogwifhat",
		Symbol:               "WIF",
		Logo:                 "https://logo.example/wif.png",
		FullyDilutedValue:    "1900000000",
		TotalSupplyFormatted: "998926392",
		Links:                domain.SocialLinks{Website: "https://dogwifcoin.org"},
	},
	{
		Mint:   "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263",
		Name:   "Bonk",
		Symbol: "Bonk",
	},
	{
		Mint:                 "MEW1gQWJ3nEXg2qgERiKu7FAFj79PHvQVREQUzScPP5",
		Name:                 "cat in a dogs world",
		Symbol:               "MEW",
		Description:          "cats reclaim the blockchain",
		TotalSupplyFormatted: "88888888888",
	},
	{
		Mint:   "ukHH6c7mMyiWCf1b9pnWe25TSpkDDt3H5pQZgZ74J82",
		Name:   "BOOK OF MEME",
		Symbol: "BOME",
	},
}

// Seed inserts demo campaigns through repo. Campaigns are spread over the
// three statuses with varying funding so list and detail views have
// something to render.
func Seed(ctx context.Context, repo port.CampaignRepository, params domain.CampaignParams, now time.Time) ([]string, error) {
	r := rand.New(rand.NewSource(now.UnixNano()))

	ids := make([]string, 0, len(demoTokens))
	for i, meta := range demoTokens {
		created := now.Add(-time.Duration(i*12) * time.Hour)
		c, err := domain.NewCampaign(meta, params, created)
		if err != nil {
			return ids, fmt.Errorf("seed %s: %w", meta.Symbol, err)
		}
		c.Contributors = int64(r.Intn(40))
		// funding is drawn in whole cents below the goal
		if cents := int(c.Goal * 100); c.Contributors > 0 && cents > 0 {
			c.Raised = float64(r.Intn(cents)) / 100
		}
		replies := int64(r.Intn(25))
		c.Replies = &replies

		switch i {
		case 1:
			c.Raised = c.Goal
			c.Status = domain.StatusCompleted
		case 4:
			c.Status = domain.StatusFailed
		}

		id, err := repo.Insert(ctx, c)
		if err != nil {
			return ids, fmt.Errorf("seed %s: %w", meta.Symbol, err)
		}
		ids = append(ids, id.Hex())
	}
	return ids, nil
}
