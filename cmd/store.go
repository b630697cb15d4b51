package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	mongoadapter "dexrooms/internal/adapter/mongo"
	"dexrooms/internal/adapter/postgres"
	"dexrooms/internal/config"
	"dexrooms/internal/config/configs"
	"dexrooms/internal/core/port"
	"dexrooms/internal/db"
)

// openStore connects the campaign repository selected by STORE_DRIVER.
// The returned func releases the connection.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.CampaignRepository, func(), error) {
	switch cfg.Store.Driver {
	case configs.StorePostgres:
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection error: %w", err)
		}
		return postgres.NewCampaignRepository(pool), pool.Close, nil
	default:
		client, err := db.NewMongoClient(ctx, cfg.Mongo, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("mongo connection error: %w", err)
		}
		coll := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
		if err = db.EnsureMongoIndexes(ctx, coll); err != nil {
			logger.Warn("failed to ensure mongo indexes", slog.Any("error", err))
		}
		closeFn := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(ctx); err != nil {
				logger.Error("mongo disconnect error", slog.Any("error", err))
			}
		}
		return mongoadapter.NewCampaignRepository(coll), closeFn, nil
	}
}
