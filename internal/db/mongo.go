package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"dexrooms/internal/config/configs"
)

// NewMongoClient connects to the document store and pings the primary,
// retrying with exponential backoff for up to cfg.ConnectTimeout. The
// caller must Disconnect the returned client.
func NewMongoClient(ctx context.Context, cfg configs.Mongo, logger *slog.Logger) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = cfg.ConnectTimeout
	err = backoff.RetryNotify(func() error {
		ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return client.Ping(ctxPing, readpref.Primary())
	}, backoff.WithContext(b, ctx), func(err error, next time.Duration) {
		logger.Warn("mongo ping failed, retrying", slog.Any("error", err), slog.Duration("next", next))
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// EnsureMongoIndexes creates the lookup indexes the campaign repository
// relies on. It is idempotent.
func EnsureMongoIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "tokenAddress", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	return err
}
