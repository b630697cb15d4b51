package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dexrooms/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository on a MongoDB
// collection. Documents use the campaign's bson tags, so records written by
// other clients of the same collection are read back unchanged.
type CampaignRepository struct {
	coll *mongo.Collection
}

// NewCampaignRepository returns a repository over coll.
func NewCampaignRepository(coll *mongo.Collection) *CampaignRepository {
	return &CampaignRepository{coll: coll}
}

// Insert stores c. A zero id is replaced by one generated by the driver.
func (r *CampaignRepository) Insert(ctx context.Context, c domain.Campaign) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return primitive.NilObjectID, storeErr("insert campaign", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("%w: unexpected inserted id %T", domain.ErrStoreFailure, res.InsertedID)
	}
	return id, nil
}

// GetByID returns the campaign with id, or nil when absent.
func (r *CampaignRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("find campaign", err)
	}
	return &c, nil
}

// List returns all campaigns, newest first.
func (r *CampaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, storeErr("list campaigns", err)
	}
	campaigns := make([]domain.Campaign, 0)
	if err = cur.All(ctx, &campaigns); err != nil {
		return nil, storeErr("decode campaigns", err)
	}
	return campaigns, nil
}

// FindActiveByTokenAddress returns the newest active campaign for address,
// or nil when there is none.
func (r *CampaignRepository) FindActiveByTokenAddress(ctx context.Context, address string) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.coll.FindOne(ctx,
		bson.M{"tokenAddress": address, "status": domain.StatusActive},
		options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("find campaign by token", err)
	}
	return &c, nil
}

// UpdateStatus performs a compare-and-set on the status field.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to domain.Status) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": bson.M{"status": to}},
	)
	if err != nil {
		return false, storeErr("update campaign status", err)
	}
	return res.ModifiedCount == 1, nil
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStoreFailure, op, err)
}
