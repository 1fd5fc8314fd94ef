package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/northbound/studio-api/internal/core/domain"
)

const payoutsCollection = "payouts"

type PayoutRepository struct {
	coll *mongo.Collection
}

func NewPayoutRepository(db *mongo.Database) *PayoutRepository {
	return &PayoutRepository{coll: db.Collection(payoutsCollection)}
}

func (r *PayoutRepository) Insert(ctx context.Context, p *domain.Payout) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, p)
	return err
}

func (r *PayoutRepository) FindByID(ctx context.Context, id string) (*domain.Payout, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Payout
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPayoutNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Update replaces the payout document, keyed by id.
func (r *PayoutRepository) Update(ctx context.Context, p *domain.Payout) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrPayoutNotFound
	}
	return nil
}

func (r *PayoutRepository) ListByVideographer(ctx context.Context, videographerID string) ([]*domain.Payout, error) {
	return r.list(ctx, bson.M{"videographer_id": videographerID})
}

func (r *PayoutRepository) ListAll(ctx context.Context, status string) ([]*domain.Payout, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return r.list(ctx, filter)
}

func (r *PayoutRepository) list(ctx context.Context, filter bson.M) ([]*domain.Payout, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payouts []*domain.Payout
	if err := cursor.All(ctx, &payouts); err != nil {
		return nil, err
	}
	return payouts, nil
}

// EnsureIndexes creates necessary indexes on the payouts collection.
func (r *PayoutRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "videographer_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
