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

const togglesCollection = "feature_toggles"

type ToggleRepository struct {
	coll *mongo.Collection
}

func NewToggleRepository(db *mongo.Database) *ToggleRepository {
	return &ToggleRepository{coll: db.Collection(togglesCollection)}
}

// Upsert writes the toggle keyed by feature name, creating it when missing.
func (r *ToggleRepository) Upsert(ctx context.Context, t *domain.FeatureToggle) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"enabled":    t.Enabled,
		"updated_at": t.UpdatedAt.UTC(),
	}}
	if t.ID != "" {
		update["$setOnInsert"] = bson.M{"_id": t.ID}
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx, bson.M{"feature_name": t.Name}, update, opts)
	return err
}

func (r *ToggleRepository) FindByName(ctx context.Context, name string) (*domain.FeatureToggle, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.FeatureToggle
	if err := r.coll.FindOne(ctx, bson.M{"feature_name": name}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrToggleNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *ToggleRepository) List(ctx context.Context) ([]*domain.FeatureToggle, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "feature_name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var toggles []*domain.FeatureToggle
	if err := cursor.All(ctx, &toggles); err != nil {
		return nil, err
	}
	return toggles, nil
}

// EnsureIndexes creates necessary indexes on the feature toggles collection.
func (r *ToggleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "feature_name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
