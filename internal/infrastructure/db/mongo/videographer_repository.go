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

const videographersCollection = "videographers"

type VideographerRepository struct {
	coll *mongo.Collection
}

func NewVideographerRepository(db *mongo.Database) *VideographerRepository {
	return &VideographerRepository{coll: db.Collection(videographersCollection)}
}

func (r *VideographerRepository) Insert(ctx context.Context, v *domain.VideographerProfile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, v)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrVideographerExists
	}
	return err
}

func (r *VideographerRepository) FindByID(ctx context.Context, id string) (*domain.VideographerProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var v domain.VideographerProfile
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVideographerNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *VideographerRepository) List(ctx context.Context) ([]*domain.VideographerProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []*domain.VideographerProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *VideographerRepository) Update(ctx context.Context, v *domain.VideographerProfile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": v.ID}, v)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrVideographerNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the videographers collection.
func (r *VideographerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "location", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
