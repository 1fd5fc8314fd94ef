package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/northbound/studio-api/internal/core/domain"
	"github.com/northbound/studio-api/internal/core/ports"
)

const (
	usageCollection   = "billing_usage"
	samplesCollection = "usage_history"
)

type UsageRepository struct {
	usage   *mongo.Collection
	samples *mongo.Collection
}

func NewUsageRepository(db *mongo.Database) *UsageRepository {
	return &UsageRepository{
		usage:   db.Collection(usageCollection),
		samples: db.Collection(samplesCollection),
	}
}

// AddMonthly folds deltas into the customer's record for month, creating it
// when absent. The (user_id, month) pair is the upsert key.
func (r *UsageRepository) AddMonthly(ctx context.Context, userID, month string, storageGB, transferGB, storageCostUSD, transferCostUSD float64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"user_id": userID, "month": month}
	update := bson.M{
		"$inc": bson.M{
			"storage_used_gb":   storageGB,
			"transfer_used_gb":  transferGB,
			"storage_cost_usd":  storageCostUSD,
			"transfer_cost_usd": transferCostUSD,
		},
	}

	_, err := r.usage.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *UsageRepository) InsertSample(ctx context.Context, s *domain.UsageSample) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.samples.InsertOne(ctx, s)
	return err
}

func (r *UsageRepository) ListMonthly(ctx context.Context, userID string) ([]*domain.UsageRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "month", Value: -1}})
	cursor, err := r.usage.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*domain.UsageRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *UsageRepository) ListSamples(ctx context.Context, userID string, limit int) ([]*domain.UsageSample, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "recorded_at", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.samples.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var samples []*domain.UsageSample
	if err := cursor.All(ctx, &samples); err != nil {
		return nil, err
	}
	return samples, nil
}

// Totals aggregates consumption and cost across all customers.
func (r *UsageRepository) Totals(ctx context.Context) (*ports.UsageTotals, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":      nil,
			"storage":  bson.M{"$sum": "$storage_used_gb"},
			"transfer": bson.M{"$sum": "$transfer_used_gb"},
			"cost": bson.M{"$sum": bson.M{
				"$add": bson.A{"$storage_cost_usd", "$transfer_cost_usd"},
			}},
			"customers": bson.M{"$addToSet": "$user_id"},
		}}},
	}

	cursor, err := r.usage.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Storage   float64  `bson:"storage"`
		Transfer  float64  `bson:"transfer"`
		Cost      float64  `bson:"cost"`
		Customers []string `bson:"customers"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &ports.UsageTotals{}, nil
	}

	return &ports.UsageTotals{
		StorageUsedGB:  rows[0].Storage,
		TransferUsedGB: rows[0].Transfer,
		TotalCostUSD:   rows[0].Cost,
		Customers:      int64(len(rows[0].Customers)),
	}, nil
}

// EnsureIndexes creates necessary indexes on the usage collections.
func (r *UsageRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := r.usage.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "month", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}
	_, err := r.samples.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "recorded_at", Value: -1}},
	})
	return err
}
