package workerRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes backing the candidate query.
func (r *MongoWorkerRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		// base filter + retrieval sort
		{Keys: bson.D{
			{Key: "isAvailable", Value: 1},
			{Key: "verificationStatus", Value: 1},
			{Key: "averageRating", Value: -1},
			{Key: "totalReviews", Value: -1},
		}},
		{Keys: bson.D{{Key: "skills", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create worker indexes: %w", err)
	}
	return nil
}
