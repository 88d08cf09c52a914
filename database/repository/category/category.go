package categoryRepo

import (
	"context"
	"fmt"
	"time"

	"fixmate/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CategoryRepository exposes the service category catalog.
type CategoryRepository interface {
	ListActiveCategories(ctx context.Context) ([]models.Category, error)
}

// MongoCategoryRepo implements CategoryRepository using MongoDB.
type MongoCategoryRepo struct {
	coll *mongo.Collection
}

func NewMongoCategoryRepo(coll *mongo.Collection) *MongoCategoryRepo {
	return &MongoCategoryRepo{coll: coll}
}

func (r *MongoCategoryRepo) ListActiveCategories(ctx context.Context) ([]models.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}
