package categoryRepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fixmate/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const activeCategoriesKey = "catalog:categories:active"

// CachedCategoryRepo is a read-through Redis cache in front of the catalog.
// Cache failures are logged and fall back to the underlying repository.
type CachedCategoryRepo struct {
	next   CategoryRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedCategoryRepo(next CategoryRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedCategoryRepo {
	return &CachedCategoryRepo{next: next, client: client, ttl: ttl, logger: logger}
}

func (r *CachedCategoryRepo) ListActiveCategories(ctx context.Context) ([]models.Category, error) {
	data, err := r.client.Get(ctx, activeCategoriesKey).Bytes()
	switch {
	case err == nil:
		var cached []models.Category
		if jsonErr := json.Unmarshal(data, &cached); jsonErr == nil {
			return cached, nil
		}
		r.logger.Warn("category cache entry is corrupt, reloading")
	case !errors.Is(err, redis.Nil):
		r.logger.Warn("category cache read failed", zap.Error(err))
	}

	categories, err := r.next.ListActiveCategories(ctx)
	if err != nil {
		return nil, err
	}

	b, err := json.Marshal(categories)
	if err == nil {
		if err := r.client.Set(ctx, activeCategoriesKey, b, r.ttl).Err(); err != nil {
			r.logger.Warn("category cache write failed", zap.Error(err))
		}
	}
	return categories, nil
}
