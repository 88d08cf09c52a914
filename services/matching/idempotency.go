package matching

import (
	"context"
	"encoding/json"
	"time"

	"fixmate/models"

	"github.com/go-redis/redis/v8"
)

const (
	idempotencyPrefix = "idem:confirm:"
	pendingMarker     = "pending"
)

// IdempotencyStore deduplicates confirmations that carry an Idempotency-Key.
type IdempotencyStore interface {
	// Reserve claims key. When the key is already taken it returns false together with
	// the stored booking, or a nil booking while the first attempt is still running.
	Reserve(ctx context.Context, key string) (bool, *models.Booking, error)
	Complete(ctx context.Context, key string, booking *models.Booking) error
	Release(ctx context.Context, key string) error
}

type RedisIdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisIdempotencyStore(client *redis.Client, ttl time.Duration) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{client: client, ttl: ttl}
}

func (s *RedisIdempotencyStore) Reserve(ctx context.Context, key string) (bool, *models.Booking, error) {
	ok, err := s.client.SetNX(ctx, idempotencyPrefix+key, pendingMarker, s.ttl).Result()
	if err != nil {
		return false, nil, err
	}
	if ok {
		return true, nil, nil
	}

	data, err := s.client.Get(ctx, idempotencyPrefix+key).Result()
	if err == redis.Nil {
		// Released between SETNX and GET; treat as in flight so the client retries.
		return false, nil, nil
	}
	if err != nil {
		return false, nil, err
	}
	if data == pendingMarker {
		return false, nil, nil
	}

	var booking models.Booking
	if err := json.Unmarshal([]byte(data), &booking); err != nil {
		return false, nil, err
	}
	return false, &booking, nil
}

func (s *RedisIdempotencyStore) Complete(ctx context.Context, key string, booking *models.Booking) error {
	b, err := json.Marshal(booking)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, idempotencyPrefix+key, b, s.ttl).Err()
}

func (s *RedisIdempotencyStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, idempotencyPrefix+key).Err()
}
