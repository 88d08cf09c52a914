package utils

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func TestCheckHealth_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	up := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	down := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() {
		_ = up.Close()
		_ = down.Close()
	})

	status := CheckHealth(context.Background(), []*redis.Client{up, down}, nil)

	assert.Equal(t, []bool{true, false}, status.Redis)
	assert.False(t, status.Mongo)
	assert.False(t, status.Healthy())
	assert.Equal(t, status, GetHealthStatus())
}

func TestHealthStatus_Healthy(t *testing.T) {
	assert.False(t, HealthStatus{}.Healthy())
	assert.True(t, HealthStatus{Mongo: true, Redis: []bool{true}, CheckedAt: time.Now()}.Healthy())
	assert.False(t, HealthStatus{Mongo: true, Redis: []bool{true, false}, CheckedAt: time.Now()}.Healthy())
}
