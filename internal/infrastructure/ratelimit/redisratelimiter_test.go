package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestRedisRateLimiter_Allow_PerMinute(t *testing.T) {
	client, _ := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "ip:1", Limits{PerMinute: 5})
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "ip:1", Limits{PerMinute: 5})
	require.NoError(t, err)
	assert.False(t, allowed, "6th request should be denied")

	allowed, err = limiter.Allow(ctx, "ip:2", Limits{PerMinute: 5})
	require.NoError(t, err)
	assert.True(t, allowed, "other keys are independent")
}

func TestRedisRateLimiter_Allow_PerHour(t *testing.T) {
	client, _ := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	limits := Limits{PerMinute: 100, PerHour: 3}
	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "reset:jane@example.com", limits)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
	allowed, err := limiter.Allow(ctx, "reset:jane@example.com", limits)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestRedisRateLimiter_CountAndReset(t *testing.T) {
	client, _ := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := limiter.Allow(ctx, "k", Limits{PerMinute: 10})
		require.NoError(t, err)
	}

	n, err := limiter.Count(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	require.NoError(t, limiter.Reset(ctx, "k"))
	n, err = limiter.Count(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRedisRateLimiter_Unavailable(t *testing.T) {
	client, mr := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	mr.Close()

	_, err := limiter.Allow(context.Background(), "k", Limits{PerMinute: 1})
	assert.Error(t, err)
}
