package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/maasproduction/studio-api/internal/logging"
)

// counter is the slice of the Redis API the limiter needs.
type counter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
}

// RedisLimiter is the shared-counter variant of the fixed-window gate,
// for deployments that run more than one instance. The window starts
// when the first hit creates the key and ends when the key expires.
type RedisLimiter struct {
	counter counter
	client  *redis.Client
	window  time.Duration
	max     int
}

// NewRedisLimiter creates a limiter backed by the given Redis address.
func NewRedisLimiter(addr, password string) *RedisLimiter {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	return &RedisLimiter{
		counter: client,
		client:  client,
		window:  Window,
		max:     MaxPerWindow,
	}
}

// Allow increments the counter for key and reports whether it stays
// within the window quota. The gate cannot error: Redis failures are
// logged and the request is allowed through.
func (l *RedisLimiter) Allow(ctx context.Context, key string) bool {
	logger := logging.GetGlobalLogger()

	redisKey := "ratelimit:" + key

	count, err := l.counter.Incr(ctx, redisKey).Result()
	if err != nil {
		logger.Warn("Rate limit store unavailable, allowing request: %v", err)
		return true
	}

	if count == 1 {
		if err := l.counter.Expire(ctx, redisKey, l.window).Err(); err != nil {
			logger.Warn("Failed to set rate limit window expiry for %s: %v", key, err)
		}
	} else {
		// A key whose first-hit Expire was lost has no TTL and would
		// count forever, locking the address out permanently. Heal it.
		ttl, err := l.counter.TTL(ctx, redisKey).Result()
		if err == nil && ttl == -1 {
			if err := l.counter.Expire(ctx, redisKey, l.window).Err(); err != nil {
				logger.Warn("Failed to restore rate limit window expiry for %s: %v", key, err)
			}
		}
	}

	return count <= int64(l.max)
}

// Close releases the underlying Redis connection.
func (l *RedisLimiter) Close() error {
	return l.client.Close()
}
