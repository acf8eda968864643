package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hbnb-evolution/backend/internal/domain/providers"
	"github.com/hbnb-evolution/backend/pkg/config"
)

// RedisLimiter implements providers.RateLimitStore on Redis. INCR plus
// EXPIRE NX keeps count-and-arm-window atomic, so concurrent attempts from
// one client cannot slip past the limit and repeated attempts never slide
// the window forward.
type RedisLimiter struct {
	rdb *redis.Client
}

var _ providers.RateLimitStore = (*RedisLimiter)(nil)

// NewRedisLimiter connects to Redis and verifies connectivity before
// returning the limiter.
func NewRedisLimiter(ctx context.Context, cfg *config.Redis) (*RedisLimiter, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisLimiter{rdb: rdb}, nil
}

// Increment bumps the counter for key, arming the expiry only when the key
// is first created.
func (l *RedisLimiter) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to increment rate counter: %w", err)
	}
	return incr.Val(), nil
}

// TTL reports the remaining window for key.
func (l *RedisLimiter) TTL(ctx context.Context, key string) (time.Duration, error) {
	ttl, err := l.rdb.TTL(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read rate counter ttl: %w", err)
	}
	return ttl, nil
}

// Close closes the Redis connection.
func (l *RedisLimiter) Close() error {
	return l.rdb.Close()
}
