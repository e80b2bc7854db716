package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/tuncanbit/bss/pkg/config"
)

func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Address, err)
	}
	return rdb, nil
}

// Locker hands out short-lived distributed locks. Locks are advisory: the
// store keeps its own guarantees, so callers proceed without a lock when
// Redis is unavailable.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func())
}

type RedisLocker struct {
	client *redislock.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewRedisLocker(rdb *redis.Client, ttl time.Duration, logger zerolog.Logger) *RedisLocker {
	return &RedisLocker{
		client: redislock.New(rdb),
		ttl:    ttl,
		logger: logger.With().Str("component", "redis_locker").Logger(),
	}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) func() {
	opts := &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(50*time.Millisecond), 20),
	}
	lock, err := l.client.Obtain(ctx, "lock:"+key, l.ttl, opts)
	if errors.Is(err, redislock.ErrNotObtained) {
		l.logger.Warn().Str("key", key).Msg("could not obtain redis lock; proceeding without redis lock")
		return func() {}
	} else if err != nil {
		l.logger.Warn().Err(err).Str("key", key).Msg("error obtaining redis lock; proceeding without redis lock")
		return func() {}
	}

	return func() {
		if err := lock.Release(context.Background()); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			l.logger.Warn().Err(err).Str("key", key).Msg("failed to release redis lock")
		}
	}
}

// NoopLocker is used when no Redis address is configured.
type NoopLocker struct{}

func (NoopLocker) Acquire(context.Context, string) func() { return func() {} }
