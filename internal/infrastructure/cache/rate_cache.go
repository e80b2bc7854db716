package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/tuncanbit/bss/internal/domain/interfaces"
)

type kvStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedRateProvider memoizes base rates in Redis for a fixed TTL.
type CachedRateProvider struct {
	next   interfaces.ExchangeRateProvider
	rdb    kvStore
	ttl    time.Duration
	logger zerolog.Logger
}

func NewCachedRateProvider(next interfaces.ExchangeRateProvider, rdb kvStore, ttl time.Duration, logger zerolog.Logger) *CachedRateProvider {
	return &CachedRateProvider{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger.With().Str("component", "rate_cache").Logger(),
	}
}

func rateKey(base, quote string) string {
	return fmt.Sprintf("fx:%s:%s", base, quote)
}

func (c *CachedRateProvider) GetBaseRate(ctx context.Context, base, quote string) (decimal.Decimal, error) {
	key := rateKey(base, quote)

	cached, err := c.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		rate, parseErr := decimal.NewFromString(cached)
		if parseErr == nil {
			return rate, nil
		}
		c.logger.Warn().Err(parseErr).Str("key", key).Msg("Discarding unparsable cached rate")
	case errors.Is(err, redis.Nil):
		// miss
	default:
		c.logger.Warn().Err(err).Str("key", key).Msg("Rate cache read failed")
	}

	rate, err := c.next.GetBaseRate(ctx, base, quote)
	if err != nil {
		return decimal.Zero, err
	}

	if err := c.rdb.Set(ctx, key, rate.String(), c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("Rate cache write failed")
	}
	return rate, nil
}
