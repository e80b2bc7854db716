package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mock_interfaces "github.com/tuncanbit/bss/internal/domain/interfaces/mocks"
)

type memoryStore struct {
	values  map[string]string
	ttls    map[string]time.Duration
	readErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memoryStore) Get(_ context.Context, key string) *redis.StringCmd {
	if m.readErr != nil {
		return redis.NewStringResult("", m.readErr)
	}
	v, ok := m.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memoryStore) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	m.values[key] = value.(string)
	m.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func TestCachedRateProvider_GetBaseRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	upstream := mock_interfaces.NewMockExchangeRateProvider(ctrl)
	store := newMemoryStore()
	provider := NewCachedRateProvider(upstream, store, 10*time.Minute, zerolog.Nop())

	upstream.EXPECT().GetBaseRate(ctx, "USD", "RWF").Return(decimal.NewFromInt(1300), nil).Times(1)

	first, err := provider.GetBaseRate(ctx, "USD", "RWF")
	require.NoError(t, err)
	second, err := provider.GetBaseRate(ctx, "USD", "RWF")
	require.NoError(t, err)

	assert.True(t, first.Equal(decimal.NewFromInt(1300)))
	assert.True(t, second.Equal(first))
	assert.Equal(t, 10*time.Minute, store.ttls["fx:USD:RWF"])
}

func TestCachedRateProvider_FallsThroughOnCacheError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	upstream := mock_interfaces.NewMockExchangeRateProvider(ctrl)
	store := newMemoryStore()
	store.readErr = errors.New("connection reset")
	provider := NewCachedRateProvider(upstream, store, time.Minute, zerolog.Nop())

	upstream.EXPECT().GetBaseRate(ctx, "USD", "RWF").Return(decimal.NewFromInt(1310), nil)

	rate, err := provider.GetBaseRate(ctx, "USD", "RWF")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(1310)))
}

func TestCachedRateProvider_UpstreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	upstream := mock_interfaces.NewMockExchangeRateProvider(ctrl)
	provider := NewCachedRateProvider(upstream, newMemoryStore(), time.Minute, zerolog.Nop())

	upstream.EXPECT().GetBaseRate(ctx, "USD", "RWF").Return(decimal.Zero, errors.New("provider down"))

	_, err := provider.GetBaseRate(ctx, "USD", "RWF")
	assert.Error(t, err)
}

func TestNoopLocker(t *testing.T) {
	release := NoopLocker{}.Acquire(context.Background(), "resource:abc")
	assert.NotPanics(t, release)
}
