package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Setenv("BSS_GATEWAY_KEY", "secret-key")

	raw := []byte(`
server:
  port: "9090"
gateway:
  base_url: https://api.sandbox.gateway.test
  api_key: ${BSS_GATEWAY_KEY}
  timeout: 5s
settlement:
  local_currency: UGX
kafka:
  brokers: ["kafka-1:9092", "kafka-2:9092"]
  topic: booking-events
`)

	cfg, err := Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "secret-key", cfg.Gateway.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Gateway.Timeout)
	assert.Equal(t, "UGX", cfg.Settlement.LocalCurrency)
	assert.Equal(t, "USD", cfg.Settlement.Currency)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "RWF", cfg.Settlement.LocalCurrency)
	assert.Equal(t, int32(0), cfg.Settlement.LocalDecimals)
	assert.Equal(t, "RW", cfg.Settlement.PhoneRegion)
	assert.Equal(t, 30, cfg.Reconciliation.PollingInterval)
	assert.Equal(t, 10, cfg.Reconciliation.ConcurrentWorkers)
	assert.Equal(t, 30, cfg.Distribution.BackfillWindowDays)
	assert.Equal(t, 30*time.Second, cfg.Redis.LockTTL)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("server: [unterminated"))
	assert.Error(t, err)
}
