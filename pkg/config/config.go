package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server            ServerConfig         `yaml:"server"`
	Database          DatabaseConfig       `yaml:"database"`
	Redis             RedisConfig          `yaml:"redis"`
	Gateway           GatewayConfig        `yaml:"gateway"`
	Catalog           ServiceClientConfig  `yaml:"catalog"`
	Notification      ServiceClientConfig  `yaml:"notification"`
	ExchangeAPIConfig ExchangeAPIConfig    `yaml:"exchange_api_config"`
	Settlement        SettlementConfig     `yaml:"settlement"`
	Reconciliation    ReconciliationConfig `yaml:"reconciliation"`
	Distribution      DistributionConfig   `yaml:"distribution"`
	Kafka             KafkaConfig          `yaml:"kafka"`
	Security          SecurityConfig       `yaml:"security"`
	WebSocket         WebSocketConfig      `yaml:"websocket"`
	JWT               JWTConfig            `yaml:"jwt"`
	Logger            LoggerConfig         `yaml:"logger"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
}

type ExchangeAPIConfig struct {
	BaseURL          string        `yaml:"base_url"`
	Timeout          int           `yaml:"timeout"`
	MaxRetries       int           `yaml:"max_retries"`
	RetryBackoffBase int           `yaml:"retry_backoff_base"`
	APIKey           string        `yaml:"api_key"`
	CacheTTL         time.Duration `yaml:"cache_ttl"`
}

type DatabaseConfig struct {
	Host            string `yaml:"host"`
	Port            string `yaml:"port"`
	User            string `yaml:"user"`
	DBName          string `yaml:"name"`
	Password        string `yaml:"password"`
	SSLMode         string `yaml:"ssl_mode"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime string `yaml:"conn_max_lifetime"`
	AutoMigrate     bool   `yaml:"auto_migrate"`
}

type RedisConfig struct {
	Address  string        `yaml:"address"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	LockTTL  time.Duration `yaml:"lock_ttl"`
}

type ServerConfig struct {
	Host           string   `yaml:"host"`
	Port           string   `yaml:"port"`
	Environment    string   `yaml:"environment"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// GatewayConfig configures the mobile-money payment provider client.
type GatewayConfig struct {
	BaseURL    string        `yaml:"base_url"`
	APIKey     string        `yaml:"api_key"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
	RetryDelay time.Duration `yaml:"retry_delay"`
}

type ServiceClientConfig struct {
	BaseURL    string        `yaml:"base_url"`
	APIKey     string        `yaml:"api_key"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
	RetryDelay time.Duration `yaml:"retry_delay"`
}

type SettlementConfig struct {
	Currency      string `yaml:"currency"`
	LocalCurrency string `yaml:"local_currency"`
	LocalDecimals int32  `yaml:"local_decimals"`
	PlatformOwner string `yaml:"platform_owner"`
	PhoneRegion   string `yaml:"phone_region"`
}

type ReconciliationConfig struct {
	Enabled           bool          `yaml:"enabled"`
	PollingInterval   int           `yaml:"polling_interval"`
	ConcurrentWorkers int           `yaml:"concurrent_workers"`
	BatchSize         int           `yaml:"batch_size"`
	GatewayTimeout    time.Duration `yaml:"gateway_timeout"`
}

type DistributionConfig struct {
	BackfillWindowDays int `yaml:"backfill_window_days"`
	BatchSize          int `yaml:"batch_size"`
}

type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
	GroupID string   `yaml:"group_id"`
}

type SecurityConfig struct {
	APIKey      string `yaml:"api_key"`
	TLSCertPath string `yaml:"tls_cert_path"`
	TLSKeyPath  string `yaml:"tls_key_path"`
}

type WebSocketConfig struct {
	ReadBufferSize  int           `yaml:"read_buffer_size"`
	WriteBufferSize int           `yaml:"write_buffer_size"`
	CheckOrigin     bool          `yaml:"check_origin"`
	PingPeriod      time.Duration `yaml:"ping_period"`
}

type LoggerConfig struct {
	Level      string `yaml:"level"`
	TimeFormat string `yaml:"time_format"`
	Pretty     bool   `yaml:"pretty"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config.yaml"
	}

	configData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(configData)
}

// Parse decodes a YAML document and fills unset values with defaults.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &config); err != nil {
		return nil, err
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Settlement.Currency == "" {
		c.Settlement.Currency = "USD"
	}
	if c.Settlement.LocalCurrency == "" {
		c.Settlement.LocalCurrency = "RWF"
	}
	if c.Settlement.PlatformOwner == "" {
		c.Settlement.PlatformOwner = "platform"
	}
	if c.Settlement.PhoneRegion == "" {
		c.Settlement.PhoneRegion = "RW"
	}
	if c.Redis.LockTTL <= 0 {
		c.Redis.LockTTL = 30 * time.Second
	}
	if c.Gateway.Timeout <= 0 {
		c.Gateway.Timeout = 30 * time.Second
	}
	if c.Gateway.RetryDelay <= 0 {
		c.Gateway.RetryDelay = 500 * time.Millisecond
	}
	if c.Reconciliation.PollingInterval <= 0 {
		c.Reconciliation.PollingInterval = 30
	}
	if c.Reconciliation.ConcurrentWorkers <= 0 {
		c.Reconciliation.ConcurrentWorkers = 10
	}
	if c.Reconciliation.BatchSize <= 0 {
		c.Reconciliation.BatchSize = 100
	}
	if c.Reconciliation.GatewayTimeout <= 0 {
		c.Reconciliation.GatewayTimeout = 20 * time.Second
	}
	if c.Distribution.BackfillWindowDays <= 0 {
		c.Distribution.BackfillWindowDays = 30
	}
	if c.Distribution.BatchSize <= 0 {
		c.Distribution.BatchSize = 200
	}
	if c.ExchangeAPIConfig.CacheTTL <= 0 {
		c.ExchangeAPIConfig.CacheTTL = 10 * time.Minute
	}
	if c.Kafka.Topic == "" {
		c.Kafka.Topic = "bss.booking-events"
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = "bss-notifier"
	}
	if c.JWT.Issuer == "" {
		c.JWT.Issuer = "tucanbit"
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
}
