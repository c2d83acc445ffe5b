// Package config loads service settings from defaults, environment
// variables and command-line flags, in that order of precedence.
package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Filter backends.
const (
	FilterBackendMemory     = "memory"
	FilterBackendBitmap     = "bitmap"
	FilterBackendRedisBloom = "redisbloom"
)

// Config holds every setting of the service.
type Config struct {
	ServerAddress NetworkAddress `env:"SERVER_ADDRESS"`
	// BaseURL is the public prefix of the default short link domain.
	BaseURL     URLPrefix `env:"BASE_URL"`
	DatabaseDSN string    `env:"DATABASE_DSN"`
	// NodeID distinguishes replicas in generated row ids (0..1023).
	NodeID   int64  `env:"NODE_ID"`
	LogLevel string `env:"LOG_LEVEL"`

	Redis       RedisConfig       `envPrefix:"REDIS_"`
	Filter      FilterConfig      `envPrefix:"FILTER_"`
	Kafka       KafkaConfig       `envPrefix:"KAFKA_"`
	Session     SessionConfig     `envPrefix:"SESSION_"`
	Idempotency IdempotencyConfig `envPrefix:"IDEMPOTENCY_"`
	Lock        LockConfig        `envPrefix:"LOCK_"`
}

// RedisConfig points at the shared cache. An empty Addr selects the
// in-process store.
type RedisConfig struct {
	Addr     string `env:"ADDR"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB"`
	PoolSize int    `env:"POOL_SIZE"`
}

// FilterConfig sizes the existence filters.
type FilterConfig struct {
	Backend           string  `env:"BACKEND"`
	LinkCapacity      uint64  `env:"LINK_CAPACITY"`
	UserCapacity      uint64  `env:"USER_CAPACITY"`
	FalsePositiveRate float64 `env:"FALSE_POSITIVE_RATE"`
	// Preload re-adds stored keys on start.
	Preload bool `env:"PRELOAD"`
}

// KafkaConfig configures the stats topic. No brokers means stats are
// handled in process.
type KafkaConfig struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC"`
	GroupID string   `env:"GROUP_ID"`
}

// SessionConfig holds session lifetimes.
type SessionConfig struct {
	InitialTTL time.Duration `env:"INITIAL_TTL"`
	RefreshTTL time.Duration `env:"REFRESH_TTL"`
}

// IdempotencyConfig holds the safety TTL of message markers.
type IdempotencyConfig struct {
	TTL time.Duration `env:"TTL"`
}

// LockConfig holds the registration lock TTL.
type LockConfig struct {
	TTL time.Duration `env:"TTL"`
}

// NewDefaultConfig returns the settings used when nothing is overridden.
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress: NetworkAddress{Host: "localhost", Port: 8080},
		BaseURL:       URLPrefix("http://localhost:8080"),
		LogLevel:      "info",
		Redis: RedisConfig{
			PoolSize: 10,
		},
		Filter: FilterConfig{
			Backend:           FilterBackendMemory,
			LinkCapacity:      10_000_000,
			UserCapacity:      1_000_000,
			FalsePositiveRate: 0.001,
			Preload:           true,
		},
		Kafka: KafkaConfig{
			Topic:   "short-link-stats",
			GroupID: "short-link-stats-consumer",
		},
		Session: SessionConfig{
			InitialTTL: 30 * time.Minute,
			RefreshTTL: 30 * 24 * time.Hour,
		},
		Idempotency: IdempotencyConfig{
			TTL: 2 * time.Minute,
		},
		Lock: LockConfig{
			TTL: 30 * time.Second,
		},
	}
}

// Load reads the process environment and command-line arguments.
func Load() (*Config, error) {
	return LoadFrom(os.Args[1:], environ())
}

// LoadFrom applies environment then args over the defaults.
func LoadFrom(args []string, environment map[string]string) (*Config, error) {
	cfg := NewDefaultConfig()

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environment}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)
	fs.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	fs.Var(&cfg.BaseURL, "b", "public base URL of the default short link domain")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.Redis.Addr, "r", cfg.Redis.Addr, "redis address, empty for in-process store")
	fs.StringVar(&cfg.Filter.Backend, "f", cfg.Filter.Backend, "existence filter backend: memory, bitmap or redisbloom")
	brokers := fs.String("k", strings.Join(cfg.Kafka.Brokers, ","), "comma separated kafka brokers")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}
	cfg.Kafka.Brokers = splitList(*brokers)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	switch c.Filter.Backend {
	case FilterBackendMemory, FilterBackendBitmap, FilterBackendRedisBloom:
	default:
		return fmt.Errorf("unknown filter backend %q", c.Filter.Backend)
	}
	if c.Filter.Backend != FilterBackendMemory && c.Redis.Addr == "" {
		return fmt.Errorf("filter backend %q needs a redis address", c.Filter.Backend)
	}
	if c.NodeID < 0 || c.NodeID > 1023 {
		return fmt.Errorf("node id %d out of range 0..1023", c.NodeID)
	}
	if c.BaseURL.Host() == "" {
		return fmt.Errorf("base URL %q has no host", c.BaseURL)
	}
	return nil
}

// Domain is the short link domain served by GET /{code}.
func (c *Config) Domain() string {
	return c.BaseURL.Host()
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func environ() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok {
			vars[key] = value
		}
	}
	return vars
}
