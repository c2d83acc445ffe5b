package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(nil, map[string]string{})

	require.NoError(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)
	assert.Equal(t, "localhost:8080", cfg.Domain())
}

func TestLoadFrom_Precedence(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		environment map[string]string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "environment overrides defaults",
			environment: map[string]string{
				"SERVER_ADDRESS":      "0.0.0.0:9000",
				"BASE_URL":            "https://short.ly/",
				"REDIS_ADDR":          "redis:6379",
				"FILTER_BACKEND":      "bitmap",
				"KAFKA_BROKERS":       "k1:9092,k2:9092",
				"SESSION_INITIAL_TTL": "10m",
				"LOCK_TTL":            "5s",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, NetworkAddress{Host: "0.0.0.0", Port: 9000}, cfg.ServerAddress)
				assert.Equal(t, URLPrefix("https://short.ly"), cfg.BaseURL)
				assert.Equal(t, "short.ly", cfg.Domain())
				assert.Equal(t, "redis:6379", cfg.Redis.Addr)
				assert.Equal(t, FilterBackendBitmap, cfg.Filter.Backend)
				assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
				assert.Equal(t, 10*time.Minute, cfg.Session.InitialTTL)
				assert.Equal(t, 30*24*time.Hour, cfg.Session.RefreshTTL)
				assert.Equal(t, 5*time.Second, cfg.Lock.TTL)
			},
		},
		{
			name: "flags override environment",
			args: []string{"-a", "127.0.0.1:7000", "-r", "cache:6379", "-k", "broker:9092"},
			environment: map[string]string{
				"SERVER_ADDRESS": "0.0.0.0:9000",
				"REDIS_ADDR":     "redis:6379",
				"KAFKA_BROKERS":  "k1:9092",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "127.0.0.1:7000", cfg.ServerAddress.String())
				assert.Equal(t, "cache:6379", cfg.Redis.Addr)
				assert.Equal(t, []string{"broker:9092"}, cfg.Kafka.Brokers)
			},
		},
		{
			name:        "unset flags keep environment",
			args:        []string{"-d", "postgres://localhost/shortlink"},
			environment: map[string]string{"REDIS_ADDR": "redis:6379"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "postgres://localhost/shortlink", cfg.DatabaseDSN)
				assert.Equal(t, "redis:6379", cfg.Redis.Addr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFrom(tt.args, tt.environment)

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		environment map[string]string
	}{
		{name: "unknown backend", environment: map[string]string{"FILTER_BACKEND": "cuckoo"}},
		{name: "redis backend without redis", args: []string{"-f", "redisbloom"}},
		{name: "node id out of range", environment: map[string]string{"NODE_ID": "1024"}},
		{name: "bad address", args: []string{"-a", "localhost"}},
		{name: "bad base url", environment: map[string]string{"BASE_URL": "short.ly"}},
		{name: "bad duration", environment: map[string]string{"LOCK_TTL": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(tt.args, tt.environment)

			assert.Error(t, err)
		})
	}
}

func TestNetworkAddress_Set(t *testing.T) {
	tests := []struct {
		value   string
		want    NetworkAddress
		wantErr bool
	}{
		{value: "localhost:8080", want: NetworkAddress{Host: "localhost", Port: 8080}},
		{value: ":8080", want: NetworkAddress{Host: "", Port: 8080}},
		{value: "[::1]:8080", want: NetworkAddress{Host: "::1", Port: 8080}},
		{value: "localhost", wantErr: true},
		{value: "localhost:http", wantErr: true},
		{value: "localhost:70000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			var addr NetworkAddress
			err := addr.Set(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestURLPrefix(t *testing.T) {
	var prefix URLPrefix
	require.NoError(t, prefix.Set("https://short.ly/"))

	assert.Equal(t, "https://short.ly", prefix.String())
	assert.Equal(t, "short.ly", prefix.Host())
	assert.Equal(t, "https://short.ly/abc1234", prefix.Join("abc1234"))

	assert.Error(t, prefix.Set("ftp://short.ly"))
}
