package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const sample = `
[server]
http_port = 8090

[database]
host = "db"
port = 5433
user = "booking"
password = "from-file"
dbname = "grounds"

[redis]
enabled = true
addr = "redis:6379"
op_timeout_ms = 150

[booking]
slots_cache_ttl_sec = 120
slot_lock_ttl_sec = 45
timezone = "Asia/Kolkata"

[kafka]
enabled = true
brokers = ["kafka-1:9092", "kafka-2:9092"]
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout, "default kept")
	assert.Equal(t, "host=db port=5433 user=booking password=from-file dbname=grounds sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, 150*time.Millisecond, cfg.Redis.OpTimeout())
	assert.Equal(t, 2*time.Minute, cfg.Booking.SlotsCacheTTL())
	assert.Equal(t, 45*time.Second, cfg.Booking.SlotLockTTL())
	assert.Equal(t, 4*time.Hour, cfg.Booking.RefundWindow())
	assert.Equal(t, 30, cfg.Booking.GranularityMinutes)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "booking-events", cfg.Kafka.Topic)
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv(EnvDBPassword, "from-env")
	t.Setenv(EnvRedisPassword, "redis-secret")

	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "redis-secret", cfg.Redis.Password)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"port", func(c *Config) { c.Server.HTTPPort = 0 }},
		{"granularity does not divide hour", func(c *Config) { c.Booking.GranularityMinutes = 25 }},
		{"refund percent", func(c *Config) { c.Booking.RefundPercent = 120 }},
		{"timezone", func(c *Config) { c.Booking.Timezone = "Mars/Olympus" }},
		{"lock ttl", func(c *Config) { c.Booking.SlotLockTTLSec = 0 }},
		{"kafka without brokers", func(c *Config) { c.Kafka.Enabled = true }},
		{"redis without timeout", func(c *Config) {
			c.Redis.Enabled = true
			c.Redis.OpTimeoutMs = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Database.DBName = "grounds"
			tt.mutate(cfg)

			err := cfg.Validate()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	t.Run("defaults with dbname are valid", func(t *testing.T) {
		cfg := Default()
		cfg.Database.DBName = "grounds"
		assert.NoError(t, cfg.Validate())
	})
}

func TestDefault_Timings(t *testing.T) {
	cfg := Default()
	assert.Equal(t, domain.DefaultSlotLockTTL, cfg.Booking.SlotLockTTL())
	assert.Equal(t, domain.DefaultSlotsCacheTTL, cfg.Booking.SlotsCacheTTL())

	shipped, err := Load(filepath.Join("..", "..", "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSlotLockTTL, shipped.Booking.SlotLockTTL())
}
