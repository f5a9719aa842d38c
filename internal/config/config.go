package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Переменные окружения, переопределяющие секреты из файла
const (
	EnvDBPassword    = "DB_PASSWORD"
	EnvRedisPassword = "REDIS_PASSWORD"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Booking  BookingConfig  `toml:"booking"`
	Kafka    KafkaConfig    `toml:"kafka"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Logs     LogsConfig     `toml:"logs"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate"`
	MigrationsDir   string `toml:"migrations_dir"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Enabled             bool   `toml:"enabled"`
	Addr                string `toml:"addr"`
	Password            string `toml:"password"`
	DB                  int    `toml:"db"`
	OpTimeoutMs         int    `toml:"op_timeout_ms"`
	FallbackCooldownSec int    `toml:"fallback_cooldown_sec"`
}

func (r RedisConfig) OpTimeout() time.Duration {
	return time.Duration(r.OpTimeoutMs) * time.Millisecond
}

func (r RedisConfig) FallbackCooldown() time.Duration {
	return time.Duration(r.FallbackCooldownSec) * time.Second
}

type BookingConfig struct {
	SlotsCacheTTLSec      int    `toml:"slots_cache_ttl_sec"`
	SlotLockTTLSec        int    `toml:"slot_lock_ttl_sec"`
	GranularityMinutes    int    `toml:"granularity_minutes"`
	Timezone              string `toml:"timezone"`
	RefundWindowHours     int    `toml:"refund_window_hours"`
	RefundPercent         int64  `toml:"refund_percent"`
	StoreSweepIntervalSec int    `toml:"store_sweep_interval_sec"`
}

func (b BookingConfig) SlotsCacheTTL() time.Duration {
	return time.Duration(b.SlotsCacheTTLSec) * time.Second
}

func (b BookingConfig) SlotLockTTL() time.Duration {
	return time.Duration(b.SlotLockTTLSec) * time.Second
}

func (b BookingConfig) RefundWindow() time.Duration {
	return time.Duration(b.RefundWindowHours) * time.Hour
}

func (b BookingConfig) StoreSweepInterval() time.Duration {
	return time.Duration(b.StoreSweepIntervalSec) * time.Second
}

type KafkaConfig struct {
	Enabled         bool     `toml:"enabled"`
	Brokers         []string `toml:"brokers"`
	Topic           string   `toml:"topic"`
	WriteTimeoutSec int      `toml:"write_timeout_sec"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Load читает TOML файл, применяет переопределения из окружения и проверяет значения.
// Файл .env рядом с процессом подгружается, если он есть.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to load .env: %w", err)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default значения, которые остаются, если ключа нет в файле
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			MigrationsDir:   "migrations",
		},
		Redis: RedisConfig{
			Addr:                "localhost:6379",
			OpTimeoutMs:         200,
			FallbackCooldownSec: 30,
		},
		Booking: BookingConfig{
			SlotsCacheTTLSec:      300,
			SlotLockTTLSec:        300,
			GranularityMinutes:    30,
			Timezone:              "UTC",
			RefundWindowHours:     4,
			RefundPercent:         80,
			StoreSweepIntervalSec: 60,
		},
		Kafka: KafkaConfig{
			Topic:           "booking-events",
			WriteTimeoutSec: 5,
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "ground_booking_service",
		},
		Logs: LogsConfig{
			Level: "info",
		},
	}
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvDBPassword); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv(EnvRedisPassword); ok {
		c.Redis.Password = v
	}
}

// Validate проверяет диапазоны, ошибки собираются в одно сообщение
func (c *Config) Validate() error {
	var problems []string
	check := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}

	check(c.Server.HTTPPort > 0 && c.Server.HTTPPort < 65536, "server.http_port must be in 1..65535")
	check(c.Database.Host != "", "database.host is required")
	check(c.Database.DBName != "", "database.dbname is required")
	check(c.Database.MaxOpenConns > 0, "database.max_open_conns must be positive")
	check(!c.Database.AutoMigrate || c.Database.MigrationsDir != "",
		"database.migrations_dir is required when auto_migrate is on")

	if c.Redis.Enabled {
		check(c.Redis.Addr != "", "redis.addr is required when redis is enabled")
		check(c.Redis.OpTimeoutMs > 0, "redis.op_timeout_ms must be positive")
	}

	b := c.Booking
	check(b.SlotsCacheTTLSec > 0, "booking.slots_cache_ttl_sec must be positive")
	check(b.SlotLockTTLSec > 0, "booking.slot_lock_ttl_sec must be positive")
	check(b.GranularityMinutes > 0 && 60%b.GranularityMinutes == 0,
		"booking.granularity_minutes must divide 60")
	check(b.RefundPercent >= 0 && b.RefundPercent <= 100, "booking.refund_percent must be in 0..100")
	check(b.RefundWindowHours >= 0, "booking.refund_window_hours must not be negative")
	if _, err := time.LoadLocation(b.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("booking.timezone: %v", err))
	}

	if c.Kafka.Enabled {
		check(len(c.Kafka.Brokers) > 0, "kafka.brokers is required when kafka is enabled")
		check(c.Kafka.Topic != "", "kafka.topic is required when kafka is enabled")
	}

	if c.Metrics.Enabled {
		check(strings.HasPrefix(c.Metrics.Path, "/"), "metrics.path must start with /")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
