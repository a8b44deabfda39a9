// Package config loads wareql settings from a YAML file with WAREQL_*
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/zoobzio/wareql"
	"github.com/zoobzio/wareql/internal/logging"
	"github.com/zoobzio/wareql/warehouse"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no config file is named and it exists.
const DefaultPath = "wareql.yaml"

// PathEnv names a config file to load instead of DefaultPath.
const PathEnv = "WAREQL_CONFIG"

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config is the CLI configuration.
type Config struct {
	// Dialect renders queries for display; run uses the warehouse driver's dialect.
	Dialect   string          `yaml:"dialect" env:"WAREQL_DIALECT"`
	Warehouse WarehouseConfig `yaml:"warehouse"`
	Cache     CacheConfig     `yaml:"cache"`
	Log       LogConfig       `yaml:"log"`
}

// WarehouseConfig selects the warehouse connection.
type WarehouseConfig struct {
	Driver       string        `yaml:"driver" env:"WAREQL_DRIVER"`
	DSN          string        `yaml:"dsn" env:"WAREQL_DSN"`
	Timeout      time.Duration `yaml:"timeout" env:"WAREQL_TIMEOUT"`
	MaxOpenConns int           `yaml:"max_open_conns" env:"WAREQL_MAX_OPEN_CONNS"`
}

// CacheConfig selects the result cache.
type CacheConfig struct {
	Backend string        `yaml:"backend" env:"WAREQL_CACHE"`
	TTL     time.Duration `yaml:"ttl" env:"WAREQL_CACHE_TTL"`
	Redis   RedisConfig   `yaml:"redis"`
}

// RedisConfig holds the Redis cache connection.
type RedisConfig struct {
	Addr     string `yaml:"addr" env:"WAREQL_REDIS_ADDR"`
	Password string `yaml:"password" env:"WAREQL_REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"WAREQL_REDIS_DB"`
	Prefix   string `yaml:"prefix" env:"WAREQL_REDIS_PREFIX"`
}

// LogConfig controls logger output.
type LogConfig struct {
	Level  string `yaml:"level" env:"WAREQL_LOG_LEVEL"`
	Pretty bool   `yaml:"pretty" env:"WAREQL_LOG_PRETTY"`
}

// Default returns the built-in configuration: BigQuery rendering, an
// in-memory DuckDB warehouse and no cache.
func Default() *Config {
	return &Config{
		Dialect: "bigquery",
		Warehouse: WarehouseConfig{
			Driver:  "duckdb",
			Timeout: 5 * time.Minute,
		},
		Cache: CacheConfig{
			Backend: CacheNone,
			Redis:   RedisConfig{Addr: "localhost:6379"},
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
	}
}

// Load builds the configuration from defaults, the config file and the
// environment, in that order. An empty path falls back to $WAREQL_CONFIG,
// then to DefaultPath if it exists.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		if path = os.Getenv(PathEnv); path != "" {
			explicit = true
		} else {
			path = DefaultPath
		}
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// defaults only
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := LoadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration and normalizes names.
func (c *Config) Validate() error {
	dialect, err := wareql.CanonicalDialect(c.Dialect)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	c.Dialect = dialect

	if _, err := warehouse.DialectFor(c.Warehouse.Driver); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Warehouse.Timeout < 0 {
		return fmt.Errorf("invalid config: warehouse timeout cannot be negative")
	}
	if c.Warehouse.MaxOpenConns < 0 {
		return fmt.Errorf("invalid config: max_open_conns cannot be negative")
	}

	c.Cache.Backend = strings.ToLower(strings.TrimSpace(c.Cache.Backend))
	switch c.Cache.Backend {
	case "", CacheNone:
		c.Cache.Backend = CacheNone
	case CacheMemory:
	case CacheRedis:
		if c.Cache.Redis.Addr == "" {
			return fmt.Errorf("invalid config: redis cache requires an address")
		}
	default:
		return fmt.Errorf("invalid config: unknown cache backend %q (want none, memory or redis)", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("invalid config: cache ttl cannot be negative")
	}
	return nil
}

// WarehouseOptions returns the warehouse connection settings.
func (c *Config) WarehouseOptions() warehouse.Config {
	return warehouse.Config{
		Driver:       c.Warehouse.Driver,
		DSN:          c.Warehouse.DSN,
		Timeout:      c.Warehouse.Timeout,
		MaxOpenConns: c.Warehouse.MaxOpenConns,
	}
}

// Logging returns the logger settings. Output is left to the caller.
func (c *Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Log.Level
	cfg.Pretty = c.Log.Pretty
	return cfg
}
