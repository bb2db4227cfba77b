package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported values for STORE_DRIVER.
const (
	DriverPostgrest = "postgrest"
	DriverPostgres  = "postgres"
	DriverSQLite    = "sqlite"
)

const (
	defaultPort     = "8080"
	defaultCacheTTL = 5 * time.Minute
	defaultSchema   = "public"
	defaultSQLite   = "certificates"
)

// Config is the runtime configuration, read once from the environment.
type Config struct {
	Port        string
	StoreDriver string

	SupabaseURL        string
	SupabaseServiceKey string
	PostgrestURL       string

	DatabaseURL string
	// DBName is the PostgREST schema, the Postgres schema holding the
	// tables, or the sqlite file stem, depending on StoreDriver.
	DBName string

	RedisAddr string
	CacheTTL  time.Duration

	LogLevel string
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables and validates it.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", defaultPort),
		StoreDriver:        strings.ToLower(getEnv("STORE_DRIVER", DriverPostgrest)),
		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_KEY"),
		PostgrestURL:       os.Getenv("POSTGREST_URL"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		DBName:             os.Getenv("DB_NAME"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		CacheTTL:           defaultCacheTTL,
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}

	if raw := os.Getenv("CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid CACHE_TTL %q: %w", raw, err)
		}
		cfg.CacheTTL = ttl
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected store driver has what it needs.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverPostgrest:
		if c.SupabaseURL == "" && c.PostgrestURL == "" {
			return errors.New("SUPABASE_URL or POSTGREST_URL must be set for the postgrest driver")
		}
		if c.SupabaseURL != "" && c.SupabaseServiceKey == "" {
			return errors.New("SUPABASE_SERVICE_KEY must be set when SUPABASE_URL is set")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL must be set for the postgres driver")
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	return nil
}

// Schema returns the PostgREST schema to query.
func (c *Config) Schema() string {
	if c.DBName == "" {
		return defaultSchema
	}
	return c.DBName
}

// SQLitePath returns the sqlite database file, DATABASE_URL winning over DB_NAME.
func (c *Config) SQLitePath() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.DBName != "" {
		return c.DBName + ".db"
	}
	return defaultSQLite + ".db"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
