// Package config provides centralized configuration loaded from environment
// variables. Shared by cmd/api and cmd/pokedex.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Storage drivers for the collection stores.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// Remote catalog defaults.
const (
	DefaultCatalogURL   = "https://pokeapi.co/api/v2"
	DefaultEvolutionURL = "https://pokeapi.co/api/v2/evolution-chain"
)

type Config struct {
	// Remote catalog
	CatalogBaseURL    string
	EvolutionBaseURL  string
	CatalogRatePerMin int
	CatalogTimeout    time.Duration
	PageLimit         int

	// Collection storage
	StorageDriver string
	SQLitePath    string

	// Postgres
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	CacheEnabled   bool
	MetricsEnabled bool
}

// Load reads configuration from environment variables with sensible defaults.
// It fails when the selected storage driver is missing its connection setting.
func Load() (*Config, error) {
	cfg := &Config{
		CatalogBaseURL:    envOr("POKEAPI_BASE_URL", DefaultCatalogURL),
		EvolutionBaseURL:  envOr("POKEAPI_EVOLUTION_BASE_URL", DefaultEvolutionURL),
		CatalogRatePerMin: envInt("POKEAPI_REQUESTS_PER_MINUTE", 600),
		CatalogTimeout:    time.Duration(envInt("POKEAPI_TIMEOUT_SECONDS", 30)) * time.Second,
		PageLimit:         envInt("PAGE_LIMIT", 20),

		StorageDriver: strings.ToLower(envOr("STORAGE_DRIVER", DriverSQLite)),
		SQLitePath:    envOr("SQLITE_PATH", defaultSQLitePath()),

		DatabaseURL:    envOr("DATABASE_URL", ""),
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 1),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 5),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		RedisAddr:     envOr("REDIS_ADDR", ""),
		RedisPassword: envOr("REDIS_PASSWORD", ""),
		RedisDB:       envInt("REDIS_DB", 0),

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		CacheEnabled:   envBool("CACHE_ENABLED", true),
		MetricsEnabled: envBool("METRICS_ENABLED", true),
	}

	if cfg.PageLimit <= 0 {
		return nil, fmt.Errorf("PAGE_LIMIT must be positive, got %d", cfg.PageLimit)
	}

	switch cfg.StorageDriver {
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("SQLITE_PATH must be set for the sqlite driver")
		}
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL must be set for the postgres driver")
		}
	case DriverRedis:
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR must be set for the redis driver")
		}
	case DriverMemory:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	return cfg, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func defaultSQLitePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "pokedex", "collections.db")
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
