package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string
	APIKey      string // API key webhook callers must present

	// Acquisition endpoints
	WikiAPIURL   string
	PricesAPIURL string
	UserAgent    string

	// Drop table cache tuning
	DropTableCacheSize int
	DropTableCacheTTL  time.Duration
	CacheSweepInterval time.Duration

	// Price cache tuning
	PriceCacheTTL time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
		Environment:  getEnv("ENVIRONMENT", "dev"),
		Version:      getEnv("VERSION", "dev"),
		APIKey:       getEnv("API_KEY", ""),
		WikiAPIURL:   getEnv("WIKI_API_URL", DefaultWikiAPIURL),
		PricesAPIURL: getEnv("PRICES_API_URL", DefaultPricesAPIURL),
		UserAgent:    getEnv("USER_AGENT", DefaultUserAgent),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	cfg.DropTableCacheSize, err = getEnvInt("DROP_TABLE_CACHE_SIZE", DefaultDropTableCacheSize)
	if err != nil {
		return nil, err
	}

	cfg.DropTableCacheTTL, err = getEnvDuration("DROP_TABLE_CACHE_TTL", DefaultDropTableCacheTTL)
	if err != nil {
		return nil, err
	}

	cfg.CacheSweepInterval, err = getEnvDuration("CACHE_SWEEP_INTERVAL", DefaultCacheSweepInterval)
	if err != nil {
		return nil, err
	}

	cfg.PriceCacheTTL, err = getEnvDuration("PRICE_CACHE_TTL", DefaultPriceCacheTTL)
	if err != nil {
		return nil, err
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if cfg.DropTableCacheSize <= 0 {
		return nil, fmt.Errorf("DROP_TABLE_CACHE_SIZE must be positive, got %d", cfg.DropTableCacheSize)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

// getEnvDuration retrieves a duration environment variable or returns a default value
func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}
