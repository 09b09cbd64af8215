// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port              int
	LogLevel          string
	LogPretty         bool
	RedisAddr         string // empty selects the in-memory cache
	CacheTTL          time.Duration
	CacheMaxEntries   int
	RateLimitCapacity int
	RateLimitWindow   time.Duration
	StrictLimits      bool // reject inputs outside the control limits
	LimitsFile        string
	Limits            *Limits
}

// Load reads configuration from environment variables, after loading a
// .env file if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnvAsInt("PORT", 8080),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogPretty:         getEnvAsBool("LOG_PRETTY", true),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		CacheTTL:          getEnvAsDuration("CACHE_TTL", 10*time.Minute),
		CacheMaxEntries:   getEnvAsInt("CACHE_MAX_ENTRIES", 1024),
		RateLimitCapacity: getEnvAsInt("RATE_LIMIT_CAPACITY", 5),
		RateLimitWindow:   getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		StrictLimits:      getEnvAsBool("STRICT_LIMITS", false),
		LimitsFile:        getEnv("LIMITS_FILE", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	limits, err := LoadLimits(cfg.LimitsFile)
	if err != nil {
		return nil, err
	}
	cfg.Limits = limits

	return cfg, nil
}

// Validate checks the scalar settings.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.RateLimitCapacity <= 0 {
		return fmt.Errorf("RATE_LIMIT_CAPACITY must be positive, got %d", c.RateLimitCapacity)
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.RateLimitWindow)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("CACHE_TTL must not be negative, got %s", c.CacheTTL)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
