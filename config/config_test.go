package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "LOG_LEVEL", "REDIS_ADDR", "CACHE_TTL", "RATE_LIMIT_CAPACITY", "RATE_LIMIT_WINDOW", "STRICT_LIMITS", "LIMITS_FILE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 5, cfg.RateLimitCapacity)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.False(t, cfg.StrictLimits)
	require.NotNil(t, cfg.Limits)
	assert.Equal(t, 8.0, cfg.Limits.Loan.RatePercent.Default)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("RATE_LIMIT_CAPACITY", "20")
	t.Setenv("RATE_LIMIT_WINDOW", "10s")
	t.Setenv("STRICT_LIMITS", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, 20, cfg.RateLimitCapacity)
	assert.Equal(t, 10*time.Second, cfg.RateLimitWindow)
	assert.True(t, cfg.StrictLimits)
}

func TestLoad_InvalidValuesFallBackOrFail(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("CACHE_TTL", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)

	t.Setenv("PORT", "70000")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_MissingLimitsFile(t *testing.T) {
	t.Setenv("LIMITS_FILE", "/nonexistent/limits.yaml")
	_, err := Load()
	assert.Error(t, err)
}
