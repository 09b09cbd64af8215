package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(time.Minute, 10)

	_, ok := cache.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "k", "v"))
	val, ok := cache.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", val)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(time.Minute, 10)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(ctx, "k", "v"))

	now = now.Add(59 * time.Second)
	_, ok := cache.Get(ctx, "k")
	assert.True(t, ok, "entry should live until its ttl")

	now = now.Add(time.Second)
	_, ok = cache.Get(ctx, "k")
	assert.False(t, ok, "entry should expire at its ttl")
	assert.Equal(t, 0, cache.Len())
}

func TestMemoryCache_ZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(0, 10)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(ctx, "k", "v"))
	now = now.Add(1000 * time.Hour)

	_, ok := cache.Get(ctx, "k")
	assert.True(t, ok)
}

func TestMemoryCache_BoundedEntries(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(time.Minute, 2)

	require.NoError(t, cache.Set(ctx, "a", "1"))
	require.NoError(t, cache.Set(ctx, "b", "2"))
	require.NoError(t, cache.Set(ctx, "c", "3"))

	assert.Equal(t, 2, cache.Len())
	val, ok := cache.Get(ctx, "c")
	assert.True(t, ok)
	assert.Equal(t, "3", val)
}

func TestMemoryCache_OverwriteDoesNotEvict(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(time.Minute, 2)

	require.NoError(t, cache.Set(ctx, "a", "1"))
	require.NoError(t, cache.Set(ctx, "b", "2"))
	require.NoError(t, cache.Set(ctx, "a", "3"))

	assert.Equal(t, 2, cache.Len())
	val, _ := cache.Get(ctx, "a")
	assert.Equal(t, "3", val)
	_, ok := cache.Get(ctx, "b")
	assert.True(t, ok)
}
