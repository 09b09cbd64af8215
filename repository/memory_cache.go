package repository

import (
	"context"
	"sync"
	"time"
)

const defaultMemoryCacheEntries = 1024

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCache is an in-process CacheRepository with per-entry expiry and
// a bounded number of entries.
type MemoryCache struct {
	mu         sync.Mutex
	data       map[string]memoryEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// NewMemoryCache creates a cache whose entries live for ttl. A zero ttl
// keeps entries until they are evicted for space.
func NewMemoryCache(ttl time.Duration, maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = defaultMemoryCacheEntries
	}
	return &MemoryCache{
		data:       make(map[string]memoryEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.data[key]
	if !ok {
		return "", false
	}
	if m.expired(entry) {
		delete(m.data, key)
		return "", false
	}
	return entry.value, true
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists && len(m.data) >= m.maxEntries {
		m.evict()
	}

	entry := memoryEntry{value: value}
	if m.ttl > 0 {
		entry.expiresAt = m.now().Add(m.ttl)
	}
	m.data[key] = entry
	return nil
}

// Len reports the number of stored entries, expired ones included.
func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

func (m *MemoryCache) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt)
}

// evict drops expired entries, or one arbitrary entry when none expired.
// Callers hold m.mu.
func (m *MemoryCache) evict() {
	removed := false
	for key, entry := range m.data {
		if m.expired(entry) {
			delete(m.data, key)
			removed = true
		}
	}
	if removed {
		return
	}
	for key := range m.data {
		delete(m.data, key)
		return
	}
}
