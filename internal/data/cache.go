package data

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"sync"
	"time"

	"stock-screener/internal/model"
)

// CacheEntry represents one cached ticker snapshot.
type CacheEntry struct {
	Snapshot  *model.StockSnapshot
	ExpiresAt time.Time
}

// SnapshotCache provides in-memory caching for fetched ticker snapshots.
//
// The screener fetches the same ticker's data at most once per run, so
// this cache is off by default to match that model. It exists for local
// development, where repeated runs against the same universe would
// otherwise hammer the provider. It is automatically disabled when
// API_ENV=production.
type SnapshotCache struct {
	mu    sync.RWMutex
	store map[string]*CacheEntry
	ttl   time.Duration
}

var globalCache *SnapshotCache
var cacheOnce sync.Once

// GetCache returns the global cache instance if caching is enabled via
// ENABLE_YAHOO_CACHE=true. Returns nil when caching is disabled.
func GetCache() *SnapshotCache {
	if os.Getenv("ENABLE_YAHOO_CACHE") != "true" {
		return nil
	}
	if os.Getenv("API_ENV") == "production" {
		return nil
	}

	cacheOnce.Do(func() {
		ttl := 1 * time.Hour
		if ttlStr := os.Getenv("YAHOO_CACHE_TTL"); ttlStr != "" {
			if parsed, err := time.ParseDuration(ttlStr); err == nil {
				ttl = parsed
			}
		}

		globalCache = &SnapshotCache{
			store: make(map[string]*CacheEntry),
			ttl:   ttl,
		}

		go globalCache.cleanup()
	})

	return globalCache
}

// Get retrieves a cached snapshot if available and not expired.
func (c *SnapshotCache) Get(key string) (*model.StockSnapshot, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[key]
	if !exists {
		return nil, false
	}
	if time.Now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Snapshot, true
}

// Set stores a snapshot in the cache.
func (c *SnapshotCache) Set(key string, snap *model.StockSnapshot) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = &CacheEntry{
		Snapshot:  snap,
		ExpiresAt: time.Now().Add(c.ttl),
	}
}

// Clear removes all entries from the cache.
func (c *SnapshotCache) Clear() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*CacheEntry)
}

// cleanup periodically removes expired entries.
func (c *SnapshotCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for key, entry := range c.store {
			if now.After(entry.ExpiresAt) {
				delete(c.store, key)
			}
		}
		c.mu.Unlock()
	}
}

func snapshotCacheKey(ticker string) string {
	hash := sha256.Sum256([]byte("snapshot:" + ticker))
	return hex.EncodeToString(hash[:])
}
