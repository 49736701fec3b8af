package icalrecur

import (
	"crypto/sha256"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// CacheConfig holds configuration for a RecurrenceCache.
type CacheConfig struct {
	TTL             time.Duration
	MaxEntries      int
	CleanupInterval time.Duration
}

// DefaultCacheConfig caches results for 15 minutes, up to 1000 entries.
var DefaultCacheConfig = CacheConfig{
	TTL:             15 * time.Minute,
	MaxEntries:      1000,
	CleanupInterval: 5 * time.Minute,
}

type cacheEntry struct {
	result     interface{}
	expiresAt  time.Time
	accessedAt time.Time
	traceID    string
}

// RecurrenceCache caches expansion/range-query results keyed by a
// sha256 digest of the query parameters, with a background cleanup
// goroutine. Each entry is tagged with a UUID trace id so a hit or
// miss can be correlated across log lines.
type RecurrenceCache struct {
	entries         map[string]*cacheEntry
	mutex           sync.RWMutex
	ttl             time.Duration
	maxEntries      int
	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	logger          *slog.Logger
}

// NewRecurrenceCache starts a cache (and its cleanup goroutine) using
// the given configuration. Pass a nil logger to use slog's default.
func NewRecurrenceCache(config CacheConfig, logger *slog.Logger) *RecurrenceCache {
	if logger == nil {
		logger = slog.Default()
	}
	c := &RecurrenceCache{
		entries:         make(map[string]*cacheEntry),
		ttl:             config.TTL,
		maxEntries:      config.MaxEntries,
		cleanupInterval: config.CleanupInterval,
		stopCleanup:     make(chan struct{}),
		logger:          logger,
	}
	go c.cleanupLoop()
	return c
}

func cacheKey(operation string, info RecurrenceInfo, rangeStart, rangeEnd time.Time) string {
	h := sha256.New()
	fmt.Fprint(h, operation, info.RRULE, info.EXRULE, rangeStart.Format(time.RFC3339Nano), rangeEnd.Format(time.RFC3339Nano))
	for _, d := range info.RDATE {
		fmt.Fprint(h, d.ToTime().Format(time.RFC3339Nano))
	}
	for _, d := range info.EXDATE {
		fmt.Fprint(h, d.ToTime().Format(time.RFC3339Nano))
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Get retrieves a cached result, if present and unexpired.
func (c *RecurrenceCache) Get(operation string, info RecurrenceInfo, rangeStart, rangeEnd time.Time) (interface{}, bool) {
	key := cacheKey(operation, info, rangeStart, rangeEnd)

	c.mutex.RLock()
	entry, ok := c.entries[key]
	c.mutex.RUnlock()
	if !ok {
		c.logger.Debug("cache miss", slog.String("key", key))
		return nil, false
	}

	if time.Now().After(entry.expiresAt) {
		c.mutex.Lock()
		delete(c.entries, key)
		c.mutex.Unlock()
		c.logger.Debug("cache entry expired", slog.String("key", key), slog.String("trace_id", entry.traceID))
		return nil, false
	}

	c.mutex.Lock()
	entry.accessedAt = time.Now()
	c.mutex.Unlock()
	c.logger.Debug("cache hit", slog.String("key", key), slog.String("trace_id", entry.traceID))
	return entry.result, true
}

// Set stores a result, tagging it with a fresh trace id.
func (c *RecurrenceCache) Set(operation string, info RecurrenceInfo, rangeStart, rangeEnd time.Time, result interface{}) {
	key := cacheKey(operation, info, rangeStart, rangeEnd)
	now := time.Now()
	traceID := uuid.NewString()

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries[key] = &cacheEntry{result: result, expiresAt: now.Add(c.ttl), accessedAt: now, traceID: traceID}
	c.logger.Debug("cache store", slog.String("key", key), slog.String("trace_id", traceID))

	if len(c.entries) > c.maxEntries {
		c.evictLocked()
	}
}

// evictLocked drops expired entries, then the least recently accessed
// ones until the cache is back under maxEntries. Caller holds mutex.
func (c *RecurrenceCache) evictLocked() {
	now := time.Now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
	if len(c.entries) <= c.maxEntries {
		return
	}

	type aged struct {
		key        string
		accessedAt time.Time
	}
	ranked := make([]aged, 0, len(c.entries))
	for key, entry := range c.entries {
		ranked = append(ranked, aged{key, entry.accessedAt})
	}
	for i := 0; i < len(ranked)-1; i++ {
		for j := i + 1; j < len(ranked); j++ {
			if ranked[i].accessedAt.After(ranked[j].accessedAt) {
				ranked[i], ranked[j] = ranked[j], ranked[i]
			}
		}
	}

	toRemove := len(c.entries) - c.maxEntries
	for i := 0; i < toRemove && i < len(ranked); i++ {
		delete(c.entries, ranked[i].key)
	}
}

func (c *RecurrenceCache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.mutex.Lock()
			c.evictLocked()
			c.mutex.Unlock()
		case <-c.stopCleanup:
			return
		}
	}
}

// Close stops the cleanup goroutine and clears the cache.
func (c *RecurrenceCache) Close() {
	close(c.stopCleanup)
	c.mutex.Lock()
	c.entries = make(map[string]*cacheEntry)
	c.mutex.Unlock()
}

// CacheStats reports cache occupancy.
type CacheStats struct {
	TotalEntries   int
	ExpiredEntries int
	ActiveEntries  int
}

// Stats returns current cache occupancy.
func (c *RecurrenceCache) Stats() CacheStats {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	now := time.Now()
	expired := 0
	for _, entry := range c.entries {
		if now.After(entry.expiresAt) {
			expired++
		}
	}
	total := len(c.entries)
	return CacheStats{TotalEntries: total, ExpiredEntries: expired, ActiveEntries: total - expired}
}
