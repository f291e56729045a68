package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/seeker/backend/internal/domain"
)

// DefaultSweepInterval is how often expired entries are purged
const DefaultSweepInterval = 10 * time.Minute

// cacheItem holds a JSON-encoded value and its expiration
type cacheItem struct {
	Value      json.RawMessage
	Expiration time.Time
}

// MemoryCache is a thread-safe in-memory cache with TTL support.
// Values are stored JSON-encoded and returned as json.RawMessage, so callers
// never share memory with what they stored.
type MemoryCache struct {
	data  map[string]cacheItem
	mutex sync.RWMutex
	stop  chan struct{}
	once  sync.Once
}

// NewMemoryCache creates a new in-memory cache swept every DefaultSweepInterval
func NewMemoryCache() *MemoryCache {
	return NewMemoryCacheWithSweep(DefaultSweepInterval)
}

// NewMemoryCacheWithSweep creates a new in-memory cache with a custom sweep interval
func NewMemoryCacheWithSweep(interval time.Duration) *MemoryCache {
	cache := &MemoryCache{
		data: make(map[string]cacheItem),
		stop: make(chan struct{}),
	}

	go cache.cleanupExpired(interval)

	return cache
}

// Get retrieves a value from the cache as json.RawMessage
func (c *MemoryCache) Get(ctx context.Context, key string) (interface{}, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists || time.Now().After(item.Expiration) {
		return nil, domain.ErrCacheMiss
	}

	out := make(json.RawMessage, len(item.Value))
	copy(out, item.Value)
	return out, nil
}

// Set stores a value in the cache with TTL
func (c *MemoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = cacheItem{
		Value:      jsonData,
		Expiration: time.Now().Add(ttl),
	}

	return nil
}

// cleanupExpired removes expired entries until Close is called
func (c *MemoryCache) cleanupExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.purge(time.Now())
		}
	}
}

// purge deletes every entry expired at now
func (c *MemoryCache) purge(now time.Time) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for key, item := range c.data {
		if now.After(item.Expiration) {
			delete(c.data, key)
		}
	}
}

// Close stops the background sweep. The cache stays usable.
func (c *MemoryCache) Close() {
	c.once.Do(func() { close(c.stop) })
}

// Size returns the current number of items in the cache, expired or not
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}
