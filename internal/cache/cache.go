package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"sync"
	"time"
)

// DefaultTTL matches the source system's five-minute result window.
const DefaultTTL = 5 * time.Minute

// Fingerprint canonicalizes a validated input record into a cache key.
// json.Marshal emits map keys in sorted order, so records with the same
// contents fingerprint identically regardless of insertion order.
func Fingerprint(tool string, values map[string]any) string {
	data, _ := json.Marshal(values)
	sum := sha256.Sum256(data)
	return tool + ":" + hex.EncodeToString(sum[:])
}

type entry struct {
	result    map[string]any
	expiresAt time.Time
}

// Cache memoizes tool results for a bounded time window. Reads share a lock;
// expired entries are dropped lazily on access. Writes are idempotent
// overwrites, so concurrent writers for the same key resolve to
// last-write-wins.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (c *Cache) Get(key string) (map[string]any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; another writer may have refreshed it.
		if cur, ok := c.entries[key]; ok && c.now().After(cur.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.result, true
}

func (c *Cache) Set(key string, result map[string]any) {
	c.mu.Lock()
	c.entries[key] = entry{result: result, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

// ClearTool drops every cached result for one tool.
func (c *Cache) ClearTool(tool string) {
	prefix := tool + ":"
	c.mu.Lock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}

// Len reports the number of entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
