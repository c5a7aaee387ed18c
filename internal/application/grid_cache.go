package application

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

// gridCache stores recently built grid views to avoid repeated projection
// for identical requests while the store remains unchanged. Keys embed the
// store version, so any mutation makes previous entries unreachable; the
// TTL and entry cap keep those orphans from accumulating.
type gridCache struct {
	mu         sync.RWMutex
	now        func() time.Time
	ttl        time.Duration
	maxEntries int
	entries    map[string]gridCacheEntry
}

type gridCacheEntry struct {
	view      GridView
	expiresAt time.Time
}

func newGridCache(ttl time.Duration, maxEntries int, now func() time.Time) *gridCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if maxEntries <= 0 {
		maxEntries = 128
	}
	if now == nil {
		now = time.Now
	}
	return &gridCache{
		now:        now,
		ttl:        ttl,
		maxEntries: maxEntries,
		entries:    make(map[string]gridCacheEntry),
	}
}

func (c *gridCache) Get(key string) (GridView, bool) {
	if c == nil {
		return GridView{}, false
	}
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return GridView{}, false
	}
	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return GridView{}, false
	}
	return entry.view, true
}

func (c *gridCache) Store(key string, view GridView) {
	if c == nil {
		return
	}
	expiry := c.now().Add(c.ttl)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cleanupLocked()
	if len(c.entries) >= c.maxEntries {
		c.evictOneLocked()
	}
	c.entries[key] = gridCacheEntry{view: view, expiresAt: expiry}
}

func (c *gridCache) cleanupLocked() {
	now := c.now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
}

func (c *gridCache) evictOneLocked() {
	for key := range c.entries {
		delete(c.entries, key)
		return
	}
}

func buildGridCacheKey(version uint64, params GridParams) string {
	builder := strings.Builder{}
	builder.WriteString(strconv.FormatUint(version, 10))
	builder.WriteString("|")
	builder.WriteString(string(params.View))
	builder.WriteString("|")
	builder.WriteString(params.Anchor.UTC().Format("2006-01-02"))
	builder.WriteString("|")
	builder.WriteString(strings.ToLower(params.Filter.Query))
	builder.WriteString("|")
	builder.WriteString(params.Filter.Type)
	builder.WriteString("|")
	builder.WriteString(params.Filter.Department)
	return builder.String()
}
