package calc

import (
	"container/list"
	"sync"
)

const defaultCompileCacheSize = 256

// lru is a mutex-guarded least-recently-used map.
type lru[K comparable, V any] struct {
	mu     sync.Mutex
	limit  int
	order  *list.List
	items  map[K]*list.Element
	hits   uint64
	misses uint64
}

type lruEntry[K comparable, V any] struct {
	key K
	val V
}

func newLRU[K comparable, V any](limit int) *lru[K, V] {
	return &lru[K, V]{
		limit: max(limit, 0),
		order: list.New(),
		items: make(map[K]*list.Element),
	}
}

func (c *lru[K, V]) get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ele, ok := c.items[key]; ok && c.limit > 0 {
		c.hits++
		c.order.MoveToFront(ele)
		return ele.Value.(*lruEntry[K, V]).val, true
	}
	c.misses++
	var zero V
	return zero, false
}

func (c *lru[K, V]) add(key K, val V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.limit == 0 {
		return
	}
	if ele, ok := c.items[key]; ok {
		ele.Value.(*lruEntry[K, V]).val = val
		c.order.MoveToFront(ele)
		return
	}
	c.items[key] = c.order.PushFront(&lruEntry[K, V]{key: key, val: val})
	c.trim()
}

func (c *lru[K, V]) resize(limit int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.limit = max(limit, 0)
	c.trim()
}

func (c *lru[K, V]) purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	clear(c.items)
	c.hits, c.misses = 0, 0
}

func (c *lru[K, V]) trim() {
	for c.order.Len() > c.limit {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*lruEntry[K, V]).key)
	}
}

// CacheStats describes the compile cache.
type CacheStats struct {
	Entries int
	Limit   int
	Hits    uint64
	Misses  uint64
}

func (c *lru[K, V]) stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{Entries: c.order.Len(), Limit: c.limit, Hits: c.hits, Misses: c.misses}
}

var compileCache = newLRU[string, *Expr](defaultCompileCacheSize)

// SetCompileCacheSize sets the maximum number of compiled statements to
// cache. Set to 0 to disable caching.
func SetCompileCacheSize(maxEntries int) {
	compileCache.resize(maxEntries)
}

// ClearCompileCache drops all cached statements and resets the counters.
func ClearCompileCache() {
	compileCache.purge()
}

// CompileCacheStats reports the compile cache counters.
func CompileCacheStats() CacheStats {
	return compileCache.stats()
}
