// Package cache is the console's client-side result cache.
//
// Entries are keyed by logical resource name ("products", "product:<id>",
// "images:<id>", "brand:<id>"). The cache is an explicit object handed to the
// controllers and handlers that read or invalidate it, so the invalidation
// dependencies between screens stay visible.
package cache

import (
	"strconv"
	"sync"
)

// Logical key for the product listing; per-resource keys come from the
// helpers below.
const KeyProducts = "products"

// KeyProduct returns the cache key for a single product.
func KeyProduct(id int64) string { return "product:" + strconv.FormatInt(id, 10) }

// KeyImages returns the cache key for a product's image list.
func KeyImages(id int64) string { return "images:" + strconv.FormatInt(id, 10) }

// KeyBrand returns the cache key for a single brand.
func KeyBrand(id int64) string { return "brand:" + strconv.FormatInt(id, 10) }

type entry struct {
	value      any
	appliedSeq uint64
}

// Cache holds, per key, the result of the most recently issued request that
// has completed. Each outgoing fetch reserves a sequence number with Begin;
// a completion whose sequence is older than the last applied one is
// discarded, so a slow stale response can never overwrite a fresher result.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	nextSeq map[string]uint64
	gen     map[string]uint64
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		nextSeq: make(map[string]uint64),
		gen:     make(map[string]uint64),
	}
}

// Begin reserves the sequence number for a fetch that is about to go out for
// key. The caller hands the same number back to Complete.
func (c *Cache) Begin(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextSeq[key]++
	return c.nextSeq[key]
}

// Complete stores the result of the fetch tagged with seq. It reports whether
// the value was applied; a false return means a fresher completion already
// landed and this one was dropped.
func (c *Cache) Complete(key string, seq uint64, value any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok && seq <= e.appliedSeq {
		return false
	}
	c.entries[key] = entry{value: value, appliedSeq: seq}
	return true
}

// Get returns the cached value for key, if any.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Invalidate marks the given keys stale: the entries are dropped and each
// key's generation is bumped, which tells dependent views to refetch on next
// access.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
		c.gen[key]++
	}
}

// Generation returns the invalidation generation of key. A view that recorded
// the generation at fill time refetches when the current value differs.
func (c *Cache) Generation(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen[key]
}
