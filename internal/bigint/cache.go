package bigint

import (
	"container/list"
	"sync"

	"golang.org/x/sync/singleflight"
)

// MulCache is the multiplication kernel's bounded, shared result cache,
// keyed by the canonical base-3 text form of the operand pair (commutative
// collapse: (A,B) and (B,A) key the same slot). It serializes writers with
// an RWMutex (lookups probe the map under the shared read lock, but a hit
// takes the exclusive lock briefly to promote its entry) and additionally
// de-duplicates concurrent misses on the same key with a singleflight
// group, so N goroutines racing to compute the same uncached product
// compute it once.
type MulCache struct {
	mu       sync.RWMutex
	capacity int
	ll       *list.List // front = most recently used
	items    map[string]*list.Element
	group    singleflight.Group
}

// cacheEntry holds a cached product's unsigned magnitude. The sign isn't
// stored: it's wholly determined by the (sign_a, sign_b) pair baked into
// the cache key, so whoever looks a key up already knows it.
type cacheEntry struct {
	key    string
	digits []byte
}

// NewMulCache creates a cache holding at most capacity entries. A
// non-positive capacity disables caching (lookup always misses, store is
// a no-op) — useful for tests that want to observe the uncached path.
func NewMulCache(capacity int) *MulCache {
	return &MulCache{
		capacity: capacity,
		ll:       list.New(),
		items:    make(map[string]*list.Element),
	}
}

// cacheKey builds the commutativity-collapsed key for a product A*B from
// each operand's canonical ternary text form.
func cacheKey(a, b *BigInt) string {
	ta := canonicalText(a)
	tb := canonicalText(b)
	if ta <= tb {
		return ta + "|" + tb
	}
	return tb + "|" + ta
}

// canonicalText renders b's canonical base-3 text form, used as a cache
// key component. Sign is implicit in the text: "0" is the only zero
// rendering, a leading '-' marks negative, anything else is positive.
func canonicalText(b *BigInt) string {
	text, _ := ToText(b, Ternary) // canonical BigInts never fail to render
	return text
}

// lookup returns the raw cached entry (no allocation) for key, promoting
// it to most-recently-used under a read-then-upgrade pattern.
func (c *MulCache) lookup(key string) (cacheEntry, bool) {
	if c.capacity <= 0 {
		return cacheEntry{}, false
	}
	c.mu.RLock()
	el, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return cacheEntry{}, false
	}
	c.mu.Lock()
	c.ll.MoveToFront(el)
	c.mu.Unlock()
	return el.Value.(cacheEntry), true
}

// store inserts or refreshes key's entry, evicting the least-recently-used
// entry first when at capacity.
func (c *MulCache) store(key string, digits []byte) {
	if c.capacity <= 0 {
		return
	}
	cp := append([]byte(nil), digits...)
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		el.Value = cacheEntry{key: key, digits: cp}
		c.ll.MoveToFront(el)
		return
	}
	el := c.ll.PushFront(cacheEntry{key: key, digits: cp})
	c.items[key] = el
	if c.ll.Len() > c.capacity {
		oldest := c.ll.Back()
		if oldest != nil {
			c.ll.Remove(oldest)
			delete(c.items, oldest.Value.(cacheEntry).key)
		}
	}
}
