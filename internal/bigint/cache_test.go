package bigint

import (
	"testing"

	"github.com/copyl-sys/ternary/internal/kernel"
)

func TestMulCacheEviction(t *testing.T) {
	c := NewMulCache(2)
	c.store("a", []byte{1})
	c.store("b", []byte{2})
	c.store("c", []byte{3}) // evicts "a", the least recently used

	if _, ok := c.lookup("a"); ok {
		t.Fatal("expected \"a\" to have been evicted")
	}
	if _, ok := c.lookup("b"); !ok {
		t.Fatal("expected \"b\" to still be cached")
	}
	if _, ok := c.lookup("c"); !ok {
		t.Fatal("expected \"c\" to be cached")
	}
}

func TestMulCacheLookupPromotes(t *testing.T) {
	c := NewMulCache(2)
	c.store("a", []byte{1})
	c.store("b", []byte{2})
	c.lookup("a")              // promote "a" to most-recently-used
	c.store("c", []byte{3})    // should now evict "b", not "a"

	if _, ok := c.lookup("a"); !ok {
		t.Fatal("expected \"a\" to survive eviction after being promoted")
	}
	if _, ok := c.lookup("b"); ok {
		t.Fatal("expected \"b\" to have been evicted")
	}
}

func TestMulCacheDisabled(t *testing.T) {
	c := NewMulCache(0)
	c.store("a", []byte{1})
	if _, ok := c.lookup("a"); ok {
		t.Fatal("a zero-capacity cache must never hit")
	}
}

func TestCacheKeyCommutative(t *testing.T) {
	cfg := kernel.DefaultConfig()
	a := mustParse(t, cfg, "12", Ternary)
	b := mustParse(t, cfg, "200", Ternary)
	if cacheKey(a, b) != cacheKey(b, a) {
		t.Fatal("cacheKey must collapse commuted operand order to the same key")
	}
}
