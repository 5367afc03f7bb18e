// file: internal/cache/cache_test.go
// version: 2.0.0
// guid: b2c3d4e5-f6a7-8b9c-0d1e-2f3a4b5c6d7e

package cache

import (
	"testing"
	"time"
)

type pairKey struct{ a, b string }

func TestGetSet(t *testing.T) {
	c := New[pairKey, float64](time.Minute, 0)
	c.Set(pairKey{"abc", "abd"}, 2)
	v, ok := c.Get(pairKey{"abc", "abd"})
	if !ok || v != 2 {
		t.Fatalf("expected 2, got %v ok=%v", v, ok)
	}
	if _, ok := c.Get(pairKey{"abd", "abc"}); ok {
		t.Fatal("expected miss for swapped key")
	}
}

func TestExpiry(t *testing.T) {
	c := New[string, int](time.Minute, 0)
	now := time.Now()
	c.now = func() time.Time { return now }
	c.Set("k", 42)

	c.now = func() time.Time { return now.Add(2 * time.Minute) }
	if _, ok := c.Get("k"); ok {
		t.Fatal("expected expired entry")
	}
}

func TestBoundedEviction(t *testing.T) {
	c := New[string, int](time.Minute, 2)
	now := time.Now()
	c.now = func() time.Time { return now }
	c.SetWithTTL("short", 1, time.Second)
	c.SetWithTTL("long", 2, time.Hour)
	c.Set("new", 3)

	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
	if _, ok := c.Get("short"); ok {
		t.Fatal("expected entry closest to expiry to be evicted")
	}
	if v, ok := c.Get("new"); !ok || v != 3 {
		t.Fatal("expected new entry to be stored")
	}

	// overwriting an existing key never evicts
	c.Set("new", 4)
	if _, ok := c.Get("long"); !ok {
		t.Fatal("expected long to survive an overwrite")
	}
}

func TestInvalidate(t *testing.T) {
	c := New[string, string](time.Minute, 0)
	c.Set("a", "1")
	c.Set("b", "2")
	c.Invalidate("a")
	_, ok := c.Get("a")
	if ok {
		t.Fatal("expected a to be invalidated")
	}
	v, ok := c.Get("b")
	if !ok || v != "2" {
		t.Fatal("expected b to remain")
	}
}

func TestInvalidateAll(t *testing.T) {
	c := New[string, int](time.Minute, 0)
	c.Set("a", 1)
	c.Set("b", 2)
	c.InvalidateAll()
	_, ok := c.Get("a")
	if ok {
		t.Fatal("expected all invalidated")
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty cache, got %d", c.Len())
	}
}
