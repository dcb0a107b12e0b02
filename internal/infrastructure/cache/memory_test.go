package cache

import (
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestStore(t *testing.T) (*MemoryStore, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := NewMemoryStore(time.Hour)
	store.now = clock.Now
	t.Cleanup(store.Close)
	return store, clock
}

func TestMemoryStoreExpiry(t *testing.T) {
	store, clock := newTestStore(t)

	store.Set("a", "1", time.Minute)
	store.Set("forever", "2", 0)

	if v, ok := store.Get("a"); !ok || v != "1" {
		t.Fatalf("Get(a)=%q,%v", v, ok)
	}

	clock.Advance(2 * time.Minute)
	if _, ok := store.Get("a"); ok {
		t.Fatal("expired key still readable")
	}
	if _, ok := store.Get("forever"); !ok {
		t.Fatal("key without ttl expired")
	}

	if removed := store.Sweep(); removed != 1 {
		t.Fatalf("Sweep removed %d, want 1", removed)
	}
	if store.Len() != 1 {
		t.Fatalf("Len=%d, want 1", store.Len())
	}
}

func TestMemoryStoreSetRefreshesTTL(t *testing.T) {
	store, clock := newTestStore(t)

	store.Set("a", "1", time.Minute)
	clock.Advance(50 * time.Second)
	store.Set("a", "2", time.Minute)
	clock.Advance(50 * time.Second)

	if v, ok := store.Get("a"); !ok || v != "2" {
		t.Fatalf("Get(a)=%q,%v after refresh", v, ok)
	}
}

func TestMemoryStoreDeleteAndClose(t *testing.T) {
	store, _ := newTestStore(t)
	store.Set("a", "1", time.Minute)
	store.Delete("a")
	if _, ok := store.Get("a"); ok {
		t.Fatal("deleted key readable")
	}
	store.Close()
	store.Close()
}
