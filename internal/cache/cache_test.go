package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// fakeClock is a settable time source for TTL tests.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func TestGetReturnsStoredValue(t *testing.T) {
	clock := newFakeClock()
	c := New[string](clock.Now)

	c.Set("k", "v", time.Minute)
	got, ok := c.Get("k")
	if !ok || got != "v" {
		t.Fatalf("Get = %q, %v; want %q, true", got, ok, "v")
	}
}

func TestGetMissesUnknownKey(t *testing.T) {
	c := New[int](nil)
	if _, ok := c.Get("nope"); ok {
		t.Fatal("expected miss for unknown key")
	}
}

func TestExpiredEntryIsEvictedLazily(t *testing.T) {
	clock := newFakeClock()
	c := New[string](clock.Now)

	c.Set("k", "v", time.Minute)
	clock.Advance(time.Minute) // exactly at expiry counts as expired

	if _, ok := c.Get("k"); ok {
		t.Fatal("expected expired entry to be absent")
	}
	if c.Len() != 0 {
		t.Fatalf("Len = %d after lazy eviction; want 0", c.Len())
	}
}

func TestSetOverwritesAndRefreshesExpiry(t *testing.T) {
	clock := newFakeClock()
	c := New[string](clock.Now)

	c.Set("k", "old", time.Minute)
	clock.Advance(30 * time.Second)
	c.Set("k", "new", time.Minute)
	clock.Advance(45 * time.Second)

	got, ok := c.Get("k")
	if !ok || got != "new" {
		t.Fatalf("Get = %q, %v; want %q, true", got, ok, "new")
	}
}

func TestGetOrFillCachesSuccess(t *testing.T) {
	clock := newFakeClock()
	c := New[int](clock.Now)

	calls := 0
	fill := func(context.Context) (int, error) {
		calls++
		return 42, nil
	}

	for i := 0; i < 3; i++ {
		got, err := c.GetOrFill(context.Background(), "k", time.Minute, fill)
		if err != nil || got != 42 {
			t.Fatalf("GetOrFill = %d, %v; want 42, nil", got, err)
		}
	}
	if calls != 1 {
		t.Fatalf("fill invoked %d times; want 1", calls)
	}

	clock.Advance(2 * time.Minute)
	if _, err := c.GetOrFill(context.Background(), "k", time.Minute, fill); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Fatalf("fill invoked %d times after expiry; want 2", calls)
	}
}

func TestGetOrFillDoesNotCacheErrors(t *testing.T) {
	c := New[int](nil)
	wantErr := errors.New("boom")

	calls := 0
	_, err := c.GetOrFill(context.Background(), "k", time.Minute, func(context.Context) (int, error) {
		calls++
		return 0, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v; want %v", err, wantErr)
	}

	_, err = c.GetOrFill(context.Background(), "k", time.Minute, func(context.Context) (int, error) {
		calls++
		return 7, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Fatalf("fill invoked %d times; want 2 (errors must not cache)", calls)
	}
}

func TestGetOrFillDeduplicatesConcurrentMisses(t *testing.T) {
	c := New[int](nil)

	var fills atomic.Int32
	release := make(chan struct{})
	fill := func(context.Context) (int, error) {
		fills.Add(1)
		<-release
		return 99, nil
	}

	const callers = 8
	var wg sync.WaitGroup
	results := make([]int, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.GetOrFill(context.Background(), "k", time.Minute, fill)
			if err != nil {
				t.Error(err)
			}
			results[i] = v
		}(i)
	}

	// Let the callers pile up on the in-flight fill, then release it.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := fills.Load(); got != 1 {
		t.Fatalf("fill invoked %d times for concurrent misses; want 1", got)
	}
	for i, v := range results {
		if v != 99 {
			t.Fatalf("caller %d got %d; want 99", i, v)
		}
	}
}

func TestEvictAndClear(t *testing.T) {
	c := New[string](nil)
	c.Set("a", "1", time.Minute)
	c.Set("b", "2", time.Minute)

	c.Evict("a")
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected 'a' to be evicted")
	}

	c.Clear()
	if _, ok := c.Get("b"); ok {
		t.Fatal("expected 'b' to be cleared")
	}
}
