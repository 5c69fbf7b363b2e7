package query

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestReadDeduplicatesConcurrentFetches(t *testing.T) {
	c := New(time.Minute)
	ctx := context.Background()

	var calls atomic.Int64
	release := make(chan struct{})
	fetch := func(ctx context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "value", nil
	}

	const readers = 8
	var wg sync.WaitGroup
	results := make([]any, readers)
	errs := make([]error, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.Read(ctx, "products", fetch)
		}(i)
	}
	// Give every reader time to join the in-flight fetch.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected 1 underlying fetch, got %d", got)
	}
	for i := 0; i < readers; i++ {
		if errs[i] != nil {
			t.Fatalf("reader %d: unexpected error: %v", i, errs[i])
		}
		if results[i] != "value" {
			t.Fatalf("reader %d: got %v", i, results[i])
		}
	}
}

func TestReadServesFreshEntryWithoutFetching(t *testing.T) {
	c := New(time.Minute)
	ctx := context.Background()

	var calls int
	fetch := func(ctx context.Context) (any, error) {
		calls++
		return calls, nil
	}

	if _, err := c.Read(ctx, "sales", fetch); err != nil {
		t.Fatalf("first read: %v", err)
	}
	v, err := c.Read(ctx, "sales", fetch)
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected cached result, fetch called %d times", calls)
	}
	if v != 1 {
		t.Fatalf("expected first fetch value, got %v", v)
	}
}

func TestReadRefetchesAfterTTL(t *testing.T) {
	c := New(time.Minute)
	now := time.Now()
	c.SetClock(func() time.Time { return now })
	ctx := context.Background()

	var calls int
	fetch := func(ctx context.Context) (any, error) {
		calls++
		return calls, nil
	}

	if _, err := c.Read(ctx, "batches", fetch); err != nil {
		t.Fatalf("read: %v", err)
	}
	now = now.Add(2 * time.Minute)
	v, err := c.Read(ctx, "batches", fetch)
	if err != nil {
		t.Fatalf("read after ttl: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected refetch after ttl, calls %d", calls)
	}
	if v != 2 {
		t.Fatalf("expected fresh value, got %v", v)
	}
}

func TestFailedFetchDoesNotPoisonEntry(t *testing.T) {
	c := New(time.Minute)
	ctx := context.Background()

	boom := errors.New("upstream down")
	var calls int
	fetch := func(ctx context.Context) (any, error) {
		calls++
		if calls == 1 {
			return nil, boom
		}
		return "recovered", nil
	}

	if _, err := c.Read(ctx, "cashflows", fetch); !errors.Is(err, boom) {
		t.Fatalf("expected fetch error, got %v", err)
	}
	v, err := c.Read(ctx, "cashflows", fetch)
	if err != nil {
		t.Fatalf("retry read: %v", err)
	}
	if v != "recovered" {
		t.Fatalf("expected retry to succeed, got %v", v)
	}
}

func TestFailedFetchKeepsPreviousValue(t *testing.T) {
	c := New(time.Minute)
	ctx := context.Background()

	var calls int
	fetch := func(ctx context.Context) (any, error) {
		calls++
		if calls == 1 {
			return "original", nil
		}
		return nil, errors.New("transient")
	}

	if _, err := c.Read(ctx, "owners", fetch); err != nil {
		t.Fatalf("seed read: %v", err)
	}
	c.Invalidate("owners")
	if _, err := c.Read(ctx, "owners", fetch); err == nil {
		t.Fatal("expected fetch error")
	}
	v, ok := c.Peek("owners")
	if !ok || v != "original" {
		t.Fatalf("expected previous value to survive, got %v ok=%v", v, ok)
	}
}

func TestInvalidateMatchesPrefix(t *testing.T) {
	c := New(time.Minute)
	ctx := context.Background()
	fetch := func(ctx context.Context) (any, error) { return "x", nil }

	for _, key := range []string{"batches", "batches|populate=product", "batches|id=4", "sales"} {
		if _, err := c.Read(ctx, key, fetch); err != nil {
			t.Fatalf("seed %s: %v", key, err)
		}
	}

	c.Invalidate("batches")

	for _, key := range []string{"batches", "batches|populate=product", "batches|id=4"} {
		if !c.IsStale(key) {
			t.Fatalf("expected %s stale after invalidation", key)
		}
	}
	if c.IsStale("sales") {
		t.Fatal("sales should be untouched")
	}
}

func TestInvalidateDoesNotMatchLongerResourceName(t *testing.T) {
	c := New(time.Minute)
	ctx := context.Background()
	fetch := func(ctx context.Context) (any, error) { return "x", nil }

	if _, err := c.Read(ctx, "dashboard|stats", fetch); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// "dash" is not a key prefix in the segment sense.
	c.Invalidate("dash")
	if c.IsStale("dashboard|stats") {
		t.Fatal("partial resource name must not invalidate")
	}
}

func TestSubscribeNotifiesOnStoreAndInvalidate(t *testing.T) {
	c := New(time.Minute)
	ctx := context.Background()

	ch, cancel := c.Subscribe("inventory")
	defer cancel()

	if _, err := c.Read(ctx, "inventory", func(ctx context.Context) (any, error) { return 1, nil }); err != nil {
		t.Fatalf("read: %v", err)
	}
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected notification after store")
	}

	c.Invalidate("inventory")
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected notification after invalidation")
	}
}

func TestSubscribeCancelDetaches(t *testing.T) {
	c := New(time.Minute)

	ch, cancel := c.Subscribe("products")
	cancel()
	c.Invalidate("products")
	select {
	case <-ch:
		t.Fatal("cancelled subscriber must not be notified")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestResetDropsEntries(t *testing.T) {
	c := New(time.Minute)
	ctx := context.Background()

	if _, err := c.Read(ctx, "zakat", func(ctx context.Context) (any, error) { return 1, nil }); err != nil {
		t.Fatalf("read: %v", err)
	}
	c.Reset()
	if _, ok := c.Peek("zakat"); ok {
		t.Fatal("expected no entries after reset")
	}
}
