// Package query implements the keyed read-through cache the dashboard
// stores share. A key identifies one fetch (resource + serialized
// parameters); concurrent readers of the same key share one in-flight
// fetch, invalidation marks entries stale by prefix, and subscribers
// are notified when an entry changes.
package query

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Fetcher loads the value for a cache key.
type Fetcher func(ctx context.Context) (any, error)

type entry struct {
	value     any
	fetchedAt time.Time
	stale     bool
}

// Cache is the shared read-through cache. Construct one per process at
// application start; tests construct their own so state never leaks
// between cases.
type Cache struct {
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu      sync.Mutex
	entries map[string]*entry
	subs    map[string]map[int64]chan struct{}
	nextSub int64
}

// New constructs a cache whose entries stay fresh for ttl.
func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*entry),
		subs:    make(map[string]map[int64]chan struct{}),
	}
}

// Read returns the cached value when fresh, otherwise runs fetch at
// most once across all concurrent readers of the key. A failed fetch
// is reported to every waiting reader and leaves any previous entry
// untouched, so the next Read retries.
func (c *Cache) Read(ctx context.Context, key string, fetch Fetcher) (any, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && !e.stale && c.now().Sub(e.fetchedAt) < c.ttl {
		value := e.value
		c.mu.Unlock()
		return value, nil
	}
	c.mu.Unlock()

	// The fetch outlives the caller: navigating away never cancels a
	// shared in-flight request, it just leaves the result for the next
	// subscriber.
	resultCh := c.group.DoChan(key, func() (any, error) {
		value, err := fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		c.store(key, value)
		return value, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resultCh:
		return res.Val, res.Err
	}
}

func (c *Cache) store(key string, value any) {
	c.mu.Lock()
	c.entries[key] = &entry{value: value, fetchedAt: c.now()}
	c.notifyLocked(key)
	c.mu.Unlock()
}

// Peek returns the current entry without fetching. Stale entries are
// still returned; ok is false only when the key was never stored.
func (c *Cache) Peek(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// IsStale reports whether the next Read for key would fetch.
func (c *Cache) IsStale(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return true
	}
	return e.stale || c.now().Sub(e.fetchedAt) >= c.ttl
}

// Invalidate marks every entry matching the prefix stale. A prefix
// matches its own key and any key extending it with a parameter
// segment, mirroring the query-key prefix semantics of the source.
func (c *Cache) Invalidate(prefixes ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, prefix := range prefixes {
		for key, e := range c.entries {
			if keyMatches(key, prefix) {
				e.stale = true
			}
		}
		for key := range c.subs {
			if keyMatches(key, prefix) {
				c.notifyLocked(key)
			}
		}
	}
}

// Subscribe registers interest in a key. The returned channel receives
// a signal whenever the entry is stored or invalidated; cancel
// detaches without affecting in-flight fetches.
func (c *Cache) Subscribe(key string) (<-chan struct{}, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextSub
	c.nextSub++
	ch := make(chan struct{}, 1)
	if c.subs[key] == nil {
		c.subs[key] = make(map[int64]chan struct{})
	}
	c.subs[key][id] = ch
	cancel := func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if m, ok := c.subs[key]; ok {
			delete(m, id)
			if len(m) == 0 {
				delete(c.subs, key)
			}
		}
	}
	return ch, cancel
}

func (c *Cache) notifyLocked(key string) {
	for _, ch := range c.subs[key] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Reset drops all entries. Tests call this between cases.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.entries = make(map[string]*entry)
	c.mu.Unlock()
}

// SetClock overrides the time source for tests.
func (c *Cache) SetClock(now func() time.Time) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

func keyMatches(key, prefix string) bool {
	return key == prefix || strings.HasPrefix(key, prefix+keySep)
}
