package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"
)

// State is the lifecycle position of one cache entry.
type State int

const (
	// Empty means the key has never been loaded
	Empty State = iota
	// Loading means the first fetch for the key is in flight
	Loading
	// Fresh means the stored value reflects the last known backend state
	Fresh
	// Stale means the value is readable but must be refetched before it
	// can be served as fresh again. The key stays Stale while a refetch
	// runs.
	Stale
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Fresh:
		return "fresh"
	case Stale:
		return "stale"
	default:
		return "empty"
	}
}

type entry struct {
	state State
	value any
	gen   uint64 // bumped on every invalidation of this entry
}

// Cache holds the most recently fetched value per key. It is a
// disposable projection of backend state: created empty per session and
// purged on logout. Invalidation marks entries stale synchronously;
// stale values stay readable until replaced (stale-while-revalidate).
type Cache struct {
	mu      sync.Mutex
	entries map[Key]*entry
	gen     uint64 // monotonic source for entry generations
	group   singleflight.Group
	logger  *slog.Logger
}

// New creates an empty cache.
func New(logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{entries: make(map[Key]*entry), logger: logger}
}

// Read returns the stored value and its state without fetching.
// A Loading entry still returns the previous value, if any.
func (c *Cache) Read(key Key) (any, State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, Empty
	}
	return e.value, e.state
}

// Write stores a value and marks the key fresh.
func (c *Cache) Write(key Key, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &entry{state: Fresh, value: value}
}

// bump advances the generation counter. Caller holds mu.
func (c *Cache) bump() uint64 {
	c.gen++
	return c.gen
}

// GetOrLoad returns the fresh value for key, fetching it when the key
// is empty or stale. Concurrent callers for the same key are coalesced
// so at most one fetch is in flight per key; late callers wait for the
// pending result instead of issuing a duplicate request. A Stale entry
// keeps its state while the refetch runs, so a caller joining an
// in-flight load can never mask an invalidation that already landed.
func (c *Cache) GetOrLoad(ctx context.Context, key Key, fetch func(context.Context) (any, error)) (any, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok && e.state == Fresh {
		v := e.value
		c.mu.Unlock()
		return v, nil
	}
	if !ok {
		e = &entry{gen: c.bump()}
		c.entries[key] = e
	}
	if e.state == Empty {
		e.state = Loading
	}
	gen := e.gen
	c.mu.Unlock()

	v, err, _ := c.group.Do(key.String(), func() (any, error) {
		value, err := fetch(ctx)

		c.mu.Lock()
		defer c.mu.Unlock()
		cur, ok := c.entries[key]
		if !ok {
			// Purged mid-flight; drop the result.
			return value, err
		}
		if err != nil {
			if cur.value != nil {
				cur.state = Stale
			} else {
				delete(c.entries, key)
			}
			return nil, err
		}
		cur.value = value
		// An invalidation that landed after this fetch started bumped
		// the generation; its staleness wins and the next read
		// refetches. Only an undisturbed fetch may mark the key fresh.
		if cur.gen == gen {
			cur.state = Fresh
		} else {
			cur.state = Stale
		}
		return value, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Invalidate marks every entry of kind whose scope matches the selector
// stale. An empty selector matches every entry of the kind.
func (c *Cache) Invalidate(kind Kind, sel Scope) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for k, e := range c.entries {
		if k.Kind == kind && sel.Matches(k.Scope) {
			e.state = Stale
			e.gen = c.bump()
			n++
		}
	}
	if n > 0 {
		c.logger.Debug("cache invalidated", "kind", kind, "entries", n)
	}
}

// InvalidateTree marks every entry of any kind whose scope sits at or
// below the selector stale. Used after a cascade delete: removing a
// unit stales its section, lesson, and question collections in one
// pass without knowing their ids.
func (c *Cache) InvalidateTree(sel Scope) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for k, e := range c.entries {
		if sel.Matches(k.Scope) && k.Scope != (Scope{}) {
			e.state = Stale
			e.gen = c.bump()
			n++
		}
	}
	if n > 0 {
		c.logger.Debug("cache subtree invalidated", "entries", n)
	}
}

// Purge drops every entry. Called on logout and forced re-auth.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Key]*entry)
	c.logger.Debug("cache purged")
}

// Load fetches a typed collection through the cache.
func Load[T any](ctx context.Context, c *Cache, key Key, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	v, err := c.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("cache: %s holds %T", key, v)
	}
	return t, nil
}
