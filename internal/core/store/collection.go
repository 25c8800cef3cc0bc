// Package store holds the client-side resource state: one store per
// server-managed collection, a hydrator that refreshes all of them, and the
// session that gates hydration on authentication.
//
// Every store follows the same discipline: reads replace the whole
// collection, confirmed creates prepend, updates replace in place by
// identifier, deletes filter by identifier. State only changes after the
// server confirms an operation (optimistic-after-confirm). A failed fetch
// empties the collection rather than keeping possibly-stale entries.
package store

import "sync"

// collection is the mutable slice of state a resource store owns
// exclusively. All access goes through its methods; the mutex serialises
// mutation between concurrently-completing operations (the last completed
// operation wins, there is no request sequencing).
type collection[T any] struct {
	mu      sync.Mutex
	items   []T
	loading bool
	err     error
	ident   func(*T) string
}

func newCollection[T any](ident func(*T) string) *collection[T] {
	return &collection[T]{ident: ident}
}

// Items returns a copy of the current entries.
func (c *collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the current entry count.
func (c *collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Err returns the error recorded by the most recent failed operation, or nil.
func (c *collection[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Loading reports whether a fetch is in flight.
func (c *collection[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *collection[T]) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}

// replaceAll installs a fresh server snapshot and clears any recorded error.
func (c *collection[T]) replaceAll(items []T) {
	c.mu.Lock()
	c.items = items
	c.err = nil
	c.mu.Unlock()
}

// fail empties the collection and records err. Emptying is deliberate:
// after a failed fetch the client must not display entries that may no
// longer exist server-side.
func (c *collection[T]) fail(err error) {
	c.mu.Lock()
	c.items = nil
	c.err = err
	c.mu.Unlock()
}

// prepend inserts a confirmed new entry at the head of the collection.
func (c *collection[T]) prepend(item T) {
	c.mu.Lock()
	c.items = append([]T{item}, c.items...)
	c.mu.Unlock()
}

// replaceByID swaps the entry matching id for item, reporting whether any
// entry matched. Entry count never changes; an unmatched id leaves the
// collection untouched (the entity may simply not be hydrated locally, e.g.
// a mutation issued before any fetch).
func (c *collection[T]) replaceByID(id string, item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	matched := false
	for i := range c.items {
		if c.ident(&c.items[i]) == id {
			c.items[i] = item
			matched = true
		}
	}
	return matched
}

// find returns the entry matching id, if present.
func (c *collection[T]) find(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.ident(&c.items[i]) == id {
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

// removeByID filters out the entry matching id.
func (c *collection[T]) removeByID(id string) {
	c.mu.Lock()
	kept := c.items[:0]
	for i := range c.items {
		if c.ident(&c.items[i]) != id {
			kept = append(kept, c.items[i])
		}
	}
	c.items = kept
	c.mu.Unlock()
}

// reset returns the collection to its empty initial state (logout).
func (c *collection[T]) reset() {
	c.mu.Lock()
	c.items = nil
	c.err = nil
	c.loading = false
	c.mu.Unlock()
}
