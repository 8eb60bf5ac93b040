// Package store provides process-wide shared state for components.
//
// A Store is a keyed table of mutable cells with subscriber lists. Cells are
// created lazily on first reference and never deleted; writes that change a
// cell's value (by identity) notify subscribers synchronously, in
// registration order, with no batching or deferral.
//
// The store is the sole integration seam with the external routing layer:
// it publishes the current path under PathKey and components consume it like
// any other shared state.
package store

import "github.com/go-ripple/ripple/pkg/reactive"

// PathKey is the well-known key under which the routing layer publishes
// current-path state.
const PathKey = "app.path"

// Subscriber is notified after a cell's value changes.
type Subscriber func(newValue, oldValue any)

type cell struct {
	value any
	subs  []*subscription
}

type subscription struct {
	fn      Subscriber
	removed bool
}

// Store is an owned table of shared cells. Create one per runtime with
// NewStore; there is no package-level singleton.
//
// The store is not safe for concurrent use. Propagation is synchronous and
// single-threaded by contract.
type Store struct {
	cells map[string]*cell
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{cells: make(map[string]*cell)}
}

// Get returns the cell's current value, creating an empty cell on first
// reference.
func (s *Store) Get(key string) any {
	return s.cellFor(key).value
}

// Set writes the cell, creating it if absent. When the new value differs by
// identity from the current one, every subscriber is invoked synchronously
// in registration order with the new and previous values.
func (s *Store) Set(key string, value any) {
	c := s.cellFor(key)
	old := c.value
	if reactive.Identical(old, value) {
		return
	}
	c.value = value
	// Snapshot so unsubscribes during notification do not skip entries.
	subs := append([]*subscription(nil), c.subs...)
	for _, sub := range subs {
		if !sub.removed {
			sub.fn(value, old)
		}
	}
}

// Has reports whether a cell exists for the key, without creating one.
func (s *Store) Has(key string) bool {
	_, ok := s.cells[key]
	return ok
}

// Subscribe registers a callback for changes to the key and returns an
// unsubscribe function. Unsubscribing twice is a no-op.
func (s *Store) Subscribe(key string, fn Subscriber) func() {
	if fn == nil {
		return func() {}
	}
	c := s.cellFor(key)
	sub := &subscription{fn: fn}
	c.subs = append(c.subs, sub)
	return func() {
		if sub.removed {
			return
		}
		sub.removed = true
		for i, candidate := range c.subs {
			if candidate == sub {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) cellFor(key string) *cell {
	c, ok := s.cells[key]
	if !ok {
		c = &cell{}
		s.cells[key] = c
	}
	return c
}
