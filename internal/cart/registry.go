package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Registry hands out per-session cart stores keyed by an opaque cart id.
// Each store has a single logical writer (its session's buyer).
type Registry struct {
	mu       sync.Mutex
	carts    map[string]*Store
	newStore func(id string) *Store
}

// NewRegistry builds a registry. newStore constructs a fresh cart for an
// unseen id; pass nil for plain in-memory carts.
func NewRegistry(newStore func(id string) *Store) *Registry {
	if newStore == nil {
		newStore = func(string) *Store { return NewStore(nil) }
	}
	return &Registry{carts: map[string]*Store{}, newStore: newStore}
}

// Get returns the cart for id, creating it if needed. An empty id gets a
// fresh id assigned.
func (r *Registry) Get(id string) (string, *Store) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id == "" {
		id = uuid.NewString()
	}
	s, ok := r.carts[id]
	if !ok {
		s = r.newStore(id)
		r.carts[id] = s
	}
	return id, s
}
