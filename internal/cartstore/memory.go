// Package cartstore provides cart.Storage implementations: an in-memory
// store for tests and ephemeral carts, and a file store holding a single
// JSON record that survives restarts.
package cartstore

import (
	"sync"

	"github.com/agentstation/storefront/pkg/cart"
)

// Memory is an in-memory cart.Storage. It keeps its own copy of the items
// so later cart mutations cannot reach through to stored state.
type Memory struct {
	mu    sync.Mutex
	items []cart.Item
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Load implements cart.Storage.
func (m *Memory) Load() ([]cart.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyItems(m.items), nil
}

// Save implements cart.Storage.
func (m *Memory) Save(items []cart.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = copyItems(items)
	return nil
}

func copyItems(items []cart.Item) []cart.Item {
	out := make([]cart.Item, len(items))
	copy(out, items)
	return out
}
