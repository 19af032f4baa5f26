package cart

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/storefront/pkg/catalog"
	"github.com/agentstation/storefront/pkg/errors"
	"github.com/agentstation/storefront/pkg/logging"
)

// Cart is the single source of truth for what is in the shopping cart.
// It is safe for concurrent reads from many observers and serializes all
// writes. Every mutation is mirrored to the configured Storage after the
// in-memory change; a failed mirror write is logged and swallowed because
// the in-memory state is the authoritative result.
type Cart struct {
	mu       sync.RWMutex
	items    []Item
	storage  Storage
	logger   *zerolog.Logger
	onChange []ChangeHook
}

// Option configures a Cart.
type Option func(*Cart)

// WithLogger sets the logger used for persistence warnings.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Cart) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a cart backed by the given storage and rehydrates any
// previously persisted state. A nil storage keeps the cart memory-only.
// A failed load starts the cart empty rather than failing construction.
func New(storage Storage, opts ...Option) *Cart {
	if storage == nil {
		storage = NopStorage{}
	}

	c := &Cart{
		storage: storage,
		logger:  logging.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	items, err := storage.Load()
	if err != nil {
		c.logger.Warn().Err(err).Msg("failed to rehydrate cart, starting empty")
		return c
	}
	c.items = sanitize(items)

	return c
}

// sanitize enforces the cart invariants on rehydrated state: items with a
// quantity below 1 are dropped and duplicate ids are merged into the first
// occurrence, which keeps its snapshot.
func sanitize(items []Item) []Item {
	out := make([]Item, 0, len(items))
	index := make(map[int]int, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			continue
		}
		if at, ok := index[item.ID]; ok {
			out[at].Quantity += item.Quantity
			continue
		}
		index[item.ID] = len(out)
		out = append(out, item)
	}
	return out
}

// Add puts quantity units of a product in the cart. If a line item with the
// same id already exists its quantity is incremented and its original
// title/price/image snapshot is preserved; otherwise a new line item is
// appended. Quantity must be a positive integer.
func (c *Cart) Add(product catalog.Product, quantity int) error {
	if quantity < 1 {
		return errors.NewValidationError("quantity", quantity, "must be at least 1")
	}

	c.mu.Lock()
	if at, ok := c.find(product.ID); ok {
		c.items[at].Quantity += quantity
	} else {
		c.items = append(c.items, newItem(product, quantity))
	}
	snapshot := c.persistLocked()
	c.mu.Unlock()

	c.notify(snapshot)
	return nil
}

// Remove deletes the line item with the given id. Removing an id that is not
// in the cart is a no-op, not an error.
func (c *Cart) Remove(id int) {
	c.mu.Lock()
	at, ok := c.find(id)
	if !ok {
		c.mu.Unlock()
		return
	}
	c.items = append(c.items[:at], c.items[at+1:]...)
	snapshot := c.persistLocked()
	c.mu.Unlock()

	c.notify(snapshot)
}

// UpdateQuantity replaces the quantity of an existing line item. A quantity
// below 1 is rejected as a no-op: quantity changes never remove items, only
// Remove does. An id not in the cart is also a no-op.
func (c *Cart) UpdateQuantity(id, quantity int) {
	if quantity < 1 {
		return
	}

	c.mu.Lock()
	at, ok := c.find(id)
	if !ok {
		c.mu.Unlock()
		return
	}
	c.items[at].Quantity = quantity
	snapshot := c.persistLocked()
	c.mu.Unlock()

	c.notify(snapshot)
}

// Clear empties the cart unconditionally and persists the empty state.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.items = nil
	snapshot := c.persistLocked()
	c.mu.Unlock()

	c.notify(snapshot)
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

// Total returns the cart total, recomputed from the line items on every
// call. It is never cached, so it cannot drift from the items.
func (c *Cart) Total() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var total float64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

// Len returns the number of line items in the cart.
func (c *Cart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Quantity returns the total number of units across all line items.
func (c *Cart) Quantity() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var n int
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

// Item returns the line item for a product id.
func (c *Cart) Item(id int) (Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if at, ok := c.find(id); ok {
		return c.items[at], true
	}
	return Item{}, false
}

// find returns the index of the line item with the given id.
// Callers must hold the lock.
func (c *Cart) find(id int) (int, bool) {
	for i, item := range c.items {
		if item.ID == id {
			return i, true
		}
	}
	return 0, false
}

// snapshotLocked copies the current items. Callers must hold the lock.
func (c *Cart) snapshotLocked() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// persistLocked mirrors the current state to storage and returns a snapshot
// for hook delivery. The write happens after the in-memory mutation and
// before the lock is released, so persisted state never runs ahead of
// memory. Storage failures are logged, never propagated: the in-memory
// mutation stands. Callers must hold the write lock.
func (c *Cart) persistLocked() []Item {
	snapshot := c.snapshotLocked()
	if err := c.storage.Save(snapshot); err != nil {
		c.logger.Warn().Err(err).Int("items", len(snapshot)).Msg("failed to persist cart")
	}
	return snapshot
}
