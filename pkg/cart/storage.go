package cart

// Storage is the durable persistence port for cart state. The cart writes
// through it after every mutation and reads from it once at startup.
//
// Implementations must treat Load of missing state as an empty cart, not an
// error. Save replaces the whole record (last write wins); there is no
// cross-process coordination.
type Storage interface {
	// Load returns the persisted line items in their stored order.
	Load() ([]Item, error)

	// Save replaces the persisted record with the given line items.
	Save(items []Item) error
}

// NopStorage is a Storage that keeps nothing. Useful for carts that should
// live only in memory.
type NopStorage struct{}

// Load implements Storage.
func (NopStorage) Load() ([]Item, error) { return nil, nil }

// Save implements Storage.
func (NopStorage) Save([]Item) error { return nil }
