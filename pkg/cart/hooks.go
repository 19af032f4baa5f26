package cart

// ChangeHook is called after every successful cart mutation with a snapshot
// of the new line items. Hooks run outside the cart's lock; the snapshot is
// the hook's to keep.
type ChangeHook func(items []Item)

// OnChange registers a callback invoked after every mutation. This is the
// explicit observer surface for UI layers; they never get write access to
// the underlying collection.
func (c *Cart) OnChange(fn ChangeHook) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = append(c.onChange, fn)
}

// notify invokes registered hooks with a snapshot. Must be called without
// holding the cart lock.
func (c *Cart) notify(items []Item) {
	c.mu.RLock()
	hooks := make([]ChangeHook, len(c.onChange))
	copy(hooks, c.onChange)
	c.mu.RUnlock()

	for _, hook := range hooks {
		hook(items)
	}
}
