// Package cart implements the storefront shopping cart: an ordered set of
// line items keyed by product id with a derived total, change hooks, and a
// pluggable Storage port that mirrors every mutation to durable storage.
package cart

import (
	"github.com/agentstation/storefront/pkg/catalog"
)

// Item is one cart line item. Title, price, and image are snapshots taken
// when the product was first added and are never refreshed from the catalog,
// so an item may go stale relative to current catalog data. Quantity is
// always at least 1; an item that would reach quantity 0 is removed instead.
type Item struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

// Subtotal returns price multiplied by quantity for this line item.
func (i Item) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// newItem snapshots a product into a line item.
func newItem(product catalog.Product, quantity int) Item {
	return Item{
		ID:       product.ID,
		Title:    product.Title,
		Price:    product.Price,
		Quantity: quantity,
		Image:    product.Image(),
	}
}
