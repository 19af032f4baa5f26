// Package catalog defines the storefront product catalog: the product and
// category data model, the Source interface implemented by catalog backends,
// and pure filter/sort operations over in-memory product lists.
package catalog

import (
	"strconv"

	"github.com/agentstation/storefront/pkg/errors"
)

// Product represents a single catalog product. Products are decoded from
// catalog source responses and treated as read-only afterwards.
type Product struct {
	ID          int      `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Slug        string   `json:"slug,omitempty" yaml:"slug,omitempty"`
	Price       float64  `json:"price" yaml:"price"`
	Description string   `json:"description" yaml:"description"`
	Category    Category `json:"category" yaml:"category"`
	Images      []string `json:"images" yaml:"images"`
}

// Category represents a product category.
type Category struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
	Slug  string `json:"slug,omitempty" yaml:"slug,omitempty"`
}

// Image returns the product's primary image, or empty when none exist.
func (p Product) Image() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Validate checks the product against the catalog data model.
func (p Product) Validate() error {
	if p.ID <= 0 {
		return errors.NewValidationError("id", p.ID, "must be a positive integer")
	}
	if p.Title == "" {
		return errors.NewValidationError("title", p.Title, "cannot be empty")
	}
	if p.Price < 0 {
		return errors.NewValidationError("price", p.Price, "cannot be negative")
	}
	if len(p.Images) == 0 {
		return errors.NewValidationError("images", p.Images, "must contain at least one image")
	}
	return nil
}

// Key returns the product id as a string, for error messages and logging.
func (p Product) Key() string {
	return strconv.Itoa(p.ID)
}
