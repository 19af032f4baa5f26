// Package files provides a local catalog source backed by a YAML file.
// It serves fixture or offline catalogs through the same Source interface
// as the remote API, with pagination applied in memory.
package files

import (
	"context"
	"os"
	"strconv"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/storefront/pkg/catalog"
	"github.com/agentstation/storefront/pkg/errors"
)

// document is the on-disk catalog shape.
type document struct {
	Products   []catalog.Product  `yaml:"products"`
	Categories []catalog.Category `yaml:"categories"`
}

// Catalog is a catalog.Source reading products and categories from one YAML
// file. The file is parsed once on first use and held in memory.
type Catalog struct {
	path string

	once    sync.Once
	loadErr error
	doc     document
}

// NewCatalog creates a files catalog for the given path. The file is not
// read until the first query.
func NewCatalog(path string) *Catalog {
	return &Catalog{path: path}
}

// Load parses the catalog file eagerly. Calling Load is optional; queries
// trigger it on first use.
func (c *Catalog) Load() error {
	c.once.Do(func() {
		data, err := os.ReadFile(c.path)
		if err != nil {
			c.loadErr = errors.WrapIO("read", c.path, err)
			return
		}
		if err := yaml.Unmarshal(data, &c.doc); err != nil {
			c.loadErr = errors.WrapParse("yaml", c.path, err)
			return
		}
		for _, p := range c.doc.Products {
			if err := p.Validate(); err != nil {
				c.loadErr = errors.WrapResource("load", "product", p.Key(), err)
				return
			}
		}
	})
	return c.loadErr
}

// Products returns one page of products, filtered by category when the
// query asks for one.
func (c *Catalog) Products(_ context.Context, query catalog.ProductQuery) ([]catalog.Product, error) {
	if err := c.Load(); err != nil {
		return nil, err
	}
	query = query.Normalize()

	matched := c.doc.Products
	if query.CategoryID != 0 {
		matched = catalog.FilterAndSort(matched, catalog.Filters{CategoryID: query.CategoryID})
	}

	if query.Offset >= len(matched) {
		return []catalog.Product{}, nil
	}
	end := query.Offset + query.Limit
	if end > len(matched) {
		end = len(matched)
	}
	page := make([]catalog.Product, end-query.Offset)
	copy(page, matched[query.Offset:end])
	return page, nil
}

// Product returns a single product by id.
func (c *Catalog) Product(_ context.Context, id int) (catalog.Product, error) {
	if err := c.Load(); err != nil {
		return catalog.Product{}, err
	}
	for _, p := range c.doc.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return catalog.Product{}, errors.NewNotFoundError("product", strconv.Itoa(id))
}

// Categories returns all categories declared in the file.
func (c *Catalog) Categories(_ context.Context) ([]catalog.Category, error) {
	if err := c.Load(); err != nil {
		return nil, err
	}
	out := make([]catalog.Category, len(c.doc.Categories))
	copy(out, c.doc.Categories)
	return out, nil
}

var _ catalog.Source = (*Catalog)(nil)
