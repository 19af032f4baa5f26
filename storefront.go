// Package storefront provides a client for browsing a product catalog and
// managing a persistent shopping cart. Catalog data comes from a pluggable
// Source (the Platzi fake store REST API by default, or a local YAML file),
// and the cart mirrors every mutation to its storage backend.
package storefront

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/storefront/internal/cartstore"
	"github.com/agentstation/storefront/internal/sources/api"
	"github.com/agentstation/storefront/pkg/cart"
	"github.com/agentstation/storefront/pkg/catalog"
	"github.com/agentstation/storefront/pkg/errors"
)

// Storefront combines catalog access with a shopping cart.
type Storefront interface {
	// Products returns one page of products from the catalog source.
	Products(ctx context.Context, query catalog.ProductQuery) ([]catalog.Product, error)

	// Product returns a single product by id.
	Product(ctx context.Context, id int) (catalog.Product, error)

	// Categories returns all catalog categories.
	Categories(ctx context.Context) ([]catalog.Category, error)

	// Search fetches a page of products and applies filters and sorting
	// client-side.
	Search(ctx context.Context, query catalog.ProductQuery, filters catalog.Filters) ([]catalog.Product, error)

	// Cart returns the shopping cart. The same cart is returned on every
	// call.
	Cart() *cart.Cart
}

// storefront is the internal implementation of the Storefront interface.
type storefront struct {
	mu     sync.RWMutex
	config *config
	source catalog.Source
	cart   *cart.Cart
	logger *zerolog.Logger
}

// New creates a new Storefront instance with the given options.
func New(opts ...Option) (Storefront, error) {
	s := &storefront{
		config: defaultConfig(),
	}

	if err := s.options(opts...); err != nil {
		return nil, errors.WrapResource("configure", "storefront", "", err)
	}
	s.logger = s.config.logger

	source, err := s.config.buildSource()
	if err != nil {
		return nil, err
	}
	s.source = source

	storage, err := s.config.buildCartStorage()
	if err != nil {
		return nil, err
	}
	s.cart = cart.New(storage, cart.WithLogger(s.logger))

	return s, nil
}

// options applies the given options to the storefront configuration.
func (s *storefront) options(opts ...Option) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(s.config); err != nil {
			return err
		}
	}
	return nil
}

// Products returns one page of products from the catalog source.
func (s *storefront) Products(ctx context.Context, query catalog.ProductQuery) ([]catalog.Product, error) {
	s.mu.RLock()
	source := s.source
	s.mu.RUnlock()

	return source.Products(ctx, query)
}

// Product returns a single product by id.
func (s *storefront) Product(ctx context.Context, id int) (catalog.Product, error) {
	s.mu.RLock()
	source := s.source
	s.mu.RUnlock()

	return source.Product(ctx, id)
}

// Categories returns all catalog categories.
func (s *storefront) Categories(ctx context.Context) ([]catalog.Category, error) {
	s.mu.RLock()
	source := s.source
	s.mu.RUnlock()

	return source.Categories(ctx)
}

// Search fetches products and applies filters client-side. Category
// narrowing is pushed to the source when the query supports it; search text
// and sorting always happen in memory over the fetched page.
func (s *storefront) Search(ctx context.Context, query catalog.ProductQuery, filters catalog.Filters) ([]catalog.Product, error) {
	if filters.CategoryID != 0 && query.CategoryID == 0 {
		query.CategoryID = filters.CategoryID
	}

	products, err := s.Products(ctx, query)
	if err != nil {
		return nil, err
	}
	return catalog.FilterAndSort(products, filters), nil
}

// Cart returns the shopping cart.
func (s *storefront) Cart() *cart.Cart {
	return s.cart
}

// buildSource resolves the catalog source from the configuration.
func (c *config) buildSource() (catalog.Source, error) {
	if c.source != nil {
		return c.source, nil
	}

	apiOpts := []api.Option{}
	if c.baseURL != "" {
		apiOpts = append(apiOpts, api.WithBaseURL(c.baseURL))
	}
	if c.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(c.httpClient))
	}
	return api.NewClient(apiOpts...), nil
}

// buildCartStorage resolves the cart storage backend from the configuration.
func (c *config) buildCartStorage() (cart.Storage, error) {
	if c.cartStorage != nil {
		return c.cartStorage, nil
	}

	path := c.cartPath
	if path == "" {
		var err error
		path, err = cartstore.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return cartstore.NewFile(path)
}
