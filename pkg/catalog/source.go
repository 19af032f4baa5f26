package catalog

import (
	"context"

	"github.com/agentstation/storefront/pkg/constants"
)

// ProductQuery describes one page of the product listing.
// A zero CategoryID means no category filter.
type ProductQuery struct {
	Offset     int
	Limit      int
	CategoryID int
}

// DefaultQuery returns the query used when a caller passes the zero value.
func DefaultQuery() ProductQuery {
	return ProductQuery{Limit: constants.DefaultPageLimit}
}

// Normalize clamps the query to sane bounds.
func (q ProductQuery) Normalize() ProductQuery {
	if q.Limit <= 0 {
		q.Limit = constants.DefaultPageLimit
	}
	if q.Limit > constants.MaxPageLimit {
		q.Limit = constants.MaxPageLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return q
}

// Source provides read access to a product catalog. Implementations include
// the remote REST API client and the local files source. All operations are
// request/response with no retries; callers own loading and error states.
type Source interface {
	// Products returns one page of products per the query.
	Products(ctx context.Context, query ProductQuery) ([]Product, error)

	// Product returns a single product by id, or a NotFound error.
	Product(ctx context.Context, id int) (Product, error)

	// Categories returns all categories.
	Categories(ctx context.Context) ([]Category, error)
}
