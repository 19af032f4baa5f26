// Package api provides the remote REST catalog source. It fetches product
// and category data from a Platzi-style fake store API over plain HTTP GET
// requests with no retries and no caching.
package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/agentstation/storefront/internal/transport"
	"github.com/agentstation/storefront/pkg/catalog"
	"github.com/agentstation/storefront/pkg/constants"
	"github.com/agentstation/storefront/pkg/errors"
	"github.com/agentstation/storefront/pkg/logging"
)

// Client implements catalog.Source against the remote catalog API.
type Client struct {
	baseURL   string
	transport *transport.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient uses a caller-supplied http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.transport = transport.NewWithHTTPClient(httpClient)
	}
}

// NewClient creates a catalog API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   constants.DefaultAPIBaseURL,
		transport: transport.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Products returns one page of products. A non-zero CategoryID is passed to
// the API as a filter; offset and limit paginate the listing.
func (c *Client) Products(ctx context.Context, query catalog.ProductQuery) ([]catalog.Product, error) {
	query = query.Normalize()

	params := url.Values{}
	params.Set("offset", strconv.Itoa(query.Offset))
	params.Set("limit", strconv.Itoa(query.Limit))
	if query.CategoryID != 0 {
		params.Set("categoryId", strconv.Itoa(query.CategoryID))
	}
	endpoint := c.baseURL + "/products?" + params.Encode()

	logging.FromContext(ctx).Debug().
		Int("offset", query.Offset).
		Int("limit", query.Limit).
		Int("category_id", query.CategoryID).
		Msg("fetching products")

	resp, err := c.transport.Get(ctx, endpoint)
	if err != nil {
		return nil, errors.WrapAPI(endpoint, 0, err)
	}

	var products []catalog.Product
	if err := transport.DecodeResponse(resp, endpoint, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product returns a single product by id. A 404 from the API is surfaced as
// a NotFound error so callers can render a distinct not-found state.
func (c *Client) Product(ctx context.Context, id int) (catalog.Product, error) {
	endpoint := fmt.Sprintf("%s/products/%d", c.baseURL, id)

	resp, err := c.transport.Get(ctx, endpoint)
	if err != nil {
		return catalog.Product{}, errors.WrapAPI(endpoint, 0, err)
	}

	var product catalog.Product
	if err := transport.DecodeResponse(resp, endpoint, &product); err != nil {
		var apiErr *errors.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return catalog.Product{}, errors.NewNotFoundError("product", strconv.Itoa(id))
		}
		return catalog.Product{}, err
	}
	return product, nil
}

// Categories returns all categories.
func (c *Client) Categories(ctx context.Context) ([]catalog.Category, error) {
	endpoint := c.baseURL + "/categories"

	resp, err := c.transport.Get(ctx, endpoint)
	if err != nil {
		return nil, errors.WrapAPI(endpoint, 0, err)
	}

	var categories []catalog.Category
	if err := transport.DecodeResponse(resp, endpoint, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

var _ catalog.Source = (*Client)(nil)
