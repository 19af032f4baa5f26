// Package transport provides the HTTP client used by catalog sources.
package transport

import (
	"context"
	"net/http"

	"github.com/agentstation/storefront/pkg/constants"
	"github.com/agentstation/storefront/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client wraps an http.Client with the headers and decoding conventions of
// the catalog API.
type Client struct {
	http *http.Client
}

// New creates a new transport client with the default timeout.
func New() *Client {
	return &Client{
		http: &http.Client{Timeout: DefaultHTTPTimeout},
	}
}

// NewWithHTTPClient creates a transport client over a caller-supplied
// http.Client, keeping whatever timeout or transport it carries.
func NewWithHTTPClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		return New()
	}
	return &Client{http: httpClient}
}

// Do performs an HTTP request with common headers applied.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Accept", "application/json")
	if req.Method == http.MethodPost || req.Method == http.MethodPut || req.Method == http.MethodPatch {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.http.Do(req)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "GET "+url, err)
	}
	return c.Do(req)
}
