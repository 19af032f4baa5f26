package storefront

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/agentstation/storefront/internal/sources/files"
	"github.com/agentstation/storefront/pkg/cart"
	"github.com/agentstation/storefront/pkg/catalog"
	"github.com/agentstation/storefront/pkg/errors"
	"github.com/agentstation/storefront/pkg/logging"
)

// config holds the resolved storefront configuration.
type config struct {
	baseURL     string
	httpClient  *http.Client
	source      catalog.Source
	cartStorage cart.Storage
	cartPath    string
	logger      *zerolog.Logger
}

// defaultConfig returns the configuration used when no options are given.
func defaultConfig() *config {
	return &config{
		logger: logging.Default(),
	}
}

// Option is a function that configures a Storefront instance.
type Option func(*config) error

// WithBaseURL overrides the catalog API base URL.
func WithBaseURL(url string) Option {
	return func(c *config) error {
		if url == "" {
			return errors.NewValidationError("baseURL", url, "cannot be empty")
		}
		c.baseURL = url
		return nil
	}
}

// WithHTTPClient overrides the HTTP client used for catalog API requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) error {
		c.httpClient = client
		return nil
	}
}

// WithSource uses a custom catalog source instead of the remote API.
func WithSource(source catalog.Source) Option {
	return func(c *config) error {
		if source == nil {
			return errors.NewValidationError("source", source, "cannot be nil")
		}
		c.source = source
		return nil
	}
}

// WithLocalCatalog serves the catalog from a local YAML file instead of the
// remote API.
func WithLocalCatalog(path string) Option {
	return func(c *config) error {
		if path == "" {
			return errors.NewValidationError("path", path, "cannot be empty")
		}
		c.source = files.NewCatalog(path)
		return nil
	}
}

// WithCartStorage uses a custom cart storage backend.
func WithCartStorage(storage cart.Storage) Option {
	return func(c *config) error {
		if storage == nil {
			return errors.NewValidationError("storage", storage, "cannot be nil")
		}
		c.cartStorage = storage
		return nil
	}
}

// WithCartPath persists the cart to the given file instead of the default
// location under the user config directory.
func WithCartPath(path string) Option {
	return func(c *config) error {
		if path == "" {
			return errors.NewValidationError("path", path, "cannot be empty")
		}
		c.cartPath = path
		return nil
	}
}

// WithLogger overrides the logger used by the storefront and its cart.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		if logger == nil {
			return errors.NewValidationError("logger", logger, "cannot be nil")
		}
		c.logger = logger
		return nil
	}
}
