// Package constants provides shared constants used throughout the storefront codebase.
// This includes timeouts, limits, file permissions, and other configuration values
// that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the catalog API
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// AssistantTimeout is the timeout for assistant (LLM) requests
	AssistantTimeout = 2 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Catalog constants define defaults for the remote catalog API
const (
	// DefaultAPIBaseURL is the base URL of the remote catalog API
	DefaultAPIBaseURL = "https://api.escuelajs.co/api/v1"

	// DefaultPageLimit is the default number of products per catalog page
	DefaultPageLimit = 12

	// MaxPageLimit caps the number of products requested in one page
	MaxPageLimit = 100
)

// Cart constants define defaults for cart persistence
const (
	// CartFileName is the name of the persisted cart record.
	// The name is shared with prior clients so existing carts rehydrate.
	CartFileName = "cart-storage.json"

	// ConfigDirName is the per-user directory holding storefront state
	ConfigDirName = "storefront"
)
