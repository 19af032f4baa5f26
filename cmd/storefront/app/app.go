// Package app provides the application context and dependency management
// for the storefront CLI. It centralizes configuration, logging, and the
// storefront instance behind a single App type that commands depend on.
package app

import (
	"os"
	"sync"

	"github.com/rs/zerolog"

	storefront "github.com/agentstation/storefront"
	"github.com/agentstation/storefront/internal/cmd/output"
	"github.com/agentstation/storefront/pkg/errors"
)

// App represents the storefront application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Storefront instance (lazy-initialized, singleton)
	mu         sync.RWMutex
	storefront storefront.Storefront
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Formatter returns the output formatter for the configured format,
// auto-detecting from the terminal when no format was given.
func (a *App) Formatter() output.Formatter {
	return output.NewFormatter(output.DetectFormat(a.config.Format))
}

// Quiet reports whether status messages should be suppressed.
func (a *App) Quiet() bool {
	return a.config.Quiet
}

// Storefront returns the storefront instance, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Storefront() (storefront.Storefront, error) {
	a.mu.RLock()
	if a.storefront != nil {
		sf := a.storefront
		a.mu.RUnlock()
		return sf, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.storefront != nil {
		return a.storefront, nil
	}

	opts := a.buildStorefrontOptions()
	sf, err := storefront.New(opts...)
	if err != nil {
		return nil, errors.WrapResource("create", "storefront", "", err)
	}

	a.storefront = sf
	return sf, nil
}

// GeminiAPIKey returns the configured Gemini API key, falling back to the
// environment.
func (a *App) GeminiAPIKey() string {
	if a.config.GeminiAPIKey != "" {
		return a.config.GeminiAPIKey
	}
	return os.Getenv("GEMINI_API_KEY")
}

// AssistantModel returns the configured assistant model, or empty for the
// default.
func (a *App) AssistantModel() string {
	return a.config.AssistantModel
}

// buildStorefrontOptions constructs storefront options from the app
// configuration.
func (a *App) buildStorefrontOptions() []storefront.Option {
	opts := []storefront.Option{
		storefront.WithLogger(a.logger),
	}

	if a.config.CatalogFile != "" {
		opts = append(opts, storefront.WithLocalCatalog(a.config.CatalogFile))
	} else if a.config.APIBaseURL != "" {
		opts = append(opts, storefront.WithBaseURL(a.config.APIBaseURL))
	}

	if a.config.CartFile != "" {
		opts = append(opts, storefront.WithCartPath(a.config.CartFile))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithStorefront sets a custom storefront instance (useful for testing).
func WithStorefront(sf storefront.Storefront) Option {
	return func(a *App) error {
		a.storefront = sf
		return nil
	}
}
