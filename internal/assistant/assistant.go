// Package assistant translates free-text shopping questions into catalog
// queries using the Gemini API, runs them against a catalog source, and
// returns the matching products.
package assistant

import (
	"context"
	"os"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/agentstation/storefront/pkg/catalog"
	"github.com/agentstation/storefront/pkg/errors"
	"github.com/agentstation/storefront/pkg/logging"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// Assistant answers catalog questions by asking a Gemini model to produce a
// structured query, then executing that query against the source.
type Assistant struct {
	source catalog.Source
	apiKey string
	model  string

	mu          sync.Mutex
	genaiClient *genai.Client
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithModel overrides the Gemini model.
func WithModel(model string) Option {
	return func(a *Assistant) {
		a.model = model
	}
}

// WithAPIKey sets the Gemini API key explicitly instead of reading
// GEMINI_API_KEY.
func WithAPIKey(key string) Option {
	return func(a *Assistant) {
		a.apiKey = key
	}
}

// New creates an Assistant answering questions against the given source.
func New(source catalog.Source, opts ...Option) *Assistant {
	a := &Assistant{
		source: source,
		apiKey: os.Getenv("GEMINI_API_KEY"),
		model:  DefaultModel,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Result is the assistant's answer to one question.
type Result struct {
	Query    Query             `json:"query"`
	Products []catalog.Product `json:"products"`
}

// Ask translates the question into a catalog query and executes it.
func (a *Assistant) Ask(ctx context.Context, question string) (*Result, error) {
	if strings.TrimSpace(question) == "" {
		return nil, errors.NewValidationError("question", question, "cannot be empty")
	}

	categories, err := a.source.Categories(ctx)
	if err != nil {
		return nil, err
	}

	query, err := a.translate(ctx, question, categories)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Str("search", query.Search).
		Int("category_id", query.CategoryID).
		Str("sort_by", query.SortBy).
		Msg("assistant resolved query")

	products, err := a.source.Products(ctx, catalog.ProductQuery{
		CategoryID: query.CategoryID,
		Limit:      query.Limit,
	})
	if err != nil {
		return nil, err
	}

	filters := catalog.Filters{
		Search:     query.Search,
		CategoryID: query.CategoryID,
		SortBy:     catalog.SortOrder(query.SortBy),
	}
	return &Result{
		Query:    query,
		Products: catalog.FilterAndSort(products, filters),
	}, nil
}

// translate asks the model to convert the question into a Query.
func (a *Assistant) translate(ctx context.Context, question string, categories []catalog.Category) (Query, error) {
	client, err := a.client(ctx)
	if err != nil {
		return Query{}, err
	}

	prompt := buildPrompt(question, categories)
	resp, err := client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return Query{}, errors.WrapAPI("gemini", 0, err)
	}

	return ParseQuery(resp.Text())
}

// client lazily creates the genai client. The API key must be configured.
func (a *Assistant) client(ctx context.Context) (*genai.Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.genaiClient != nil {
		return a.genaiClient, nil
	}
	if a.apiKey == "" {
		return nil, errors.NewValidationError("apiKey", "", "set GEMINI_API_KEY to use the assistant")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  a.apiKey,
	})
	if err != nil {
		return nil, errors.WrapAPI("gemini", 0, err)
	}

	a.genaiClient = client
	return client, nil
}
