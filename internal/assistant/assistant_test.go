package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/storefront/pkg/catalog"
	"github.com/agentstation/storefront/pkg/errors"
)

type stubSource struct {
	products   []catalog.Product
	categories []catalog.Category
}

func (s *stubSource) Products(context.Context, catalog.ProductQuery) ([]catalog.Product, error) {
	return s.products, nil
}

func (s *stubSource) Product(context.Context, int) (catalog.Product, error) {
	return catalog.Product{}, errors.ErrNotFound
}

func (s *stubSource) Categories(context.Context) ([]catalog.Category, error) {
	return s.categories, nil
}

func TestAskRejectsEmptyQuestion(t *testing.T) {
	a := New(&stubSource{}, WithAPIKey("test-key"))

	_, err := a.Ask(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestAskRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	a := New(&stubSource{categories: []catalog.Category{{ID: 1, Name: "Clothes"}}})

	_, err := a.Ask(context.Background(), "show me hoodies")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestOptions(t *testing.T) {
	a := New(&stubSource{}, WithModel("gemini-2.5-pro"), WithAPIKey("k"))
	assert.Equal(t, "gemini-2.5-pro", a.model)
	assert.Equal(t, "k", a.apiKey)
}
