package storefront_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	storefront "github.com/agentstation/storefront"
	"github.com/agentstation/storefront/internal/cartstore"
	"github.com/agentstation/storefront/pkg/catalog"
	"github.com/agentstation/storefront/pkg/errors"
)

const catalogFixture = `categories:
  - id: 1
    name: Clothes
products:
  - id: 1
    title: Zip Hoodie
    price: 35
    description: Heavyweight zip hoodie
    category:
      id: 1
      name: Clothes
    images:
      - https://example.test/hoodie.png
  - id: 2
    title: Aviator Sunglasses
    price: 15
    description: Polarized lenses
    category:
      id: 1
      name: Clothes
    images:
      - https://example.test/aviators.png
`

func localStorefront(t *testing.T) storefront.Storefront {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogFixture), 0o644))

	sf, err := storefront.New(
		storefront.WithLocalCatalog(path),
		storefront.WithCartStorage(cartstore.NewMemory()),
	)
	require.NoError(t, err)
	return sf
}

func TestNewDefaults(t *testing.T) {
	sf, err := storefront.New(
		storefront.WithCartPath(filepath.Join(t.TempDir(), "cart-storage.json")),
	)
	require.NoError(t, err)
	require.NotNil(t, sf)
	assert.NotNil(t, sf.Cart())
	assert.Zero(t, sf.Cart().Len())
}

func TestNewOptionErrors(t *testing.T) {
	_, err := storefront.New(storefront.WithBaseURL(""))
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = storefront.New(storefront.WithSource(nil))
	require.Error(t, err)

	_, err = storefront.New(storefront.WithLogger(nil))
	require.Error(t, err)
}

func TestProductsFromLocalCatalog(t *testing.T) {
	sf := localStorefront(t)

	products, err := sf.Products(context.Background(), catalog.DefaultQuery())
	require.NoError(t, err)
	require.Len(t, products, 2)

	product, err := sf.Product(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Aviator Sunglasses", product.Title)

	categories, err := sf.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Clothes", categories[0].Name)
}

func TestSearchFiltersAndSorts(t *testing.T) {
	sf := localStorefront(t)

	products, err := sf.Search(context.Background(), catalog.DefaultQuery(), catalog.Filters{
		SortBy: catalog.SortPriceAsc,
	})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Aviator Sunglasses", products[0].Title)

	products, err = sf.Search(context.Background(), catalog.DefaultQuery(), catalog.Filters{
		Search: "polarized",
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 2, products[0].ID)
}

func TestProductsFromRemoteAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":7,"title":"Canvas Tote","price":12,"description":"","category":{"id":1,"name":"Bags"},"images":[]}]`))
	}))
	defer server.Close()

	sf, err := storefront.New(
		storefront.WithBaseURL(server.URL),
		storefront.WithCartStorage(cartstore.NewMemory()),
	)
	require.NoError(t, err)

	products, err := sf.Products(context.Background(), catalog.DefaultQuery())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Canvas Tote", products[0].Title)
}

func TestCartRoundTrip(t *testing.T) {
	sf := localStorefront(t)

	product, err := sf.Product(context.Background(), 1)
	require.NoError(t, err)

	require.NoError(t, sf.Cart().Add(product, 2))
	assert.Equal(t, 70.0, sf.Cart().Total())

	sf.Cart().UpdateQuantity(product.ID, 1)
	assert.Equal(t, 35.0, sf.Cart().Total())

	sf.Cart().Remove(product.ID)
	assert.Zero(t, sf.Cart().Len())
}

func TestCartPersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(catalogFixture), 0o644))
	cartPath := filepath.Join(dir, "cart-storage.json")

	sf, err := storefront.New(
		storefront.WithLocalCatalog(catalogPath),
		storefront.WithCartPath(cartPath),
	)
	require.NoError(t, err)

	product, err := sf.Product(context.Background(), 1)
	require.NoError(t, err)
	require.NoError(t, sf.Cart().Add(product, 3))

	reopened, err := storefront.New(
		storefront.WithLocalCatalog(catalogPath),
		storefront.WithCartPath(cartPath),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, reopened.Cart().Quantity())
	assert.Equal(t, 105.0, reopened.Cart().Total())
}
