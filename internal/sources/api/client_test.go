package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/storefront/pkg/catalog"
	"github.com/agentstation/storefront/pkg/errors"
)

const productJSON = `{
	"id": 1,
	"title": "Classic Red Hoodie",
	"slug": "classic-red-hoodie",
	"price": 35,
	"description": "Warm cotton hoodie",
	"category": {"id": 1, "name": "Clothes", "image": "clothes.jpg", "slug": "clothes"},
	"images": ["hoodie-front.jpg", "hoodie-back.jpg"]
}`

func TestProducts(t *testing.T) {
	t.Run("decodes product list", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/products", r.URL.Path)
			w.Write([]byte("[" + productJSON + "]"))
		}))
		defer srv.Close()

		client := NewClient(WithBaseURL(srv.URL))
		products, err := client.Products(context.Background(), catalog.ProductQuery{})
		require.NoError(t, err)
		require.Len(t, products, 1)

		p := products[0]
		assert.Equal(t, 1, p.ID)
		assert.Equal(t, "Classic Red Hoodie", p.Title)
		assert.InDelta(t, 35, p.Price, 1e-9)
		assert.Equal(t, "Clothes", p.Category.Name)
		assert.Equal(t, []string{"hoodie-front.jpg", "hoodie-back.jpg"}, p.Images)
	})

	t.Run("sends pagination params", func(t *testing.T) {
		var gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			w.Write([]byte("[]"))
		}))
		defer srv.Close()

		client := NewClient(WithBaseURL(srv.URL))
		_, err := client.Products(context.Background(), catalog.ProductQuery{Offset: 24, Limit: 12})
		require.NoError(t, err)
		assert.Equal(t, "limit=12&offset=24", gotQuery)
	})

	t.Run("sends category filter when set", func(t *testing.T) {
		var gotCategory string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotCategory = r.URL.Query().Get("categoryId")
			w.Write([]byte("[]"))
		}))
		defer srv.Close()

		client := NewClient(WithBaseURL(srv.URL))
		_, err := client.Products(context.Background(), catalog.ProductQuery{CategoryID: 3})
		require.NoError(t, err)
		assert.Equal(t, "3", gotCategory)

		_, err = client.Products(context.Background(), catalog.ProductQuery{})
		require.NoError(t, err)
		assert.Equal(t, "", gotCategory)
	})

	t.Run("defaults an empty query", func(t *testing.T) {
		var gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			w.Write([]byte("[]"))
		}))
		defer srv.Close()

		client := NewClient(WithBaseURL(srv.URL))
		_, err := client.Products(context.Background(), catalog.ProductQuery{})
		require.NoError(t, err)
		assert.Equal(t, "limit=12&offset=0", gotQuery)
	})

	t.Run("server failure surfaces as fetch failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := NewClient(WithBaseURL(srv.URL))
		_, err := client.Products(context.Background(), catalog.ProductQuery{})
		require.Error(t, err)
		assert.True(t, errors.IsFetchFailure(err))
	})

	t.Run("unreachable server surfaces as fetch failure", func(t *testing.T) {
		client := NewClient(WithBaseURL("http://127.0.0.1:1"))
		_, err := client.Products(context.Background(), catalog.ProductQuery{})
		require.Error(t, err)
		assert.True(t, errors.IsFetchFailure(err))
	})
}

func TestProduct(t *testing.T) {
	t.Run("decodes a single product", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/products/1", r.URL.Path)
			w.Write([]byte(productJSON))
		}))
		defer srv.Close()

		client := NewClient(WithBaseURL(srv.URL))
		p, err := client.Product(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 1, p.ID)
		assert.Equal(t, "hoodie-front.jpg", p.Image())
	})

	t.Run("404 surfaces as NotFound", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"EntityNotFoundError"}`))
		}))
		defer srv.Close()

		client := NewClient(WithBaseURL(srv.URL))
		_, err := client.Product(context.Background(), 999)
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))

		var nf *errors.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "product", nf.Resource)
		assert.Equal(t, "999", nf.ID)
	})

	t.Run("500 stays a fetch failure, not NotFound", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewClient(WithBaseURL(srv.URL))
		_, err := client.Product(context.Background(), 1)
		require.Error(t, err)
		assert.True(t, errors.IsFetchFailure(err))

		var nf *errors.NotFoundError
		assert.False(t, errors.As(err, &nf))
	})
}

func TestCategories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/categories", r.URL.Path)
		w.Write([]byte(`[
			{"id": 1, "name": "Clothes", "image": "clothes.jpg", "slug": "clothes"},
			{"id": 2, "name": "Electronics", "image": "electronics.jpg", "slug": "electronics"}
		]`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	categories, err := client.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Clothes", categories[0].Name)
	assert.Equal(t, 2, categories[1].ID)
}

func TestContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.Products(ctx, catalog.ProductQuery{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
