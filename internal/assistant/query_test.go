package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/storefront/pkg/catalog"
	"github.com/agentstation/storefront/pkg/errors"
)

func TestParseQuery(t *testing.T) {
	query, err := ParseQuery(`{"search":"hoodie","category_id":1,"sort_by":"price_asc","limit":5}`)
	require.NoError(t, err)
	assert.Equal(t, "hoodie", query.Search)
	assert.Equal(t, 1, query.CategoryID)
	assert.Equal(t, "price_asc", query.SortBy)
	assert.Equal(t, 5, query.Limit)
}

func TestParseQueryCodeFence(t *testing.T) {
	query, err := ParseQuery("```json\n{\"search\":\"tote\",\"sort_by\":\"\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "tote", query.Search)
	assert.Zero(t, query.CategoryID)
}

func TestParseQueryUnknownSortDegrades(t *testing.T) {
	query, err := ParseQuery(`{"search":"","sort_by":"cheapest_first"}`)
	require.NoError(t, err)
	assert.Empty(t, query.SortBy)
}

func TestParseQueryClampsNegatives(t *testing.T) {
	query, err := ParseQuery(`{"category_id":-2,"limit":-1}`)
	require.NoError(t, err)
	assert.Zero(t, query.CategoryID)
	assert.Zero(t, query.Limit)
}

func TestParseQueryNoJSON(t *testing.T) {
	_, err := ParseQuery("sorry, I can't help with that")
	require.Error(t, err)

	var parseErr *errors.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestParseQueryMalformedJSON(t *testing.T) {
	_, err := ParseQuery(`{"search": "hoodie",}`)
	require.Error(t, err)
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt("warm clothes under $50", []catalog.Category{
		{ID: 1, Name: "Clothes"},
		{ID: 2, Name: "Electronics"},
	})

	assert.True(t, strings.Contains(prompt, "1: Clothes"))
	assert.True(t, strings.Contains(prompt, "2: Electronics"))
	assert.True(t, strings.Contains(prompt, "warm clothes under $50"))
	assert.True(t, strings.Contains(prompt, "price_desc"))
}
