package output_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/storefront/internal/cmd/output"
	"github.com/agentstation/storefront/pkg/cart"
	"github.com/agentstation/storefront/pkg/catalog"
)

func sampleProducts() []catalog.Product {
	return []catalog.Product{
		{
			ID:          1,
			Title:       "Zip Hoodie",
			Price:       35,
			Description: "Heavyweight zip hoodie with a two-way zipper and kangaroo pocket",
			Category:    catalog.Category{ID: 1, Name: "clothes"},
			Images:      []string{"https://example.test/hoodie.png"},
		},
		{
			ID:       2,
			Title:    "Canvas Tote",
			Price:    12.5,
			Category: catalog.Category{ID: 2, Name: "bags"},
			Images:   []string{"https://example.test/tote.png"},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    output.Format
		wantErr bool
	}{
		{"table", output.FormatTable, false},
		{"JSON", output.FormatJSON, false},
		{"yaml", output.FormatYAML, false},
		{"wide", output.FormatWide, false},
		{"", output.Format(""), false},
		{"xml", output.Format(""), true},
	}

	for _, tt := range tests {
		got, err := output.ParseFormat(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatJSON)
	require.NoError(t, f.Format(&buf, sampleProducts()))

	var decoded []catalog.Product
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Zip Hoodie", decoded[0].Title)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatYAML)
	require.NoError(t, f.Format(&buf, sampleProducts()))

	assert.Contains(t, buf.String(), "title: Zip Hoodie")
	assert.Contains(t, buf.String(), "price: 12.5")
}

func TestTableFormatterProducts(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatTable)
	require.NoError(t, f.Format(&buf, output.ProductList(sampleProducts())))

	out := buf.String()
	assert.Contains(t, out, "Zip Hoodie")
	assert.Contains(t, out, "$35.00")
	assert.Contains(t, out, "$12.50")
	// Narrow table omits descriptions.
	assert.NotContains(t, out, "kangaroo")
}

func TestTableFormatterWide(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatWide)
	require.NoError(t, f.Format(&buf, output.ProductList(sampleProducts())))

	out := buf.String()
	assert.Contains(t, out, "https://example.test/tote.png")
	// Long descriptions are truncated with an ellipsis.
	assert.Contains(t, out, "...")
	assert.NotContains(t, out, "kangaroo pocket")
}

func TestTableFormatterCart(t *testing.T) {
	view := output.CartView{
		Items: []cart.Item{
			{ID: 1, Title: "Zip Hoodie", Price: 35, Quantity: 2},
			{ID: 2, Title: "Canvas Tote", Price: 12.5, Quantity: 1},
		},
		Total: 82.5,
	}

	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatTable)
	require.NoError(t, f.Format(&buf, view))

	out := buf.String()
	assert.Contains(t, out, "$70.00")
	assert.Contains(t, out, "$82.50")
	assert.Contains(t, out, "Total")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatTable)
	require.NoError(t, f.Format(&buf, map[string]int{"count": 3}))

	assert.True(t, strings.Contains(buf.String(), `"count": 3`))
}

func TestProductDetailTable(t *testing.T) {
	detail := output.ProductDetail(sampleProducts()[0])
	data := detail.Table(false)

	assert.Equal(t, []string{"Property", "Value"}, data.Headers)
	assert.Contains(t, data.Rows, []string{"Title", "Zip Hoodie"})
	assert.Contains(t, data.Rows, []string{"Category", "Clothes"})
}
