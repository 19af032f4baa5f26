package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/agentstation/storefront/pkg/catalog"
	"github.com/agentstation/storefront/pkg/errors"
)

// Query is the structured catalog query the model produces.
type Query struct {
	Search     string `json:"search"`
	CategoryID int    `json:"category_id"`
	SortBy     string `json:"sort_by"`
	Limit      int    `json:"limit"`
}

// buildPrompt renders the translation prompt, listing the store's real
// categories so the model picks valid ids.
func buildPrompt(question string, categories []catalog.Category) string {
	var b strings.Builder
	b.WriteString("You translate shopping questions into a JSON catalog query.\n")
	b.WriteString("Respond with a single JSON object and nothing else, with these fields:\n")
	b.WriteString(`  "search": keywords to match against product titles and descriptions ("" for none)` + "\n")
	b.WriteString(`  "category_id": one of the category ids below, or 0 for all categories` + "\n")
	b.WriteString(`  "sort_by": one of "price_asc", "price_desc", "title_asc", "title_desc", or ""` + "\n")
	b.WriteString(`  "limit": maximum number of products to return, or 0 for the default` + "\n\n")

	b.WriteString("Categories:\n")
	for _, c := range categories {
		fmt.Fprintf(&b, "  %d: %s\n", c.ID, c.Name)
	}

	b.WriteString("\nQuestion: ")
	b.WriteString(question)
	return b.String()
}

// ParseQuery decodes the model's response into a Query. Markdown code
// fences around the JSON are tolerated.
func ParseQuery(text string) (Query, error) {
	payload := extractJSON(text)
	if payload == "" {
		return Query{}, errors.WrapParse("json", "assistant response", fmt.Errorf("no JSON object in %q", text))
	}

	var query Query
	if err := json.Unmarshal([]byte(payload), &query); err != nil {
		return Query{}, errors.WrapParse("json", "assistant response", err)
	}

	// Unknown sort orders degrade to unsorted rather than failing the
	// whole question.
	query.SortBy = string(catalog.ParseSortOrder(query.SortBy))
	if query.Limit < 0 {
		query.Limit = 0
	}
	if query.CategoryID < 0 {
		query.CategoryID = 0
	}
	return query, nil
}

// extractJSON returns the first top-level JSON object in text.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}
