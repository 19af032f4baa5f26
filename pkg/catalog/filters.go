package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOrder selects how a filtered product list is ordered.
type SortOrder string

// Supported sort orders.
const (
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
	SortTitleAsc  SortOrder = "title_asc"
	SortTitleDesc SortOrder = "title_desc"
)

// Filters holds the parameters for FilterAndSort. The zero value matches
// everything and applies no ordering.
type Filters struct {
	// Search is matched case-insensitively as a substring of the product
	// title or description. Empty matches all products.
	Search string

	// CategoryID filters to an exact category id. Zero matches all.
	CategoryID int

	// SortBy orders the result. An unrecognized or empty value leaves the
	// filtered products in their input order.
	SortBy SortOrder
}

// collator performs locale-aware title comparisons. Collation tables are
// immutable after construction, but the collate API is not safe for
// concurrent use of a single Collator, so FilterAndSort creates its own.
func newCollator() *collate.Collator {
	return collate.New(language.English)
}

// FilterAndSort returns a new slice of products matching the filters, in the
// requested order. The input slice is never mutated. Sorting is stable:
// products comparing equal under the sort key keep their relative input
// order.
func FilterAndSort(products []Product, filters Filters) []Product {
	filtered := make([]Product, 0, len(products))

	search := strings.ToLower(strings.TrimSpace(filters.Search))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if filters.CategoryID != 0 && p.Category.ID != filters.CategoryID {
			continue
		}
		filtered = append(filtered, p)
	}

	switch filters.SortBy {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case SortTitleAsc:
		c := newCollator()
		sort.SliceStable(filtered, func(i, j int) bool {
			return c.CompareString(filtered[i].Title, filtered[j].Title) < 0
		})
	case SortTitleDesc:
		c := newCollator()
		sort.SliceStable(filtered, func(i, j int) bool {
			return c.CompareString(filtered[i].Title, filtered[j].Title) > 0
		})
	}

	return filtered
}

// ParseSortOrder converts a string into a SortOrder, defaulting to no sort
// for unrecognized values (mirrors FilterAndSort's fall-through).
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	case SortTitleAsc:
		return SortTitleAsc
	case SortTitleDesc:
		return SortTitleDesc
	default:
		return ""
	}
}
