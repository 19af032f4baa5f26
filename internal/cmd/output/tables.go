package output

import (
	"strconv"

	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/storefront/pkg/cart"
	"github.com/agentstation/storefront/pkg/catalog"
)

// Price renders a price the way the storefront displays it.
func Price(amount float64) string {
	return "$" + strconv.FormatFloat(amount, 'f', 2, 64)
}

// ProductList wraps products for table rendering.
type ProductList []catalog.Product

// Table implements Tabler.
func (l ProductList) Table(wide bool) Data {
	headers := []string{"ID", "Title", "Price", "Category"}
	alignment := []tw.Align{tw.AlignRight, tw.AlignLeft, tw.AlignRight, tw.AlignLeft}
	if wide {
		headers = append(headers, "Description", "Image")
		alignment = append(alignment, tw.AlignLeft, tw.AlignLeft)
	}

	rows := make([][]string, 0, len(l))
	for _, p := range l {
		row := []string{
			strconv.Itoa(p.ID),
			p.Title,
			Price(p.Price),
			p.Category.Name,
		}
		if wide {
			row = append(row, truncate(p.Description, 60), p.Image())
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: alignment,
	}
}

// ProductDetail wraps one product for key-value table rendering.
type ProductDetail catalog.Product

// Table implements Tabler.
func (d ProductDetail) Table(bool) Data {
	p := catalog.Product(d)
	caser := cases.Title(language.English)
	rows := [][]string{
		{"ID", strconv.Itoa(p.ID)},
		{"Title", p.Title},
		{"Price", Price(p.Price)},
		{"Category", caser.String(p.Category.Name)},
		{"Description", p.Description},
	}
	for _, image := range p.Images {
		rows = append(rows, []string{"Image", image})
	}

	return Data{
		Headers: []string{"Property", "Value"},
		Rows:    rows,
	}
}

// CategoryList wraps categories for table rendering.
type CategoryList []catalog.Category

// Table implements Tabler.
func (l CategoryList) Table(wide bool) Data {
	headers := []string{"ID", "Name"}
	if wide {
		headers = append(headers, "Slug", "Image")
	}

	rows := make([][]string, 0, len(l))
	for _, c := range l {
		row := []string{strconv.Itoa(c.ID), c.Name}
		if wide {
			row = append(row, c.Slug, c.Image)
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: []tw.Align{tw.AlignRight, tw.AlignLeft},
	}
}

// CartView wraps cart contents for table rendering, with the running total
// in the footer.
type CartView struct {
	Items []cart.Item `json:"items"`
	Total float64     `json:"total"`
}

// Table implements Tabler.
func (v CartView) Table(bool) Data {
	rows := make([][]string, 0, len(v.Items))
	for _, item := range v.Items {
		rows = append(rows, []string{
			strconv.Itoa(item.ID),
			item.Title,
			Price(item.Price),
			strconv.Itoa(item.Quantity),
			Price(item.Subtotal()),
		})
	}

	return Data{
		Headers:         []string{"ID", "Title", "Price", "Qty", "Subtotal"},
		Rows:            rows,
		Footer:          []string{"", "", "", "Total", Price(v.Total)},
		ColumnAlignment: []tw.Align{tw.AlignRight, tw.AlignLeft, tw.AlignRight, tw.AlignRight, tw.AlignRight},
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
