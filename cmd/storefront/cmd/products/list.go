package products

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/storefront/internal/cmd/output"
	"github.com/agentstation/storefront/pkg/catalog"
)

// NewListCommand creates the products list subcommand.
func NewListCommand(app AppContext) *cobra.Command {
	var (
		search     string
		categoryID int
		sortBy     string
		offset     int
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products from the catalog",
		Example: `  storefront products list                        # First page of products
  storefront products list --limit 50 --offset 50 # Second page of 50
  storefront products list --category 1           # Only category 1
  storefront products list --search jacket --sort price_desc`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sf, err := app.Storefront()
			if err != nil {
				return err
			}

			query := catalog.ProductQuery{
				Offset:     offset,
				Limit:      limit,
				CategoryID: categoryID,
			}
			filters := catalog.Filters{
				Search:     search,
				CategoryID: categoryID,
				SortBy:     catalog.ParseSortOrder(sortBy),
			}

			productList, err := sf.Search(cmd.Context(), query, filters)
			if err != nil {
				return err
			}

			if !app.Quiet() {
				fmt.Fprintf(os.Stderr, "Found %d products\n", len(productList))
			}

			return app.Formatter().Format(os.Stdout, output.ProductList(productList))
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "filter by title or description substring")
	cmd.Flags().IntVar(&categoryID, "category", 0, "filter by category id")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort order: price_asc, price_desc, title_asc, title_desc")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of products to skip")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum products per page")

	return cmd
}
