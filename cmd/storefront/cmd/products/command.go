// Package products provides commands for browsing catalog products.
package products

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	storefront "github.com/agentstation/storefront"
	"github.com/agentstation/storefront/internal/cmd/output"
)

// AppContext defines the interface that product commands need from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	Storefront() (storefront.Storefront, error)
	Logger() *zerolog.Logger
	Formatter() output.Formatter
	Quiet() bool
}

// NewCommand creates the products command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products [subcommand]",
		GroupID: "catalog",
		Short:   "Browse catalog products",
		Long: `Products browses the product catalog.

Available subcommands:
  list  - List products with optional search, category, and sort filters
  show  - Show details for a single product`,
		Example: `  storefront products list                       # First page of products
  storefront products list --search hoodie       # Search by title or description
  storefront products list --sort price_asc      # Cheapest first
  storefront products show 42                    # Show product 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown subcommand: %s", args[0])
		},
	}

	cmd.AddCommand(NewListCommand(app))
	cmd.AddCommand(NewShowCommand(app))

	return cmd
}
