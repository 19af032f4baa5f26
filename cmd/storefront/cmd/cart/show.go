package cart

import (
	"github.com/spf13/cobra"
)

// NewShowCommand creates the cart show subcommand.
func NewShowCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "show",
		Short:   "Show cart contents and total",
		Aliases: []string{"list"},
		Example: `  storefront cart show
  storefront cart show -o json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return showCart(app)
		},
	}
}
