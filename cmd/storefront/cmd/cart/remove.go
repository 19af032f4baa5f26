package cart

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/storefront/pkg/errors"
)

// NewRemoveCommand creates the cart remove subcommand.
func NewRemoveCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <product-id>",
		Short:   "Remove a product from the cart",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		Example: `  storefront cart remove 42`,
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.NewValidationError("product-id", args[0], "must be an integer")
			}

			sf, err := app.Storefront()
			if err != nil {
				return err
			}

			sf.Cart().Remove(id)
			return showCart(app)
		},
	}
}
