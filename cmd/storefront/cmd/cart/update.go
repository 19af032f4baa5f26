package cart

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/storefront/pkg/errors"
)

// NewUpdateCommand creates the cart update subcommand.
func NewUpdateCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "update <product-id> <quantity>",
		Short: "Change the quantity of a cart item",
		Long: `Update changes the quantity of an item already in the cart.

Quantities below 1 are ignored; use remove to take an item out of the
cart entirely.`,
		Args:    cobra.ExactArgs(2),
		Example: `  storefront cart update 42 3`,
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.NewValidationError("product-id", args[0], "must be an integer")
			}
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.NewValidationError("quantity", args[1], "must be an integer")
			}

			sf, err := app.Storefront()
			if err != nil {
				return err
			}

			sf.Cart().UpdateQuantity(id, quantity)
			return showCart(app)
		},
	}
}
