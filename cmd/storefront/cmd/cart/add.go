package cart

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/storefront/pkg/errors"
)

// NewAddCommand creates the cart add subcommand.
func NewAddCommand(app AppContext) *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		Example: `  storefront cart add 42
  storefront cart add 42 --qty 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.NewValidationError("product-id", args[0], "must be an integer")
			}

			sf, err := app.Storefront()
			if err != nil {
				return err
			}

			// Fetch the product so the cart line carries its title, price,
			// and image.
			product, err := sf.Product(cmd.Context(), id)
			if err != nil {
				return err
			}

			if err := sf.Cart().Add(product, quantity); err != nil {
				return err
			}

			app.Logger().Info().
				Int("product", product.ID).
				Int("quantity", quantity).
				Msg("added to cart")

			return showCart(app)
		},
	}

	cmd.Flags().IntVar(&quantity, "qty", 1, "quantity to add")

	return cmd
}
