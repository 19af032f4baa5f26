package cart

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/storefront/pkg/errors"
)

// NewCheckoutCommand creates the cart checkout subcommand. Checkout is not
// wired to a payment backend; the command exists so the flow is visible in
// help output.
func NewCheckoutCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "checkout",
		Short:   "Check out the cart (not yet available)",
		Example: `  storefront cart checkout`,
		RunE: func(_ *cobra.Command, _ []string) error {
			sf, err := app.Storefront()
			if err != nil {
				return err
			}

			if sf.Cart().Len() == 0 {
				return errors.NewValidationError("cart", nil, "cannot check out an empty cart")
			}

			return errors.ErrNotImplemented
		},
	}
}
