// Package cart provides commands for managing the shopping cart.
package cart

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	storefront "github.com/agentstation/storefront"
	"github.com/agentstation/storefront/internal/cmd/output"
)

// AppContext defines the interface that cart commands need from the app.
type AppContext interface {
	Storefront() (storefront.Storefront, error)
	Logger() *zerolog.Logger
	Formatter() output.Formatter
	Quiet() bool
}

// NewCommand creates the cart command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cart [subcommand]",
		GroupID: "cart",
		Short:   "Manage the shopping cart",
		Long: `Cart manages the persistent shopping cart.

Available subcommands:
  show      - Show cart contents and total
  add       - Add a product to the cart
  remove    - Remove a product from the cart
  update    - Change the quantity of a cart item
  clear     - Remove all items from the cart
  checkout  - Check out the cart (not yet available)`,
		Example: `  storefront cart add 42            # Add one of product 42
  storefront cart add 42 --qty 3    # Add three
  storefront cart update 42 1       # Set quantity to 1
  storefront cart show              # Show contents and total`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown subcommand: %s", args[0])
		},
	}

	cmd.AddCommand(NewShowCommand(app))
	cmd.AddCommand(NewAddCommand(app))
	cmd.AddCommand(NewRemoveCommand(app))
	cmd.AddCommand(NewUpdateCommand(app))
	cmd.AddCommand(NewClearCommand(app))
	cmd.AddCommand(NewCheckoutCommand(app))

	return cmd
}

// showCart prints the cart contents with the configured formatter.
func showCart(app AppContext) error {
	sf, err := app.Storefront()
	if err != nil {
		return err
	}

	view := output.CartView{
		Items: sf.Cart().Items(),
		Total: sf.Cart().Total(),
	}
	return app.Formatter().Format(os.Stdout, view)
}
