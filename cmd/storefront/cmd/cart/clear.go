package cart

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewClearCommand creates the cart clear subcommand.
func NewClearCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "clear",
		Short:   "Remove all items from the cart",
		Example: `  storefront cart clear`,
		RunE: func(_ *cobra.Command, _ []string) error {
			sf, err := app.Storefront()
			if err != nil {
				return err
			}

			sf.Cart().Clear()

			if !app.Quiet() {
				fmt.Fprintln(os.Stderr, "Cart cleared")
			}
			return nil
		},
	}
}
