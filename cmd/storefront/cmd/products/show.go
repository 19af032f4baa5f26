package products

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/storefront/internal/cmd/output"
	"github.com/agentstation/storefront/pkg/errors"
)

// NewShowCommand creates the products show subcommand.
func NewShowCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "show <product-id>",
		Short:   "Show details for a single product",
		Args:    cobra.ExactArgs(1),
		Example: `  storefront products show 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.NewValidationError("product-id", args[0], "must be an integer")
			}

			sf, err := app.Storefront()
			if err != nil {
				return err
			}

			product, err := sf.Product(cmd.Context(), id)
			if err != nil {
				return err
			}

			return app.Formatter().Format(os.Stdout, output.ProductDetail(product))
		},
	}
}
