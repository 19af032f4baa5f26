// Package categories provides the command for listing catalog categories.
package categories

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	storefront "github.com/agentstation/storefront"
	"github.com/agentstation/storefront/internal/cmd/output"
)

// AppContext defines the interface that the categories command needs from
// the app.
type AppContext interface {
	Storefront() (storefront.Storefront, error)
	Logger() *zerolog.Logger
	Formatter() output.Formatter
	Quiet() bool
}

// NewCommand creates the categories command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		GroupID: "catalog",
		Short:   "List catalog categories",
		Example: `  storefront categories
  storefront categories -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sf, err := app.Storefront()
			if err != nil {
				return err
			}

			categoryList, err := sf.Categories(cmd.Context())
			if err != nil {
				return err
			}

			if !app.Quiet() {
				fmt.Fprintf(os.Stderr, "Found %d categories\n", len(categoryList))
			}

			return app.Formatter().Format(os.Stdout, output.CategoryList(categoryList))
		},
	}
}
