// Package ask provides the natural-language catalog search command.
package ask

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	storefront "github.com/agentstation/storefront"
	"github.com/agentstation/storefront/internal/assistant"
	"github.com/agentstation/storefront/internal/cmd/output"
	"github.com/agentstation/storefront/pkg/constants"
)

// AppContext defines the interface that the ask command needs from the app.
type AppContext interface {
	Storefront() (storefront.Storefront, error)
	Logger() *zerolog.Logger
	Formatter() output.Formatter
	Quiet() bool
	GeminiAPIKey() string
	AssistantModel() string
}

// NewCommand creates the ask command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "ask <question>",
		GroupID: "catalog",
		Short:   "Search the catalog with a natural-language question",
		Long: `Ask translates a free-text question into a catalog query using the
Gemini API and prints the matching products.

Requires GEMINI_API_KEY to be set.`,
		Args: cobra.MinimumNArgs(1),
		Example: `  storefront ask "warm clothes under $50"
  storefront ask "cheapest electronics"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := app.Storefront()
			if err != nil {
				return err
			}

			opts := []assistant.Option{
				assistant.WithAPIKey(app.GeminiAPIKey()),
			}
			if model := app.AssistantModel(); model != "" {
				opts = append(opts, assistant.WithModel(model))
			}

			// The storefront satisfies the catalog source interface, so the
			// assistant queries whichever backend is configured.
			a := assistant.New(sf, opts...)

			ctx, cancel := context.WithTimeout(cmd.Context(), constants.AssistantTimeout)
			defer cancel()

			result, err := a.Ask(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}

			if !app.Quiet() {
				fmt.Fprintf(os.Stderr, "Found %d products\n", len(result.Products))
			}

			return app.Formatter().Format(os.Stdout, output.ProductList(result.Products))
		},
	}
}
