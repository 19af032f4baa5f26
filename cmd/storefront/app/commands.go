package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/storefront/cmd/storefront/cmd/ask"
	cartcmd "github.com/agentstation/storefront/cmd/storefront/cmd/cart"
	"github.com/agentstation/storefront/cmd/storefront/cmd/categories"
	"github.com/agentstation/storefront/cmd/storefront/cmd/products"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Catalog commands
	rootCmd.AddCommand(products.NewCommand(a))
	rootCmd.AddCommand(categories.NewCommand(a))
	rootCmd.AddCommand(ask.NewCommand(a))

	// Cart commands
	rootCmd.AddCommand(cartcmd.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.newVersionCommand())
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Printf("storefront %s\n", a.version)
			cmd.Printf("  commit:   %s\n", a.commit)
			cmd.Printf("  built:    %s\n", a.date)
			cmd.Printf("  built by: %s\n", a.builtBy)
			return nil
		},
	}
}
