// Package commands implements the CLI commands for cratectl.
package commands

import (
	"context"
	"slices"

	"cratectl/internal/app"
	"github.com/spf13/cobra"
)

// unstableOptions is the `-Z` value that unlocks experimental syntax.
const unstableOptions = "unstable-options"

// CLI represents the command line interface for cratectl.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cratectl",
		Short:         "Edit dependencies in Cargo-style manifests",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringArrayP("unstable", "Z", nil, "Enable unstable (nightly-only) flags")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newAddCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// unstableEnabled reports whether `-Z unstable-options` was supplied.
func (c *CLI) unstableEnabled() bool {
	flags, _ := c.rootCmd.PersistentFlags().GetStringArray("unstable")
	return slices.Contains(flags, unstableOptions)
}
