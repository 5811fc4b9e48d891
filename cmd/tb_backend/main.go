package main

import (
	"os"

	"github.com/spf13/cobra"
)

// @title Taxbooks Backend API
// @version 1.0
// @description Bookkeeping and VAT backend for UK small businesses and their accountants.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand creates the root CLI command with all subcommands registered.
// Running the binary without a subcommand serves the API.
func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tb_backend",
		Short: "Bookkeeping and VAT backend",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newMigrateCommand())

	return rootCmd
}
