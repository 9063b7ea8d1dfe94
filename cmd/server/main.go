package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Blank imports run the init() registrations.
	_ "github.com/shashiranjanraj/backoffice/database/migrations"
	_ "github.com/shashiranjanraj/backoffice/database/seeders"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "backoffice",
	Short: "Back-office product catalog API",
	Long:  "REST API for the e-commerce back office: authentication, product catalog with caching, and AI-assisted copywriting.",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)
}
