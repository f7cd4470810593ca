package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/suhan648/placementpro/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Apply migrations and seed the knowledge base",
	Long:  `Creates the database schema if needed, then loads the starter FAQ entries and market skill profiles. Tables that already hold data are left untouched, so the command is safe to run repeatedly.`,
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := database.Seed(ctx); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	fmt.Println("Database migrated and seeded")
	return nil
}
