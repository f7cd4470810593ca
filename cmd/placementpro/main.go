// Package main provides the entry point for the PlacementPro HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "placementpro",
	Short: "PlacementPro campus placement API server",
	Long:  "PlacementPro runs campus placement drives end to end: eligibility checks, applications, interview scheduling, alumni mentorship and referrals, skill gap analysis, and a placement FAQ chatbot, exposed as a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
