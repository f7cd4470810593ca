package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/suhan648/placementpro/internal/logger"
	"github.com/suhan648/placementpro/internal/server"
)

var (
	servePort    int
	serveJSONLog bool
	serveDebug   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the placement suite REST endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveJSONLog, "json-log", false, "Emit logs as JSON instead of console output")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug log level")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// Get database URL from environment
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	// The JWT signing secret has no usable default; fail before connecting
	if os.Getenv("JWT_SECRET") == "" {
		return fmt.Errorf("JWT_SECRET environment variable is required")
	}

	log, err := logger.New(serveJSONLog, serveDebug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cfg := server.Config{
		Port:        servePort,
		DatabaseURL: databaseURL,
		Logger:      log,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
