package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/ersoy/studentms/internal/pkg/logger"
	"github.com/ersoy/studentms/internal/server"
)

// @title Student Management API
// @version 1.0
// @description REST API for managing student records

// @contact.name API Support
// @contact.email support@studentms.example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	// Load .env file if present; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Failed to load .env file")
	}

	// Initialize the server with all its dependencies
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
