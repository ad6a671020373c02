package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/muktarbdulkader/campus-connector/internal/pkg/logger"
	"github.com/muktarbdulkader/campus-connector/internal/server"
)

// @title Campus Connector API
// @version 1.0
// @description Backend for a university community portal: events, study groups,
// @description exam resources, marketplace, lost & found, ride sharing and a
// @description recommendation-driven connection graph.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// A .env file is optional; config falls back to its defaults.
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
