package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/idriveapp/admin-gateway/internal/pkg/logger"
	"github.com/idriveapp/admin-gateway/internal/server"
)

// @title iDrive Admin Gateway API
// @version 1.0
// @description Administration gateway for the iDrive driving school scheduling backend

// @contact.name API Support
// @contact.email soporte@idriveapp.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Gateway session token

func main() {
	// Load .env when present; real environments set variables directly
	if err := godotenv.Load(); err == nil {
		logger.Info().Msg("Environment loaded from .env file")
	}

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
}
