package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/avaldez/inscripciones/internal/pkg/logger"
	"github.com/avaldez/inscripciones/internal/server"
)

func main() {
	// A missing .env is fine, configuration falls back to the yaml file
	// defaults and whatever is already exported
	if err := godotenv.Load(); err == nil {
		logger.Info().Msg("Loaded environment from .env file")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
