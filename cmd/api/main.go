package main

import (
	"os"

	"github.com/admitly/counselor/internal/pkg/logger"
	"github.com/admitly/counselor/internal/server"
)

// Admissions counselor API: course catalog, scholarship calculator and the
// webhook backing the hosted voice assistant.

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Setup failures are logged in detail by NewServer.
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until shutdown signal.
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
