package main

import (
	"os"

	"github.com/studytrack/api/internal/pkg/logger"
	"github.com/studytrack/api/internal/server"
)

// @title StudyTrack API
// @version 1.0
// @description CRUD and analytics backend for tracking study sessions

// @host localhost:8080
// @BasePath /

func main() {
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
