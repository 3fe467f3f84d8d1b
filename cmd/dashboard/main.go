package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/studytrack/api/internal/config"
	"github.com/studytrack/api/internal/dashboard"
	"github.com/studytrack/api/internal/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig(filepath.Join("configs", "config.yaml"))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	client := dashboard.NewClient(cfg.Dashboard.APIBaseURL)
	srv, err := dashboard.NewServer(client)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize dashboard")
		os.Exit(1)
	}

	router := gin.Default()
	srv.Routes(router)

	logger.Info().
		Str("port", cfg.Dashboard.Port).
		Str("api", cfg.Dashboard.APIBaseURL).
		Msg("Dashboard listening")
	if err := router.Run(":" + cfg.Dashboard.Port); err != nil {
		logger.Error().Err(err).Msg("Dashboard server failed")
		os.Exit(1)
	}
}
