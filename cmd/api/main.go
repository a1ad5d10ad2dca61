package main

import (
	"os"

	"github.com/yigit/alumnihub/internal/pkg/logger"
)

// @title AlumniHub API
// @version 1.0
// @description API for the AlumniHub alumni networking portal

// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Use the default logger setup by the logger package's init
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
