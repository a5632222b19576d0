package main

import (
	"context"
	"os"
	"time"

	"football-data-backend/internal/api/routes"
	"football-data-backend/internal/config"
	"football-data-backend/internal/database"
	"football-data-backend/internal/paypal"
	"football-data-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	_ "football-data-backend/docs" // This is needed for swag
)

//	@title			Football Data Backend API
//	@version		1.0
//	@description	Liga MX teams, matches, standings and top scorers, plus a PayPal donation flow.

//	@host		localhost:8000
//	@BasePath	/api

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	setupLogging(cfg.LogLevel)

	// The server keeps running without a store; reads degrade per STORE_FAIL_OPEN
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Database unavailable, serving without a store")
		db = nil
	} else {
		defer database.Close(db)
		logStoredTeams(db)
	}

	gateway, err := paypal.NewClient(paypal.Options{
		ClientID:     cfg.PayPalClientID,
		ClientSecret: cfg.PayPalClientSecret,
		Sandbox:      cfg.PayPalSandbox(),
		BaseURL:      cfg.PayPalBaseURL,
	})
	if err != nil {
		logrus.Fatal("Failed to configure PayPal: ", err)
	}
	logrus.WithField("mode", cfg.PayPalMode).Info("PayPal client configured")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRoutes(db, cfg, gateway)

	logrus.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatal("Failed to start server: ", err)
	}
}

// logStoredTeams reports whether the store already holds fixture data
func logStoredTeams(db *gorm.DB) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := repository.NewTeamRepository(db).Count(ctx)
	switch {
	case err != nil:
		logrus.WithError(err).Warn("Could not count stored teams")
	case count == 0:
		logrus.Info("No teams stored yet, run the seed command to load fixtures")
	default:
		logrus.Infof("Data already exists (%d teams found)", count)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
