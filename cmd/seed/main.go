package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"football-data-backend/internal/config"
	"football-data-backend/internal/database"
	"football-data-backend/internal/seed"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		randomSeed int64
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:          "seed",
		Short:        "Replace the league tables with Liga MX fixture data",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				randomSeed = time.Now().UnixNano()
			}
			return run(cmd.Context(), randomSeed, dryRun)
		},
	}

	cmd.Flags().Int64Var(&randomSeed, "seed", 0, "Random source for match generation (defaults to the current time)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Generate every table and log the counts without writing")

	return cmd
}

func run(ctx context.Context, randomSeed int64, dryRun bool) error {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.LoadForSeeding()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	var db *gorm.DB
	if !dryRun {
		logrus.Info("Connecting to database...")
		db, err = connectWithRetry(cfg.DatabaseURL, cfg.SeedConnectAttempts, time.Second)
		if err != nil {
			return err
		}
		defer database.Close(db)
	}

	logrus.WithFields(logrus.Fields{"seed": randomSeed, "dry_run": dryRun}).Info("Populating Liga MX data")

	seeder := seed.NewSeeder(db, seed.NewGenerator(randomSeed, time.Now()), seed.WithDryRun(dryRun))
	summary, err := seeder.Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to populate database: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"teams":     summary.Teams,
		"standings": summary.Standings,
		"players":   summary.Players,
		"matches":   summary.Matches,
	}).Info("Database populated successfully")
	return nil
}

// connectWithRetry waits for Postgres to accept connections; Initialize also
// bootstraps the schema.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		lastErr = err
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.WithError(err).Warnf("Database not ready (%d/%d)", attempt, maxAttempts)
		}
		if attempt < maxAttempts {
			time.Sleep(delay)
		}
	}
	return nil, fmt.Errorf("database not ready after %d attempts: %w", maxAttempts, lastErr)
}
