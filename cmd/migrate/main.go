package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/mentormatch/mentormatch-api/config"
	"github.com/mentormatch/mentormatch-api/pkg/db"
	"github.com/mentormatch/mentormatch-api/pkg/logger"
	"go.uber.org/zap"
)

// Usage: migrate [up|down]
func main() {
	direction := db.DirectionUp
	if len(os.Args) > 1 {
		switch db.Direction(os.Args[1]) {
		case db.DirectionUp, db.DirectionDown:
			direction = db.Direction(os.Args[1])
		default:
			fmt.Fprintf(os.Stderr, "unknown direction %q, expected up or down\n", os.Args[1])
			os.Exit(2)
		}
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: "mentormatch-migrate",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting database migrations",
		zap.String("database", maskDatabaseURL(cfg.Database.URL)),
		zap.String("direction", string(direction)))

	poolCfg := db.PoolConfig{
		URL:        cfg.Database.URL,
		CACertPath: cfg.Database.CACertPath,
		ServerName: cfg.Database.ServerName,
	}
	if err := db.RunMigrations(poolCfg, "file://migrations", direction); err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Database migrations completed successfully")
}

// maskDatabaseURL strips credentials from the database URL for logging
func maskDatabaseURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "***"
	}
	return u.Redacted()
}
