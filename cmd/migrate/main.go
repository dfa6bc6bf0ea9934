// Command migrate applies the embedded PostgreSQL migrations. Use it when
// the server runs with database.migrate_on_start disabled.
//
// Flags:
//
//	--dsn  database connection string (default: $DATABASE_DSN)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/heartmarshall/pinmoji/internal/adapter/postgres"
	"github.com/heartmarshall/pinmoji/internal/app"
	"github.com/heartmarshall/pinmoji/internal/config"
)

func main() {
	dsn := pflag.String("dsn", os.Getenv("DATABASE_DSN"), "database connection string")
	logLevel := pflag.String("log-level", "info", "log level")
	pflag.Parse()

	if *dsn == "" {
		log.Fatal("--dsn or DATABASE_DSN is required")
	}

	logger := app.NewLogger(config.LogConfig{Level: *logLevel, Format: "text"})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{DSN: *dsn})
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, logger); err != nil {
		logger.Error("migrate failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("migrations applied")
}
