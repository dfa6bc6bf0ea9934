// Package testhelper starts a throwaway PostgreSQL for integration tests.
package testhelper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/heartmarshall/pinmoji/internal/adapter/postgres"
)

const image = "postgres:17-alpine"

var (
	once    sync.Once
	dsn     string
	initErr error
)

// SetupTestDB returns a pool on a migrated database shared by the whole test
// binary. The container starts on first use; the pool is closed via
// t.Cleanup. The test is skipped with -short or without a container runtime.
//
// Tests share one schema, so they must not assume empty tables: use
// UniqueSuffix or NewRoomID to keep their rows apart.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("testhelper: database test skipped in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	once.Do(func() { dsn, initErr = startDatabase() })
	if initErr != nil {
		t.Fatalf("testhelper: start database: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Each live query pins a connection, so leave headroom for listeners.
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		t.Fatalf("testhelper: parse dsn: %v", err)
	}
	cfg.MaxConns = 8

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		t.Fatalf("testhelper: open pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func startDatabase() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	ctr, err := tcpostgres.Run(ctx, image,
		tcpostgres.WithDatabase("pinmoji"),
		tcpostgres.WithUsername("pinmoji"),
		tcpostgres.WithPassword("pinmoji"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		return "", fmt.Errorf("run %s: %w", image, err)
	}

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return "", fmt.Errorf("connection string: %w", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return "", fmt.Errorf("migration pool: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		return "", fmt.Errorf("migrate: %w", err)
	}

	return connStr, nil
}
