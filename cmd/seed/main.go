// Command seed loads demo pins and their room messages from a YAML fixture
// into the configured document and blob stores. It is intended to be run
// offline, not as part of the main server.
//
// Flags:
//
//	--config         path to the app YAML config file
//	--seeder-config  path to the seeder YAML config file
//	--fixture        path to the pins fixture (overrides seeder config)
//	--dry-run        read pictures and render previews without writing
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/heartmarshall/pinmoji/internal/adapter/picture"
	"github.com/heartmarshall/pinmoji/internal/app"
	"github.com/heartmarshall/pinmoji/internal/app/seeder"
	"github.com/heartmarshall/pinmoji/internal/config"
	"github.com/heartmarshall/pinmoji/internal/thumbnail"
)

func main() {
	configPath := pflag.String("config", "", "path to the app YAML config file")
	seederConfigPath := pflag.String("seeder-config", "", "path to the seeder YAML config file")
	fixturePath := pflag.String("fixture", "", "path to the pins fixture")
	dryRun := pflag.Bool("dry-run", false, "read pictures and render previews without writing")
	pflag.Parse()

	appCfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigPath)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *fixturePath != "" {
		seederCfg.FixturePath = *fixturePath
	}
	if *dryRun {
		seederCfg.DryRun = true
	}

	fixture, err := seeder.LoadFixture(seederCfg.FixturePath)
	if err != nil {
		logger.Error("load fixture", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := run(ctx, logger, appCfg, *seederCfg, fixture.Pins); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, appCfg *config.Config, cfg seeder.Config, pins []seeder.Pin) error {
	docs, err := app.OpenDocuments(ctx, appCfg, logger)
	if err != nil {
		return err
	}
	defer docs.Close()

	blobs, err := app.OpenBlobs(ctx, appCfg.Storage, logger)
	if err != nil {
		return err
	}
	defer blobs.Close()

	pipeline := seeder.NewPipeline(logger,
		docs.Store(), blobs.Store(),
		picture.NewSource(logger), thumbnail.New(),
		docs.Tx(), cfg,
	)
	if err := pipeline.Run(ctx, pins); err != nil {
		return err
	}

	if pipeline.HasErrors() {
		return fmt.Errorf("%d of %d pins failed", pipeline.Result().Errors, len(pins))
	}

	logger.Info("seeding completed successfully")
	return nil
}
