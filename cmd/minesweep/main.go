// Package main is the entry point for minesweep.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/minesweep/internal/game"
	"github.com/samdwyer/minesweep/internal/logging"
	"github.com/samdwyer/minesweep/internal/telemetry"
)

// runner is the part of game.Game that run drives.
type runner interface {
	Run(ctx context.Context) error
}

type starter func(cfg game.Config, log *logrus.Logger) (runner, error)

func main() {
	os.Exit(run(func(cfg game.Config, log *logrus.Logger) (runner, error) {
		return game.New(cfg, log)
	}))
}

// run wires the game and returns the process exit code. Deferred cleanup
// (log file, trace flush) runs before main exits.
func run(start starter) int {
	// Load .env for local development; env vars may also be set directly.
	envErr := godotenv.Load()

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Printf("Invalid configuration: %v", err)
		return 1
	}

	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		log.Printf("Failed to set up logging: %v", err)
		return 1
	}
	defer closer.Close()
	if envErr != nil {
		logger.WithError(envErr).Debug(".env file not loaded")
	}

	ctx := context.Background()

	if cfg.Telemetry {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.WithError(err).Warn("telemetry setup failed, running without tracing")
			cfg.Telemetry = false
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.WithError(err).Error("telemetry shutdown")
				}
			}()
		}
	}

	g, err := start(cfg, logger)
	if err != nil {
		logger.WithError(err).Error("failed to initialize game")
		log.Printf("Failed to initialize game: %v", err)
		return 1
	}

	// The screen is restored by Run before the error is printed.
	if err := g.Run(ctx); err != nil {
		logger.WithError(err).Error("game aborted")
		log.Printf("Game error: %v", err)
		return 1
	}
	return 0
}

// setupOTelEnv points the OTLP exporter at Honeycomb using our API key.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv("HONEYCOMB_MINESWEEP_API_KEY")
	dataset := os.Getenv("HONEYCOMB_MINESWEEP_DATASET")
	if dataset == "" {
		dataset = "minesweep"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
