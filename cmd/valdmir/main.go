// Package main is the entry point for Valdmir.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/godofthunder8756/Valdmir-Roguelike/internal/game"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/gamedata"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/logger"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/telemetry"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	cfg.Seed = cfg.ResolveSeed()
	cfg.SessionID = uuid.NewString()

	// The terminal belongs to the UI, so logs only go to a file.
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		logger.Init(cfg.LogLevel, cfg.LogFormat, f)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, telemetry.Options{SessionID: cfg.SessionID, Seed: cfg.Seed})
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	tables, err := gamedata.LoadTables()
	if err != nil {
		log.Fatalf("Failed to load game data: %v", err)
	}

	session := game.NewSession(ctx, cfg, tables)

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	runErr := ui.NewApp(screen, session).Run(ctx)
	screen.Close()

	// Leave the last few lines of the adventure on the terminal.
	for _, e := range session.Snapshot().Events {
		fmt.Println(e)
	}
	fmt.Printf("Seed: %d\n", session.Seed())

	if runErr != nil {
		log.Fatalf("Game error: %v", runErr)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	// The .env file may hold an unexpanded variable reference, so the headers
	// are built here from the API key.
	apiKey := os.Getenv("HONEYCOMB_VALDMIR_API_KEY")
	dataset := os.Getenv("HONEYCOMB_VALDMIR_DATASET")
	if dataset == "" {
		dataset = "valdmir"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
