// Command venustags collects every lending-market contract tag for one chain
// from its markets subgraph and writes the result as JSON for the registry
// tooling. It loads configuration, validates it, sets up signal handling,
// and performs a single sequential collection pass.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/alanyoungcy/venustags/internal/config"
	"github.com/alanyoungcy/venustags/internal/pipeline"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to configuration file")
	chainID := flag.String("chain", "", "chain id to collect (overrides config)")
	outPath := flag.String("out", "", "output JSON path (overrides config, \"-\" for stdout)")
	flag.Parse()

	// Setup structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration.
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config",
			slog.String("path", *configPath),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	// Flag overrides.
	if *chainID != "" {
		cfg.Subgraph.ChainID = *chainID
	}
	if *outPath != "" {
		cfg.Output.Path = *outPath
		if *outPath == "-" {
			cfg.Output.Path = ""
		}
	}

	// Set log level from config.
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	logger = logger.With(slog.String("run_id", uuid.NewString()))
	slog.SetDefault(logger)

	// Validate configuration.
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("contract tag collection starting",
		slog.String("chain_id", cfg.Subgraph.ChainID),
		slog.String("config", *configPath),
	)

	// Setup signal handling so a SIGINT/SIGTERM aborts the in-flight page.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tags, err := pipeline.Collect(ctx, cfg.Subgraph.ChainID, cfg.Subgraph.APIKey, cfg.Subgraph.HTTPTimeout.Duration, logger)
	if err != nil {
		logger.Error("contract tag collection failed", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(tags, "", "  ")
	if err != nil {
		logger.Error("failed to encode tags", slog.String("error", err.Error()))
		os.Exit(1)
	}
	out = append(out, '\n')

	if cfg.Output.Path == "" {
		if _, err := os.Stdout.Write(out); err != nil {
			logger.Error("failed to write tags", slog.String("error", err.Error()))
			os.Exit(1)
		}
	} else {
		if err := os.WriteFile(cfg.Output.Path, out, 0o644); err != nil {
			logger.Error("failed to write tags",
				slog.String("path", cfg.Output.Path),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	logger.Info("contract tag collection complete",
		slog.String("chain_id", cfg.Subgraph.ChainID),
		slog.Int("tags", len(tags)),
	)
}
