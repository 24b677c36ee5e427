// Package main implements the HTTP server that exposes prompt dispatch as
// POST /api/generate, optionally guarded by bearer tokens.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ntua-el20123/fridge-mate-app/internal/config"
	"github.com/ntua-el20123/fridge-mate-app/internal/platform/gemini"
	"github.com/ntua-el20123/fridge-mate-app/internal/platform/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app, err := newApplication(ctx, cfg, appLogger, gemini.NewGenerator)
	if err != nil {
		appLogger.Error("Failed to create application", "error", err)
		stop()
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		appLogger.Error("Server stopped with error", "error", err)
		stop()
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.LLM.RequireAPIKey(); err != nil {
		return nil, nil, err
	}

	l, err := logger.Setup(logger.LoggerConfig{Level: cfg.Log.Level})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
		"model", cfg.LLM.ModelName,
		"auth_enabled", cfg.Auth.AuthEnabled())

	return cfg, l, nil
}
