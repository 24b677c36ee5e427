package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ntua-el20123/fridge-mate-app/internal/api"
	"github.com/ntua-el20123/fridge-mate-app/internal/config"
	"github.com/ntua-el20123/fridge-mate-app/internal/generation"
	"github.com/ntua-el20123/fridge-mate-app/internal/service/auth"
)

// generatorFactory builds the Generator shared by all requests.
type generatorFactory func(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (generation.Generator, error)

// application holds the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	generator       generation.Generator
	generateHandler *api.GenerateHandler
	tokenService    auth.TokenService // nil when authentication is disabled
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	newGenerator generatorFactory,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.generator, err = newGenerator(ctx, logger.With("component", "llm_generator"), cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized successfully", "model", cfg.LLM.ModelName)

	app.generateHandler, err = api.NewGenerateHandler(app.generator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create generate handler: %w", err)
	}

	if cfg.Auth.AuthEnabled() {
		app.tokenService, err = auth.NewTokenService(cfg.Auth)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize token service: %w", err)
		}
		logger.Info("JWT authentication service initialized",
			"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)
	} else {
		logger.Warn("JWT authentication disabled; /api routes are public")
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
