// Package main implements token-generator, which prints a signed bearer token
// for the HTTP server.
//
// Usage:
//
//	token-generator <subject>
//
// The signing secret and lifetime come from the same configuration as the
// server (FRIDGEMATE_AUTH_JWT_SECRET, FRIDGEMATE_AUTH_TOKEN_LIFETIME_MINUTES).
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ntua-el20123/fridge-mate-app/internal/config"
	"github.com/ntua-el20123/fridge-mate-app/internal/platform/logger"
	"github.com/ntua-el20123/fridge-mate-app/internal/service/auth"
)

const usage = "usage: token-generator <subject>"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 || args[0] == "" {
		fmt.Fprintln(stderr, usage)
		return 2
	}

	token, err := generate(ctx, args[0], stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, token)
	return 0
}

func generate(ctx context.Context, subject string, logOutput io.Writer) (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load configuration: %w", err)
	}

	if !cfg.Auth.AuthEnabled() {
		return "", errors.New("auth.jwt_secret is not configured")
	}

	l, err := logger.Setup(logger.LoggerConfig{Level: cfg.Log.Level, Output: logOutput})
	if err != nil {
		return "", fmt.Errorf("failed to set up logger: %w", err)
	}

	svc, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return "", err
	}

	token, err := svc.GenerateToken(logger.WithLogger(ctx, l), subject)
	if err != nil {
		return "", err
	}

	l.Info("token generated",
		"subject", subject,
		"lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)
	return token, nil
}
