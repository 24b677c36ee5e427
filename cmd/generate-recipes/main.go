// Package main implements generate-recipes, a command-line tool that sends a
// single prompt to the configured text-generation model and prints the reply
// as a JSON record: {"text": "<generated text>"}.
//
// Usage:
//
//	generate-recipes "<prompt>"
//
// The Gemini API key is read from FRIDGEMATE_LLM_GEMINI_API_KEY, falling back
// to GEMINI_API_KEY. Logs go to stderr so stdout carries only the record.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ntua-el20123/fridge-mate-app/internal/config"
	"github.com/ntua-el20123/fridge-mate-app/internal/dispatch"
	"github.com/ntua-el20123/fridge-mate-app/internal/generation"
	"github.com/ntua-el20123/fridge-mate-app/internal/platform/gemini"
	"github.com/ntua-el20123/fridge-mate-app/internal/platform/logger"
	"github.com/ntua-el20123/fridge-mate-app/internal/redact"
)

// Exit codes
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

const usage = `usage: generate-recipes "<prompt>"`

// generatorFactory builds the Generator used for the single dispatch.
type generatorFactory func(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (generation.Generator, error)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, gemini.NewGenerator)
	stop()
	os.Exit(code)
}

// run executes one dispatch and returns the process exit code.
// stdout receives only the output record; everything else goes to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, newGenerator generatorFactory) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, usage)
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		return fail(stderr, fmt.Errorf("failed to load configuration: %w", err))
	}
	if err := cfg.LLM.RequireAPIKey(); err != nil {
		return fail(stderr, err)
	}

	log, err := logger.Setup(logger.LoggerConfig{
		Level:  cfg.Log.Level,
		Output: stderr,
	})
	if err != nil {
		return fail(stderr, fmt.Errorf("failed to set up logger: %w", err))
	}

	gen, err := newGenerator(ctx, log.With("component", "llm_generator"), cfg.LLM)
	if err != nil {
		return fail(stderr, fmt.Errorf("failed to initialize generator: %w", err))
	}

	d, err := dispatch.New(gen, stdout, log)
	if err != nil {
		return fail(stderr, err)
	}

	if err := d.Dispatch(ctx, args[0]); err != nil {
		return fail(stderr, err)
	}

	return exitOK
}

// fail reports err on stderr and returns the failure exit code.
func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "error: %s\n", redact.Error(err))
	return exitFailure
}
