package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ntua-el20123/fridge-mate-app/internal/generation"
	"github.com/ntua-el20123/fridge-mate-app/internal/redact"
)

// Dispatcher sends prompts to a Generator and writes each result to out.
type Dispatcher struct {
	generator generation.Generator
	out       io.Writer
	logger    *slog.Logger
}

// New creates a Dispatcher. All arguments are required.
func New(generator generation.Generator, out io.Writer, logger *slog.Logger) (*Dispatcher, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if out == nil {
		return nil, errors.New("output writer cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Dispatcher{
		generator: generator,
		out:       out,
		logger:    logger,
	}, nil
}

// Dispatch generates text for prompt and writes it as an Output record.
// Nothing is written when generation fails.
func (d *Dispatcher) Dispatch(ctx context.Context, prompt string) error {
	if prompt == "" {
		return generation.ErrEmptyPrompt
	}

	text, err := d.generator.Generate(ctx, prompt)
	if err != nil {
		d.logger.ErrorContext(ctx, "generation failed", "error", redact.Error(err))
		return err
	}

	if text == "" {
		return fmt.Errorf("%w: generator returned empty text", generation.ErrInvalidResponse)
	}

	if err := WriteOutput(d.out, Output{Text: text}); err != nil {
		d.logger.ErrorContext(ctx, "failed to write output", "error", err)
		return err
	}

	d.logger.DebugContext(ctx, "output written", "text_length", len(text))
	return nil
}
