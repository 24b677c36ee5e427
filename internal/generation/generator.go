package generation

import (
	"context"
)

// Generator defines the interface for turning a prompt into generated text.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type Generator interface {
	// Generate submits prompt to the language model and returns the generated text.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can be used for cancellation
	//   - prompt: The caller's prompt; must not be empty
	//
	// Returns:
	//   - The generated text, never empty on success
	//   - An error if the generation fails for any reason (see errors.go for specific types)
	Generate(ctx context.Context, prompt string) (string, error)
}
