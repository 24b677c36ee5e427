package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrEmptyPrompt is returned when the prompt is empty
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrGenerationFailed is returned when the call to the language model fails,
	// e.g. network or authentication errors
	ErrGenerationFailed = errors.New("failed to generate text from prompt")

	// ErrInvalidResponse is returned when the LLM response is missing, malformed, or empty
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
