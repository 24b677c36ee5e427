package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/ntua-el20123/fridge-mate-app/internal/generation"
)

// MapErrorToStatusCode maps generation errors to HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, generation.ErrEmptyPrompt):
		return http.StatusBadRequest

	case errors.Is(err, generation.ErrContentBlocked):
		return http.StatusUnprocessableEntity

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrInvalidResponse):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-friendly message for err that never
// includes upstream error text.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, generation.ErrEmptyPrompt):
		return "Prompt cannot be empty"

	case errors.Is(err, generation.ErrContentBlocked):
		return "The request was blocked by content safety filters"

	case errors.Is(err, context.DeadlineExceeded):
		return "The generation service timed out"

	case errors.Is(err, generation.ErrGenerationFailed):
		return "The generation service request failed"

	case errors.Is(err, generation.ErrInvalidResponse):
		return "The generation service returned an unusable response"

	default:
		return "An unexpected error occurred"
	}
}
