package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ntua-el20123/fridge-mate-app/internal/api/shared"
	"github.com/ntua-el20123/fridge-mate-app/internal/generation"
	"github.com/ntua-el20123/fridge-mate-app/internal/platform/logger"
)

// GenerateHandler handles prompt dispatch requests.
type GenerateHandler struct {
	generator generation.Generator
	logger    *slog.Logger
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(generator generation.Generator, logger *slog.Logger) (*GenerateHandler, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &GenerateHandler{
		generator: generator,
		logger:    logger.With("component", "generate_handler"),
	}, nil
}

// Generate handles POST /api/generate requests.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req GenerateRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, shared.ValidationMessage(err), err)
		return
	}

	subject, _ := shared.GetSubject(r.Context())
	log.Debug("dispatching prompt",
		"prompt_length", len(req.Prompt),
		"subject", subject)

	text, err := h.generator.Generate(r.Context(), req.Prompt)
	if err == nil && text == "" {
		err = generation.ErrInvalidResponse
	}
	if err != nil {
		status := MapErrorToStatusCode(err)
		var opts []shared.ResponseOption
		if status == http.StatusUnprocessableEntity {
			// Safety blocks are surfaced to operators at WARN.
			opts = append(opts, shared.WithElevatedLogLevel())
		}
		shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err, opts...)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateResponse{Text: text})
}

// Health handles GET /health requests.
func (h *GenerateHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Error("failed to write health check response", "error", err)
	}
}
