package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/template"

	"github.com/ntua-el20123/fridge-mate-app/internal/config"
	"github.com/ntua-el20123/fridge-mate-app/internal/generation"
	"github.com/ntua-el20123/fridge-mate-app/internal/redact"
	"google.golang.org/genai"
)

// contentGenerator is the subset of *genai.Models used by GeminiGenerator.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API.
type GeminiGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// promptTemplate wraps the caller's prompt; nil means the prompt is sent verbatim
	promptTemplate *template.Template

	// models issues generateContent requests
	models contentGenerator

	// model is the name of the Gemini model to use
	model string
}

var _ generation.Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a new instance of GeminiGenerator with the provided dependencies.
//
// Parameters:
//   - ctx: Context for the operation, which can be used for cancellation
//   - logger: A structured logger for operation logging
//   - config: LLM configuration containing API key, model name, and other settings
//
// Returns:
//   - A properly initialized GeminiGenerator or an error if initialization fails
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, config config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	promptTemplate, err := loadPromptTemplate(config.PromptTemplatePath)
	if err != nil {
		return nil, err
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  config.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %s",
			generation.ErrInvalidConfig, redact.Error(err))
	}

	return newGeminiGenerator(logger, config, promptTemplate, client.Models), nil
}

// newGeminiGenerator assembles a generator around an already-built client.
func newGeminiGenerator(
	logger *slog.Logger,
	config config.LLMConfig,
	promptTemplate *template.Template,
	models contentGenerator,
) *GeminiGenerator {
	return &GeminiGenerator{
		logger:         logger,
		config:         config,
		promptTemplate: promptTemplate,
		models:         models,
		model:          config.ModelName,
	}
}

// validateConfig checks the settings the Gemini client cannot work without.
func validateConfig(config config.LLMConfig) error {
	if config.GeminiAPIKey == "" {
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if config.ModelName == "" {
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	return nil
}

// loadPromptTemplate reads and parses the template at path. An empty path
// yields a nil template.
func loadPromptTemplate(path string) (*template.Template, error) {
	if path == "" {
		return nil, nil
	}

	templateContent, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
			generation.ErrInvalidConfig, path, err)
	}

	promptTemplate, err := template.New("prompt").Option("missingkey=error").Parse(string(templateContent))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v",
			generation.ErrInvalidConfig, err)
	}

	return promptTemplate, nil
}

// createPrompt applies the prompt template, if any, to the caller's prompt.
func (g *GeminiGenerator) createPrompt(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}

	if g.promptTemplate == nil {
		return prompt, nil
	}

	g.logger.DebugContext(ctx, "Generating prompt from template",
		"prompt_length", len(prompt),
		"template_name", g.promptTemplate.Name())

	var promptBuffer bytes.Buffer
	if err := g.promptTemplate.Execute(&promptBuffer, promptData{Prompt: prompt}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	rendered := promptBuffer.String()
	if strings.TrimSpace(rendered) == "" {
		return "", generation.ErrEmptyPrompt
	}

	g.logger.DebugContext(ctx, "Prompt generated successfully",
		"prompt_length", len(rendered))

	return rendered, nil
}

// Generate sends prompt to the configured Gemini model and returns the text of
// the first candidate. It makes a single API call.
//
// Parameters:
//   - ctx: Context for the operation, which can be used for cancellation
//   - prompt: The caller's prompt
//
// Returns:
//   - The generated text
//   - An error wrapping one of the generation package sentinels
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	fullPrompt, err := g.createPrompt(ctx, prompt)
	if err != nil {
		if errors.Is(err, generation.ErrEmptyPrompt) {
			return "", err
		}
		g.logger.ErrorContext(ctx, "Failed to create prompt", "error", err)
		return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	g.logger.InfoContext(ctx, "Making Gemini API call",
		"model", g.model,
		"prompt_length", len(fullPrompt))

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(fullPrompt), nil)
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"model", g.model,
			"error", redact.Error(err))
		return "", fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
	}

	text, err := extractText(resp)
	if err != nil {
		g.logger.WarnContext(ctx, "Gemini API returned an unusable response",
			"model", g.model,
			"error", err)
		return "", err
	}

	g.logger.InfoContext(ctx, "Gemini API call successful",
		"model", g.model,
		"text_length", len(text))

	return text, nil
}

// extractText validates resp and concatenates the text parts of its first
// candidate, skipping thought parts.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)",
			generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: response blocked by safety filters", generation.ErrContentBlocked)
	}

	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		text.WriteString(part.Text)
	}

	if text.Len() == 0 {
		return "", fmt.Errorf("%w: response contains no text (finish reason %q)",
			generation.ErrInvalidResponse, candidate.FinishReason)
	}

	return text.String(), nil
}

// NewGenerator creates the Gemini-backed generation.Generator used by the
// application binaries.
//
// Parameters:
//   - ctx: Context for initialization, which may include timeouts or cancellation
//   - logger: A logger for recording operations
//   - config: Configuration information including API keys and settings
//
// Returns:
//   - A generation.Generator implementation
//   - An error if initialization fails
func NewGenerator(
	ctx context.Context,
	logger *slog.Logger,
	config config.LLMConfig,
) (generation.Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	logger.DebugContext(ctx, "Initializing Gemini generator",
		"model", config.ModelName,
		"prompt_template", config.PromptTemplatePath != "",
		"custom_base_url", config.BaseURL != "")

	generator, err := NewGeminiGenerator(ctx, logger, config)
	if err != nil {
		return nil, err
	}

	return generator, nil
}
