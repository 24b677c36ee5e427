package config

import "errors"

// ErrMissingAPIKey is returned by RequireAPIKey when no Gemini API key is set.
var ErrMissingAPIKey = errors.New(
	"gemini API key is not configured (set FRIDGEMATE_LLM_GEMINI_API_KEY or GEMINI_API_KEY)")

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Log    LogConfig    `mapstructure:"log"    validate:"required"`
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// GeminiAPIKey authenticates against the Gemini API. Never set in code or config
	// files checked into source control. Only binaries that call Gemini require it;
	// see RequireAPIKey.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`

	// ModelName is the Gemini model used for generation.
	ModelName string `mapstructure:"model_name" validate:"required"`

	// PromptTemplatePath optionally points to a text/template file that wraps the
	// caller's prompt. The template receives {{.Prompt}}.
	PromptTemplatePath string `mapstructure:"prompt_template_path"`

	// BaseURL overrides the Gemini API endpoint (proxies, local fakes).
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

// RequireAPIKey reports ErrMissingAPIKey when GeminiAPIKey is empty.
func (c LLMConfig) RequireAPIKey() error {
	if c.GeminiAPIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// ServerConfig contains all server-related configuration settings.
// Only the HTTP server binary reads it.
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"required,gt=0,lt=65536"`
}

// AuthConfig contains bearer-token settings for the HTTP server.
// An empty JWTSecret disables authentication.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"omitempty,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"gt=0"`
}

// AuthEnabled reports whether the HTTP server should require bearer tokens.
func (c AuthConfig) AuthEnabled() bool {
	return c.JWTSecret != ""
}
