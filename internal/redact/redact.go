// Package redact provides utilities for redacting sensitive information from strings
// before they are logged or returned in error responses. Errors coming back from
// the Gemini SDK or the HTTP layer can echo request headers, query strings, or
// tokens; everything that leaves the process through a log line or an error body
// goes through this package first.
package redact

import (
	"regexp"
)

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules are applied in order; earlier rules see the raw input.
var rules = []rule{
	// Google API keys (Gemini, Maps, ...) always start with AIza and are 39 chars.
	{regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`), RedactedKeyPlaceholder},

	// JWTs: three base64url segments, header and payload both start with eyJ.
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), RedactedJWTPlaceholder},

	// Authorization header values.
	{regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9_\-.~+/=]{8,}`), "Bearer " + RedactionPlaceholder},

	// key=..., api_key: ..., x-goog-api-key: ..., secret=..., token=...
	{
		regexp.MustCompile(
			`(?i)(x-goog-api-key|api[_-]?key|secret|token|key)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
		),
		RedactedKeyPlaceholder,
	},

	// password=... in connection strings or payloads.
	{regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`), RedactedCredentialPlaceholder},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
