// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API for turning prompts into text.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application to Google's external Gemini AI service without
// exposing SDK types to callers.
//
// Key components:
//
// 1. GeminiGenerator:
//   - Implements the generation.Generator interface
//   - Makes exactly one generateContent call per prompt; there is no retry layer
//
// 2. Prompt Management:
//   - Optionally loads a text/template file that wraps the caller's prompt
//
// 3. Response Processing:
//   - Concatenates the text parts of the first candidate
//   - Classifies blocked, empty, and malformed responses into generation errors
//
// The package depends on Google's google.golang.org/genai client library for
// authentication, request formatting, and transport.
package gemini
