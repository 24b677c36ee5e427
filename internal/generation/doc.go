// Package generation defines the boundary between the application and external
// AI/LLM text-generation services (Gemini). Callers depend on the Generator
// interface and the sentinel errors declared here, never on a provider SDK.
package generation
