package gemini

// promptData represents the data passed to the prompt template
type promptData struct {
	// Prompt is the caller's prompt text, inserted verbatim
	Prompt string
}
