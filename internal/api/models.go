package api

// GenerateRequest defines the payload for the generation endpoint.
type GenerateRequest struct {
	Prompt string `json:"prompt" validate:"required,notblank"`
}

// GenerateResponse carries the generated text. Its JSON shape matches the
// record the command-line tool prints.
type GenerateResponse struct {
	Text string `json:"text"`
}
