package dispatch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Output is the record written for every successful generation.
type Output struct {
	Text string `json:"text"`
}

// WriteOutput writes out to w as one line of JSON in the form
// {"text": "<text>"}. Non-ASCII and HTML-sensitive characters are written
// literally; only quotes, backslashes, and control characters are escaped.
func WriteOutput(w io.Writer, out Output) error {
	var value bytes.Buffer
	enc := json.NewEncoder(&value)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out.Text); err != nil {
		return fmt.Errorf("failed to encode output text: %w", err)
	}

	var line bytes.Buffer
	line.Grow(value.Len() + 12)
	line.WriteString(`{"text": `)
	line.Write(bytes.TrimRight(value.Bytes(), "\n"))
	line.WriteString("}\n")

	if _, err := w.Write(line.Bytes()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
