// Package dispatch implements the prompt dispatcher: it hands one prompt to a
// generation.Generator and writes the generated text as a single JSON record,
// {"text": "..."}, to an output stream.
package dispatch
