package renderer

import (
	"encoding/json"
	"io"
)

// JSONRenderer writes the listing as a JSON array of lines, the same
// shape the HTTP boundary answers with.
type JSONRenderer struct{}

// NewJSONRenderer creates a new instance of JSONRenderer.
func NewJSONRenderer() Renderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) Render(lines []string, output io.Writer) error {
	return json.NewEncoder(output).Encode(lines)
}

func (r *JSONRenderer) Format() string {
	return "json"
}
