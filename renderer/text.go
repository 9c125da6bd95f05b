package renderer

import (
	"fmt"
	"io"
)

// TextRenderer writes the listing as plain text, one instruction per line.
type TextRenderer struct{}

// NewTextRenderer creates a new instance of TextRenderer.
func NewTextRenderer() Renderer {
	return &TextRenderer{}
}

func (r *TextRenderer) Render(lines []string, output io.Writer) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(output, line); err != nil {
			return fmt.Errorf("unable to write listing: %w", err)
		}
	}
	return nil
}

func (r *TextRenderer) Format() string {
	return "text"
}
