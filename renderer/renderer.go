// Package renderer provides a way to render disassembly listings in
// different formats.
package renderer

import "io"

// Renderer defines the interface for rendering disassembled instruction
// lines in different formats.
type Renderer interface {
	// Render writes the instruction lines in the renderer's format to the
	// provided writer.
	Render(lines []string, output io.Writer) error

	// Format returns the name of the output format (e.g., "json", "text").
	Format() string
}
