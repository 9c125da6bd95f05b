package server

import (
	"github.com/maxwase/disasmd/disasm"
	"github.com/maxwase/disasmd/format"
)

// Payload is the common request envelope of the disassembly endpoints.
type Payload struct {
	// Bytes is the machine code to decode, base64 encoded on the wire.
	Bytes []byte `json:"bytes"`
	// Width selects the architecture bit width.
	Width disasm.BitWidth `json:"width"`
	// Syntax selects a rendering syntax on adapters that support more
	// than one; other adapters ignore it.
	Syntax string `json:"syntax,omitempty"`
	// Format carries the output formatting options.
	Format *format.Options `json:"format,omitempty"`
}

// options returns the requested formatting options, falling back to the
// defaults when the request carries none.
func (p *Payload) options() format.Options {
	if p.Format == nil {
		return format.New()
	}
	return *p.Format
}
