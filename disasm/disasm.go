// Package disasm defines the architecture independent disassembly contract:
// the capability interface implemented by every architecture adapter, the
// supported bit widths and the error taxonomy shared between adapters.
package disasm

import (
	"encoding/json"
	"fmt"

	"github.com/maxwase/disasmd/format"
)

// BitWidth is an architecture bit width. Each adapter validates the
// requested width against its own supported subset.
type BitWidth uint8

const (
	Width8  BitWidth = 8
	Width16 BitWidth = 16
	Width32 BitWidth = 32
	Width64 BitWidth = 64
)

func (w BitWidth) String() string {
	return fmt.Sprintf("%d bit", uint8(w))
}

// Valid reports whether w is one of the supported bit widths.
func (w BitWidth) Valid() bool {
	switch w {
	case Width8, Width16, Width32, Width64:
		return true
	default:
		return false
	}
}

// UnmarshalJSON validates the numeric width against the closed set.
func (w *BitWidth) UnmarshalJSON(data []byte) error {
	var value uint8
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("failed to parse bit width: %w", err)
	}

	width := BitWidth(value)
	if !width.Valid() {
		return fmt.Errorf("invalid bit width: %d", value)
	}
	*w = width
	return nil
}

// Disassembler is the capability implemented by every architecture adapter,
// generic over the adapter specific error type E.
//
// Disassemble decodes data into formatted instruction lines shaped by opts.
// The returned lines are ordered by ascending instruction address. An empty
// buffer yields an empty result, not an error. Option validation happens
// before any decode work and a failed call produces no partial output.
//
// Adapters hold only construction time configuration, so a single adapter
// is safe for concurrent use and invocations are independent.
type Disassembler[E ArchError] interface {
	Disassemble(data []byte, opts format.Options) ([]string, *Error[E])
}

// ValidateOptions rejects requested options that no adapter implements yet.
// Cycle display and symbol substitution are forward declared in the options
// model; an adapter that learns one of them replaces this check at its
// single call site.
func ValidateOptions[E ArchError](opts format.Options) *Error[E] {
	if opts.Cycles() || opts.SymbolTable() != nil {
		return NewUnsupportedOption[E]()
	}
	return nil
}
