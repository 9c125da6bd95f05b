package x86

import (
	"fmt"
	"strings"

	"github.com/maxwase/disasmd/disasm"
)

// Error is the x86 specific disassembler error.
type Error struct {
	syntax string
}

func (e Error) Error() string {
	return fmt.Sprintf("unsupported syntax: %s", e.syntax)
}

// Category implements disasm.ArchError: an unrecognized syntax is a caller
// mistake.
func (Error) Category() disasm.Category { return disasm.CategoryBadRequest }

// Syntax is an output disassembly syntax.
type Syntax int

const (
	// SyntaxIntel is the operand-last Intel convention, the default.
	SyntaxIntel Syntax = iota
	// SyntaxATT is the operand-first AT&T convention.
	SyntaxATT
)

// ParseSyntax parses a syntax name case-insensitively. Intel has no alias;
// AT&T is accepted as both "att" and "at&t". An unrecognized name is never
// silently defaulted.
func ParseSyntax(s string) (Syntax, *disasm.Error[Error]) {
	switch strings.ToLower(s) {
	case "intel":
		return SyntaxIntel, nil
	case "att", "at&t":
		return SyntaxATT, nil
	default:
		return 0, disasm.NewArch(Error{syntax: s})
	}
}
