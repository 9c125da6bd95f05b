// Package riscv reserves the RISC-V architecture endpoint. Construction
// time validation is real, but the decode operation is not implemented
// yet: every call fails with the unimplemented error so the boundary can
// tell "not yet functional" apart from "option rejected".
package riscv

import (
	"github.com/maxwase/disasmd/disasm"
	"github.com/maxwase/disasmd/format"
)

var _ disasm.Disassembler[disasm.NoError] = &RISCV{}

// RISCV is the RISC-V disassembler placeholder.
type RISCV struct {
	width disasm.BitWidth
}

// New returns a new RISC-V disassembler. Supported widths are 16 and
// 32 bit.
func New(width disasm.BitWidth) (*RISCV, *disasm.Error[disasm.NoError]) {
	switch width {
	case disasm.Width16, disasm.Width32:
		return &RISCV{width: width}, nil
	default:
		return nil, disasm.NewWrongBitWidth[disasm.NoError](width)
	}
}

// Disassemble implements disasm.Disassembler. Option validation runs
// first, unsupported options outrank the unimplemented failure; after
// that the call always fails without inspecting the buffer.
func (r *RISCV) Disassemble(_ []byte, opts format.Options) ([]string, *disasm.Error[disasm.NoError]) {
	if err := disasm.ValidateOptions[disasm.NoError](opts); err != nil {
		return nil, err
	}
	return nil, disasm.NewUnimplemented[disasm.NoError]()
}
