// Package mos6502 implements the disassembly capability for the MOS 6502
// processor family on top of the retrogolib decode engine.
package mos6502

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/arch/cpu/m6502"
	"github.com/retroenv/retrogolib/arch/system/nes/parameter"

	"github.com/maxwase/disasmd/disasm"
	"github.com/maxwase/disasmd/format"
)

// rawBytesWidth is the width of the raw encoding column, sized for the
// longest 6502 instruction rendered as "xx xx xx".
const rawBytesWidth = 8

var _ disasm.Disassembler[disasm.NoError] = &MOS6502{}

// MOS6502 disassembles 6502 machine code. The opcode tables of the
// underlying engine have no failure mode, so the architecture error type
// is disasm.NoError.
type MOS6502 struct {
	converter parameter.Converter
}

// New returns a new 6502 disassembler.
func New() *MOS6502 {
	return &MOS6502{converter: parameter.New(parameter.Config{})}
}

// Disassemble implements disasm.Disassembler.
func (m *MOS6502) Disassemble(data []byte, opts format.Options) ([]string, *disasm.Error[disasm.NoError]) {
	if err := disasm.ValidateOptions[disasm.NoError](opts); err != nil {
		return nil, err
	}

	address := opts.Address()
	// Addresses are tracked in the native 16 bit width even when their
	// display is suppressed.
	base := uint16(address.Offset())
	if address.Omitted() {
		base = 0
	}

	lines := []string{}
	for pos := 0; pos < len(data); {
		addr := base + uint16(pos)
		// The stop boundary is inclusive: an instruction landing exactly
		// on it is still emitted.
		if stop, ok := opts.StopAt(); ok && uint64(addr) > stop {
			break
		}

		code, raw := m.decode(data, pos, addr)

		var line string
		switch {
		case address.Omitted() && code == "":
			line = hexBytes(raw)
		case address.Omitted():
			line = code
		case code == "":
			line = fmt.Sprintf("%04X %s", addr, hexBytes(raw))
		default:
			line = fmt.Sprintf("%04X %-*s %s", addr, rawBytesWidth, hexBytes(raw), code)
		}

		if opts.UpperCase() {
			line = strings.ToUpper(line)
		} else {
			line = strings.ToLower(line)
		}

		// TODO: replace addresses using the symbol table once substitution
		// is supported; ValidateOptions rejects such requests until then.
		lines = append(lines, line)
		pos += len(raw)
	}

	return lines, nil
}

// decode renders the instruction at pos. It returns the instruction text
// and the consumed raw bytes. Unknown opcodes and instructions truncated
// by the end of the buffer consume a single byte and return empty text:
// such bytes are shown as raw data.
func (m *MOS6502) decode(data []byte, pos int, addr uint16) (string, []byte) {
	opcode := m6502.Opcodes[data[pos]]
	if opcode.Instruction == nil {
		return "", data[pos : pos+1]
	}

	size := opcodeSize(opcode.Addressing)
	if pos+size > len(data) {
		return "", data[pos : pos+1]
	}
	raw := data[pos : pos+size]

	name := opcode.Instruction.Name
	param := readParam(opcode.Addressing, raw, addr)
	if param == nil {
		return name, raw
	}

	text, err := parameter.String(m.converter, opcode.Addressing, param)
	if err != nil {
		// Unreachable: readParam only produces parameter types the
		// converter knows.
		return "", data[pos : pos+1]
	}
	return name + " " + text, raw
}

func hexBytes(raw []byte) string {
	parts := make([]string, 0, len(raw))
	for _, b := range raw {
		parts = append(parts, fmt.Sprintf("%02X", b))
	}
	return strings.Join(parts, " ")
}
