// Package x86 implements the disassembly capability for the x86
// instruction set family on top of the x/arch decode engine. Two rendering
// syntaxes are supported, Intel and AT&T, across the 16, 32 and 64 bit
// widths.
package x86

import (
	"fmt"
	"strings"

	"golang.org/x/arch/x86/x86asm"

	"github.com/maxwase/disasmd/disasm"
	"github.com/maxwase/disasmd/format"
)

// addressDigits is the rendered width of a displayed address in hex
// digits, fixed across all bit widths.
const addressDigits = 8

var _ disasm.Disassembler[Error] = &X86{}

// X86 disassembles x86 machine code in the configured syntax and width.
type X86 struct {
	syntax Syntax
	width  disasm.BitWidth
}

// New returns a new x86 disassembler. Supported widths are 16, 32 and
// 64 bit.
func New(syntax Syntax, width disasm.BitWidth) (*X86, *disasm.Error[Error]) {
	switch width {
	case disasm.Width16, disasm.Width32, disasm.Width64:
		return &X86{syntax: syntax, width: width}, nil
	default:
		return nil, disasm.NewWrongBitWidth[Error](width)
	}
}

// Disassemble implements disasm.Disassembler.
func (x *X86) Disassemble(data []byte, opts format.Options) ([]string, *disasm.Error[Error]) {
	if err := disasm.ValidateOptions[Error](opts); err != nil {
		return nil, err
	}

	address := opts.Address()
	lines := []string{}

	for pc := uint64(0); pc < uint64(len(data)); {
		// The stop boundary is exclusive here: an instruction landing
		// exactly on it is not emitted. The 6502 adapter keeps its
		// inclusive boundary; callers rely on the difference.
		if stop, ok := opts.StopAt(); ok && pc >= stop {
			break
		}

		text, size := x.decode(data[pc:], pc)

		if opts.UpperCase() {
			text = strings.ToUpper(text)
		} else {
			text = strings.ToLower(text)
		}

		if !address.Omitted() {
			ip := pc + address.Offset()
			if opts.UpperCase() {
				text = fmt.Sprintf("0x%0*X %s", addressDigits, ip, text)
			} else {
				text = fmt.Sprintf("0x%0*x %s", addressDigits, ip, text)
			}
		}

		lines = append(lines, text)
		pc += uint64(size)
	}

	return lines, nil
}

// decode renders one instruction at pc. When the engine returns a decode
// error (truncated or unrecognized input) the byte is consumed alone and
// rendered as (bad). The engine accepts more than objdump does, prefix-only
// input for one, so not every odd byte takes this path.
func (x *X86) decode(code []byte, pc uint64) (string, int) {
	inst, err := x86asm.Decode(code, int(x.width))
	if err != nil {
		return "(bad)", 1
	}

	switch x.syntax {
	case SyntaxATT:
		return x86asm.GNUSyntax(inst, pc, nil), inst.Len
	default:
		return x86asm.IntelSyntax(inst, pc, nil), inst.Len
	}
}
