package mos6502

import "github.com/retroenv/retrogolib/arch/cpu/m6502"

// opcodeSize returns the instruction length in bytes for an addressing
// mode.
func opcodeSize(mode m6502.AddressingMode) int {
	switch mode {
	case m6502.ImpliedAddressing, m6502.AccumulatorAddressing:
		return 1
	case m6502.AbsoluteAddressing, m6502.AbsoluteXAddressing,
		m6502.AbsoluteYAddressing, m6502.IndirectAddressing:
		return 3
	default:
		return 2
	}
}

// readParam translates the operand bytes of an instruction into the decode
// engine's parameter types. addr is the instruction address, used to
// resolve relative branch targets. Implied instructions have no parameter.
func readParam(mode m6502.AddressingMode, raw []byte, addr uint16) any {
	switch mode {
	case m6502.ImmediateAddressing:
		return int(raw[1])
	case m6502.AccumulatorAddressing:
		return m6502.Accumulator(0)
	case m6502.AbsoluteAddressing:
		return m6502.Absolute(operandWord(raw))
	case m6502.AbsoluteXAddressing:
		return m6502.AbsoluteX(operandWord(raw))
	case m6502.AbsoluteYAddressing:
		return m6502.AbsoluteY(operandWord(raw))
	case m6502.ZeroPageAddressing:
		return m6502.ZeroPage(raw[1])
	case m6502.ZeroPageXAddressing:
		return m6502.ZeroPageX(raw[1])
	case m6502.ZeroPageYAddressing:
		return m6502.ZeroPageY(raw[1])
	case m6502.RelativeAddressing:
		return m6502.Absolute(branchTarget(addr, raw[1]))
	case m6502.IndirectAddressing:
		return m6502.Indirect(operandWord(raw))
	case m6502.IndirectXAddressing:
		return m6502.IndirectX(raw[1])
	case m6502.IndirectYAddressing:
		return m6502.IndirectY(raw[1])
	default:
		return nil
	}
}

// operandWord reads the little endian 16 bit operand of a 3 byte
// instruction.
func operandWord(raw []byte) uint16 {
	return uint16(raw[2])<<8 | uint16(raw[1])
}

// branchTarget resolves a relative branch offset against the address of
// the following instruction.
func branchTarget(addr uint16, offset byte) uint16 {
	target := addr + 2 + uint16(offset)
	if offset >= 0x80 {
		target -= 0x100
	}
	return target
}
