package riscv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxwase/disasmd/disasm"
	"github.com/maxwase/disasmd/format"
)

func TestNew(t *testing.T) {
	for _, width := range []disasm.BitWidth{disasm.Width16, disasm.Width32} {
		dis, err := New(width)
		require.Nil(t, err)
		require.NotNil(t, dis)
	}

	for _, width := range []disasm.BitWidth{disasm.Width8, disasm.Width64} {
		dis, err := New(width)
		assert.Nil(t, dis)
		require.NotNil(t, err)
		assert.Equal(t, disasm.KindWrongBitWidth, err.Kind())
		assert.Equal(t, width, err.Width())
	}
}

func TestDisassembleUnimplemented(t *testing.T) {
	dis, err := New(disasm.Width32)
	require.Nil(t, err)

	lines, derr := dis.Disassemble([]byte{0x13, 0x00, 0x00, 0x00}, format.New())
	require.NotNil(t, derr)
	assert.Equal(t, disasm.KindUnimplemented, derr.Kind())
	assert.Equal(t, disasm.CategoryNotImplemented, derr.Category())
	assert.Nil(t, lines)
}

// Option validation runs before the unimplemented failure.
func TestDisassembleRejectsOptionsFirst(t *testing.T) {
	dis, err := New(disasm.Width16)
	require.Nil(t, err)

	lines, derr := dis.Disassemble(nil, format.New().WithCycles(true))
	require.NotNil(t, derr)
	assert.Equal(t, disasm.KindUnsupportedOption, derr.Kind())
	assert.Nil(t, lines)
}
