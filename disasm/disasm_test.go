package disasm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxwase/disasmd/format"
)

func TestBitWidthString(t *testing.T) {
	assert.Equal(t, "8 bit", Width8.String())
	assert.Equal(t, "16 bit", Width16.String())
	assert.Equal(t, "32 bit", Width32.String())
	assert.Equal(t, "64 bit", Width64.String())
}

func TestBitWidthValid(t *testing.T) {
	for _, width := range []BitWidth{Width8, Width16, Width32, Width64} {
		assert.True(t, width.Valid())
	}
	for _, width := range []BitWidth{0, 1, 7, 24, 128} {
		assert.False(t, BitWidth(width).Valid())
	}
}

func TestBitWidthUnmarshalJSON(t *testing.T) {
	var width BitWidth
	require.NoError(t, json.Unmarshal([]byte("32"), &width))
	assert.Equal(t, Width32, width)

	assert.Error(t, json.Unmarshal([]byte("24"), &width))
	assert.Error(t, json.Unmarshal([]byte(`"wide"`), &width))
}

func TestErrorMessages(t *testing.T) {
	assert.EqualError(t, NewUnsupportedOption[NoError](), "unsupported disassembler option")
	assert.EqualError(t, NewUnimplemented[NoError](), "the implementation has not been done")
	assert.EqualError(t, NewMissingInfo[NoError](), "missing disassembler option")
	assert.EqualError(t, NewWrongBitWidth[NoError](Width8), "invalid architecture bit width: 8 bit")
}

func TestErrorCategories(t *testing.T) {
	assert.Equal(t, CategoryNotImplemented, NewUnsupportedOption[NoError]().Category())
	assert.Equal(t, CategoryNotImplemented, NewUnimplemented[NoError]().Category())
	assert.Equal(t, CategoryBadRequest, NewMissingInfo[NoError]().Category())
	assert.Equal(t, CategoryBadRequest, NewWrongBitWidth[NoError](Width64).Category())
}

// brokenEngine is a stand-in architecture error for the delegation tests.
type brokenEngine struct {
	category Category
}

func (e brokenEngine) Error() string      { return "engine gave up" }
func (e brokenEngine) Category() Category { return e.category }

func TestArchErrorDelegation(t *testing.T) {
	for _, category := range []Category{CategoryBadRequest, CategoryNotImplemented, CategoryInternal} {
		err := NewArch(brokenEngine{category: category})
		assert.Equal(t, KindArch, err.Kind())
		assert.Equal(t, category, err.Category())
		assert.EqualError(t, err, "engine gave up")
	}
}

func TestErrorUnwrap(t *testing.T) {
	arch := brokenEngine{category: CategoryInternal}
	assert.Equal(t, arch, NewArch(arch).Unwrap())
	assert.Nil(t, NewUnimplemented[brokenEngine]().Unwrap())
}

func TestWrongBitWidthKeepsWidth(t *testing.T) {
	err := NewWrongBitWidth[NoError](Width16)
	assert.Equal(t, KindWrongBitWidth, err.Kind())
	assert.Equal(t, Width16, err.Width())
}

func TestValidateOptions(t *testing.T) {
	assert.Nil(t, ValidateOptions[NoError](format.New()))
	assert.Nil(t, ValidateOptions[NoError](format.New().WithStop(16).WithUpperCase(false)))

	err := ValidateOptions[NoError](format.New().WithCycles(true))
	require.NotNil(t, err)
	assert.Equal(t, KindUnsupportedOption, err.Kind())

	table := map[format.SymbolInfo]string{format.NewSymbolInfo(0x100, format.ScopeGlobal): "reset"}
	err = ValidateOptions[NoError](format.New().WithSymbolTable(table))
	require.NotNil(t, err)
	assert.Equal(t, KindUnsupportedOption, err.Kind())
}
