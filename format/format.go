// Package format models the output formatting options shared by all
// architecture adapters: address display, early termination, casing and
// symbol substitution.
package format

// ShowAddress selects how instruction addresses are displayed.
type ShowAddress struct {
	omit   bool
	offset uint64
}

// ShowAddressStart displays addresses starting at offset.
func ShowAddressStart(offset uint64) ShowAddress {
	return ShowAddress{offset: offset}
}

// ShowAddressNone omits addresses from the output.
func ShowAddressNone() ShowAddress {
	return ShowAddress{omit: true}
}

// Omitted reports whether addresses are omitted from the output.
func (s ShowAddress) Omitted() bool { return s.omit }

// Offset returns the display address of the first instruction.
func (s ShowAddress) Offset() uint64 { return s.offset }

// Options carries the output formatting configuration. It is built with New
// and the fluent With methods and is read-only input afterwards; adapters
// never mutate it.
type Options struct {
	address   ShowAddress
	stopAt    uint64
	hasStop   bool
	upperCase bool
	cycles    bool
	symbols   map[SymbolInfo]string
}

// New returns the default options: addresses shown starting at zero, upper
// case output, no stop address, no cycle display and no symbol table.
func New() Options {
	return Options{upperCase: true}
}

// WithAddresses selects the address display mode.
func (o Options) WithAddresses(address ShowAddress) Options {
	o.address = address
	return o
}

// WithStop halts the output around the given instruction address. Whether
// the boundary itself is included is adapter specific.
func (o Options) WithStop(stop uint64) Options {
	o.stopAt = stop
	o.hasStop = true
	return o
}

// WithUpperCase chooses the case of the output.
func (o Options) WithUpperCase(upper bool) Options {
	o.upperCase = upper
	return o
}

// WithCycles requests instruction cycle counts in the output.
func (o Options) WithCycles(cycles bool) Options {
	o.cycles = cycles
	return o
}

// WithSymbolTable provides display names for symbols.
func (o Options) WithSymbolTable(table map[SymbolInfo]string) Options {
	o.symbols = table
	return o
}

// Address returns the address display mode.
func (o Options) Address() ShowAddress { return o.address }

// StopAt returns the stop address and whether one is set.
func (o Options) StopAt() (uint64, bool) { return o.stopAt, o.hasStop }

// UpperCase reports whether the output is rendered in upper case.
func (o Options) UpperCase() bool { return o.upperCase }

// Cycles reports whether instruction cycle counts were requested.
func (o Options) Cycles() bool { return o.cycles }

// SymbolTable returns the symbol display names, nil if none were provided.
func (o Options) SymbolTable() map[SymbolInfo]string { return o.symbols }
