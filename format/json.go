package format

import (
	"encoding/json"
	"fmt"
)

// Address display modes on the wire.
const (
	addressModeStart = "start"
	addressModeOmit  = "omit"
)

// optionsJSON is the wire shape of Options. The in-memory model keeps
// unexported fields; the JSON form uses pointer fields so absent values
// fall back to the documented defaults instead of Go zero values.
type optionsJSON struct {
	Address     *addressJSON          `json:"address,omitempty"`
	StopAt      *uint64               `json:"stop_at,omitempty"`
	UpperCase   *bool                 `json:"upper_case,omitempty"`
	Cycles      bool                  `json:"cycles,omitempty"`
	SymbolTable map[SymbolInfo]string `json:"symbol_table,omitempty"`
}

type addressJSON struct {
	Mode   string `json:"mode"`
	Offset uint64 `json:"offset,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (o Options) MarshalJSON() ([]byte, error) {
	wire := optionsJSON{
		Cycles:      o.cycles,
		SymbolTable: o.symbols,
	}

	address := addressJSON{Mode: addressModeStart, Offset: o.address.offset}
	if o.address.omit {
		address = addressJSON{Mode: addressModeOmit}
	}
	wire.Address = &address

	upper := o.upperCase
	wire.UpperCase = &upper

	if o.hasStop {
		stop := o.stopAt
		wire.StopAt = &stop
	}

	return json.Marshal(wire)
}

// UnmarshalJSON implements json.Unmarshaler. Missing fields keep the New
// defaults.
func (o *Options) UnmarshalJSON(data []byte) error {
	var wire optionsJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	opts := New()

	if wire.Address != nil {
		switch wire.Address.Mode {
		case addressModeStart:
			opts = opts.WithAddresses(ShowAddressStart(wire.Address.Offset))
		case addressModeOmit:
			opts = opts.WithAddresses(ShowAddressNone())
		default:
			return fmt.Errorf("unknown address mode: %q", wire.Address.Mode)
		}
	}
	if wire.StopAt != nil {
		opts = opts.WithStop(*wire.StopAt)
	}
	if wire.UpperCase != nil {
		opts = opts.WithUpperCase(*wire.UpperCase)
	}
	opts = opts.WithCycles(wire.Cycles)
	if wire.SymbolTable != nil {
		opts = opts.WithSymbolTable(wire.SymbolTable)
	}

	*o = opts
	return nil
}
