package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Scope is a symbol visibility scope.
type Scope int

const (
	ScopeLocal Scope = iota
	ScopeGlobal
)

func (s Scope) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	default:
		return "local"
	}
}

// ParseScope parses a scope name.
func ParseScope(s string) (Scope, error) {
	switch s {
	case "local":
		return ScopeLocal, nil
	case "global":
		return ScopeGlobal, nil
	default:
		return 0, fmt.Errorf("unknown symbol scope: %q", s)
	}
}

// SymbolInfo identifies a symbol by address and visibility scope. It is the
// symbol table key; the substitution itself is not applied by any adapter
// yet.
type SymbolInfo struct {
	address uint64
	scope   Scope
}

// NewSymbolInfo constructs a new symbol key.
func NewSymbolInfo(address uint64, scope Scope) SymbolInfo {
	return SymbolInfo{address: address, scope: scope}
}

// Address returns the symbol address.
func (s SymbolInfo) Address() uint64 { return s.address }

// Scope returns the symbol visibility scope.
func (s SymbolInfo) Scope() Scope { return s.scope }

// MarshalText encodes the composite key as "<address>:<scope>" so it can
// key a JSON object, which allows only string keys.
func (s SymbolInfo) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%d:%s", s.address, s.scope)), nil
}

// UnmarshalText parses the "<address>:<scope>" wire form.
func (s *SymbolInfo) UnmarshalText(text []byte) error {
	address, scope, ok := strings.Cut(string(text), ":")
	if !ok {
		return fmt.Errorf("malformed symbol key: %q", text)
	}

	addr, err := strconv.ParseUint(address, 10, 64)
	if err != nil {
		return fmt.Errorf("malformed symbol address: %q", address)
	}
	sc, err := ParseScope(scope)
	if err != nil {
		return err
	}

	s.address = addr
	s.scope = sc
	return nil
}
