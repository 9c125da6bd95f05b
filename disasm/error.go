package disasm

import "fmt"

// Category classifies a failure for the service boundary.
type Category int

const (
	// CategoryBadRequest marks failures caused by invalid request
	// parameters.
	CategoryBadRequest Category = iota + 1
	// CategoryNotImplemented marks features the service knows about but
	// does not support yet.
	CategoryNotImplemented
	// CategoryInternal marks failures that are not the caller's fault.
	CategoryInternal
)

// ArchError is implemented by architecture specific error types so the
// boundary can classify them without knowing the architecture.
type ArchError interface {
	error
	Category() Category
}

// NoError marks an architecture whose decode engine cannot fail. No value
// of it is ever constructed; the type exists to make that branch visibly
// unreachable.
type NoError struct{}

func (NoError) Error() string      { return "architecture error cannot occur" }
func (NoError) Category() Category { return CategoryInternal }

// Kind discriminates Error variants. When several conditions hold at once,
// the lowest kind wins: option validation runs before any decode work, an
// unimplemented decode outranks construction problems, and engine failures
// come last.
type Kind int

const (
	// KindUnsupportedOption: a requested option is not supported by the
	// target adapter.
	KindUnsupportedOption Kind = iota + 1
	// KindUnimplemented: the decode operation itself is not implemented
	// for this architecture.
	KindUnimplemented
	// KindMissingInfo: required construction information was absent.
	KindMissingInfo
	// KindWrongBitWidth: the requested width is not among the widths the
	// architecture supports.
	KindWrongBitWidth
	// KindArch: a failure surfaced by the underlying decode engine.
	KindArch
)

// Error is the failure type shared by all adapters, generic over the
// architecture specific error E.
type Error[E ArchError] struct {
	kind  Kind
	width BitWidth // set for KindWrongBitWidth
	arch  E        // set for KindArch
}

// NewUnsupportedOption reports that a requested option is not supported.
func NewUnsupportedOption[E ArchError]() *Error[E] {
	return &Error[E]{kind: KindUnsupportedOption}
}

// NewUnimplemented reports that the decode operation is not implemented.
func NewUnimplemented[E ArchError]() *Error[E] {
	return &Error[E]{kind: KindUnimplemented}
}

// NewMissingInfo reports that required construction information was absent.
func NewMissingInfo[E ArchError]() *Error[E] {
	return &Error[E]{kind: KindMissingInfo}
}

// NewWrongBitWidth reports an unsupported architecture bit width.
func NewWrongBitWidth[E ArchError](width BitWidth) *Error[E] {
	return &Error[E]{kind: KindWrongBitWidth, width: width}
}

// NewArch wraps an architecture specific failure.
func NewArch[E ArchError](err E) *Error[E] {
	return &Error[E]{kind: KindArch, arch: err}
}

// Kind returns the error discriminant.
func (e *Error[E]) Kind() Kind { return e.kind }

// Width returns the rejected bit width for KindWrongBitWidth errors.
func (e *Error[E]) Width() BitWidth { return e.width }

// Arch returns the architecture specific error for KindArch errors.
func (e *Error[E]) Arch() E { return e.arch }

func (e *Error[E]) Error() string {
	switch e.kind {
	case KindUnsupportedOption:
		return "unsupported disassembler option"
	case KindUnimplemented:
		return "the implementation has not been done"
	case KindMissingInfo:
		return "missing disassembler option"
	case KindWrongBitWidth:
		return fmt.Sprintf("invalid architecture bit width: %s", e.width)
	case KindArch:
		return e.arch.Error()
	default:
		return "unknown disassembler error"
	}
}

// Unwrap exposes the architecture error for errors.As chains.
func (e *Error[E]) Unwrap() error {
	if e.kind == KindArch {
		return e.arch
	}
	return nil
}

// Category classifies the error for the boundary. Architecture errors
// classify themselves.
func (e *Error[E]) Category() Category {
	switch e.kind {
	case KindUnsupportedOption, KindUnimplemented:
		return CategoryNotImplemented
	case KindWrongBitWidth, KindMissingInfo:
		return CategoryBadRequest
	case KindArch:
		return e.arch.Category()
	default:
		return CategoryInternal
	}
}
