package errz

import (
	"fmt"

	"github.com/skald-lang/skald/hash"
)

// ContextErrorKind categorizes failures during module registration and
// context construction.
type ContextErrorKind int

const (
	// ErrInvalidName indicates a registration name was empty or not valid
	// UTF-8.
	ErrInvalidName ContextErrorKind = iota
	// ErrDuplicateSymbol indicates a symbol hash collided with an entry
	// already installed in the context.
	ErrDuplicateSymbol
	// ErrInvalidContext indicates an operation on a context that was never
	// properly constructed, or on a module that has been frozen or freed.
	ErrInvalidContext
)

func (k ContextErrorKind) String() string {
	switch k {
	case ErrInvalidName:
		return "invalid name"
	case ErrDuplicateSymbol:
		return "duplicate symbol"
	default:
		return "invalid context"
	}
}

// ContextError describes a failure while building a context from modules.
type ContextError struct {
	Kind    ContextErrorKind
	Message string
	Hash    hash.Hash // the colliding symbol, when applicable
}

// Error implements the error interface.
func (e *ContextError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Emit renders a human-readable report to the given stream. Returns false if
// the error is nil, in which case nothing is written.
func (e *ContextError) Emit(stream *StandardStream) bool {
	if e == nil {
		return false
	}
	stream.Header("context error")
	fmt.Fprintf(stream, "%s\n", e.Error())
	return true
}

// NewInvalidName returns a ContextError for a malformed registration name.
func NewInvalidName(name string) *ContextError {
	return &ContextError{
		Kind:    ErrInvalidName,
		Message: fmt.Sprintf("function name %q is not valid", name),
	}
}

// NewDuplicateSymbol returns a ContextError for a symbol hash collision.
func NewDuplicateSymbol(name string, h hash.Hash) *ContextError {
	return &ContextError{
		Kind:    ErrDuplicateSymbol,
		Message: fmt.Sprintf("symbol %q (%s) is already installed", name, h),
		Hash:    h,
	}
}

// NewInvalidContext returns a ContextError for operations on an improperly
// constructed context or module.
func NewInvalidContext(msg string) *ContextError {
	return &ContextError{Kind: ErrInvalidContext, Message: msg}
}
