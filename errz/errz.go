// Package errz defines the error containers shared by the value system, the
// native calling convention, and the virtual machine. Errors are explicit
// values: every fallible operation returns one, nothing is thrown.
package errz

import (
	"fmt"

	"github.com/skald-lang/skald/hash"
)

// VMErrorKind categorizes errors raised by the virtual machine or by code
// honoring its calling convention.
type VMErrorKind int

const (
	// ErrRuntime indicates a general fault during script execution.
	ErrRuntime VMErrorKind = iota
	// ErrBadArgumentCount indicates a native function was invoked with the
	// wrong number of arguments.
	ErrBadArgumentCount
	// ErrBadArgument indicates an argument at a given position had the wrong
	// type.
	ErrBadArgument
	// ErrStackUnderflow indicates a pop or aggregate construction needed more
	// values than the stack held.
	ErrStackUnderflow
	// ErrMissingEntrypoint indicates entrypoint resolution failed.
	ErrMissingEntrypoint
	// ErrArityMismatch indicates an entrypoint was set with an argument count
	// different from its declared arity.
	ErrArityMismatch
	// ErrValueAccess indicates a value's storage was consumed and is no
	// longer accessible.
	ErrValueAccess
)

func (k VMErrorKind) String() string {
	switch k {
	case ErrBadArgumentCount:
		return "bad argument count"
	case ErrBadArgument:
		return "bad argument"
	case ErrStackUnderflow:
		return "stack underflow"
	case ErrMissingEntrypoint:
		return "missing entrypoint"
	case ErrArityMismatch:
		return "arity mismatch"
	case ErrValueAccess:
		return "value access"
	default:
		return "runtime error"
	}
}

// VMError describes a failure raised during execution or while honoring the
// stack calling convention. A later failure written into the same logical
// slot replaces an earlier one; callers treat any VMError as terminal for the
// invocation that produced it.
type VMError struct {
	Kind     VMErrorKind
	Message  string
	Actual   int // argument counts and positions, when applicable
	Expected int
}

// Error implements the error interface.
func (e *VMError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Emit renders a human-readable report to the given stream. Returns false if
// the error is nil, in which case nothing is written.
func (e *VMError) Emit(stream *StandardStream) bool {
	if e == nil {
		return false
	}
	stream.Header("error")
	fmt.Fprintf(stream, "%s\n", e.Error())
	return true
}

// NewRuntimeError returns a VMError describing a general execution fault.
func NewRuntimeError(format string, args ...any) *VMError {
	return &VMError{Kind: ErrRuntime, Message: fmt.Sprintf(format, args...)}
}

// NewBadArgumentCount returns a VMError reporting that actual arguments were
// provided where expected were declared.
func NewBadArgumentCount(actual, expected int) *VMError {
	return &VMError{
		Kind:     ErrBadArgumentCount,
		Message:  fmt.Sprintf("got %d arguments, expected %d", actual, expected),
		Actual:   actual,
		Expected: expected,
	}
}

// NewBadArgument returns a VMError reporting that the argument at position
// pos had type actual where expected was required. Positions are zero-based
// in declaration order.
func NewBadArgument(pos int, actual, expected string) *VMError {
	return &VMError{
		Kind:    ErrBadArgument,
		Message: fmt.Sprintf("bad argument at position %d: got %s, expected %s", pos, actual, expected),
		Actual:  pos,
	}
}

// NewStackUnderflow returns a VMError reporting that needed values exceeded
// the count available on the stack.
func NewStackUnderflow(needed, available int) *VMError {
	return &VMError{
		Kind:     ErrStackUnderflow,
		Message:  fmt.Sprintf("needed %d values, stack holds %d", needed, available),
		Actual:   available,
		Expected: needed,
	}
}

// NewMissingEntrypoint returns a VMError reporting that h did not resolve to
// a callable location.
func NewMissingEntrypoint(h hash.Hash) *VMError {
	return &VMError{
		Kind:    ErrMissingEntrypoint,
		Message: fmt.Sprintf("no entrypoint registered for hash %s", h),
	}
}

// NewArityMismatch returns a VMError reporting that an entrypoint declared
// with expected parameters was set up with actual arguments.
func NewArityMismatch(actual, expected int) *VMError {
	return &VMError{
		Kind:     ErrArityMismatch,
		Message:  fmt.Sprintf("entrypoint takes %d arguments, got %d", expected, actual),
		Actual:   actual,
		Expected: expected,
	}
}

// NewValueAccess returns a VMError reporting that a value's backing storage
// has been consumed.
func NewValueAccess(what string) *VMError {
	return &VMError{
		Kind:    ErrValueAccess,
		Message: fmt.Sprintf("%s is no longer accessible", what),
	}
}
