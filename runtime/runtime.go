// Package runtime provides the symbol table machinery that makes native Go
// functions callable from scripts: modules collect registrations, a context
// aggregates modules, and a runtime context is the immutable snapshot a
// virtual machine resolves calls against.
package runtime

import (
	"github.com/skald-lang/skald/object"
)

// Function is a native function callable from script code.
//
// The calling convention: the function receives the live stack and the
// number of arguments passed. It must validate count against its expected
// arity, pop exactly count values (the last-pushed argument is popped
// first), coerce each one, and push exactly one logical result before
// returning nil. On any failure it returns a non-nil error without further
// stack mutation; the VM treats that error as authoritative and aborts the
// call.
//
// A function must not retain the stack beyond the duration of the call.
type Function func(stack *object.Stack, count int) error
