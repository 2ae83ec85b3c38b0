// Package builtins defines a default set of native functions that scripts
// may call. Every function follows the stack calling convention: pop the
// declared arguments, push exactly one result.
package builtins

import (
	"fmt"
	"io"
	"os"

	"github.com/skald-lang/skald/errz"
	"github.com/skald-lang/skald/object"
	"github.com/skald-lang/skald/runtime"
)

// Module returns the default builtin module, printing to os.Stdout.
func Module() *runtime.Module {
	return ModuleTo(os.Stdout)
}

// ModuleTo returns the builtin module with print output directed to w.
func ModuleTo(w io.Writer) *runtime.Module {
	m := runtime.NewModule()
	// Registration of literal names on a fresh module cannot fail.
	_ = m.Function("print", Print(w))
	_ = m.Function("len", Len)
	_ = m.Function("str", Str)
	return m
}

// Print returns a native that writes its single argument's rendering to w,
// followed by a newline, and yields unit.
func Print(w io.Writer) runtime.Function {
	return func(stack *object.Stack, count int) error {
		if count != 1 {
			return errz.NewBadArgumentCount(count, 1)
		}
		v, err := stack.Pop()
		if err != nil {
			return err
		}
		if s, ok := v.(*object.String); ok {
			fmt.Fprintln(w, s.Value())
		} else {
			fmt.Fprintln(w, v.Inspect())
		}
		stack.PushUnit()
		return nil
	}
}

// Len pops a container and pushes its element count. Strings count bytes.
func Len(stack *object.Stack, count int) error {
	if count != 1 {
		return errz.NewBadArgumentCount(count, 1)
	}
	v, err := stack.Pop()
	if err != nil {
		return err
	}
	switch v := v.(type) {
	case *object.String:
		stack.PushInt(int64(len(v.Value())))
	case *object.Bytes:
		stack.PushInt(int64(len(v.Value())))
	case *object.Vec:
		stack.PushInt(int64(v.Len()))
	case *object.Tuple:
		stack.PushInt(int64(v.Len()))
	default:
		return errz.NewBadArgument(0, string(v.Type()), "a container")
	}
	return nil
}

// Str pops any value and pushes its rendering as a string.
func Str(stack *object.Stack, count int) error {
	if count != 1 {
		return errz.NewBadArgumentCount(count, 1)
	}
	v, err := stack.Pop()
	if err != nil {
		return err
	}
	stack.Push(object.NewString(v.Inspect()))
	return nil
}
