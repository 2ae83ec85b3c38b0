package builtins

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skald-lang/skald/errz"
	"github.com/skald-lang/skald/object"
)

func TestModuleContents(t *testing.T) {
	m := Module()
	require.Equal(t, 3, m.Len())
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	fn := Print(&buf)

	stack := object.NewStack()
	stack.Push(object.NewString("hello"))
	require.NoError(t, fn(stack, 1))
	require.Equal(t, "hello\n", buf.String())

	// The result is unit.
	v, err := stack.Pop()
	require.NoError(t, err)
	require.Same(t, object.Unit, v)

	// Non-strings render via Inspect.
	buf.Reset()
	stack.PushInt(42)
	require.NoError(t, fn(stack, 1))
	require.Equal(t, "42\n", buf.String())
}

func TestPrintBadArgumentCount(t *testing.T) {
	var buf bytes.Buffer
	fn := Print(&buf)
	stack := object.NewStack()
	err := fn(stack, 2)
	var vmErr *errz.VMError
	require.ErrorAs(t, err, &vmErr)
	require.Equal(t, errz.ErrBadArgumentCount, vmErr.Kind)
}

func TestLen(t *testing.T) {
	stack := object.NewStack()

	stack.Push(object.NewString("hello"))
	require.NoError(t, Len(stack, 1))
	v, err := stack.Pop()
	require.NoError(t, err)
	require.Equal(t, int64(5), v.Interface())

	stack.Push(object.NewVec([]object.Value{object.Unit, object.Unit}))
	require.NoError(t, Len(stack, 1))
	v, err = stack.Pop()
	require.NoError(t, err)
	require.Equal(t, int64(2), v.Interface())

	stack.Push(object.NewBytes([]byte{1, 2, 3}))
	require.NoError(t, Len(stack, 1))
	v, err = stack.Pop()
	require.NoError(t, err)
	require.Equal(t, int64(3), v.Interface())

	stack.Push(object.NewTuple([]object.Value{object.Unit}))
	require.NoError(t, Len(stack, 1))
	v, err = stack.Pop()
	require.NoError(t, err)
	require.Equal(t, int64(1), v.Interface())
}

func TestLenUnsupported(t *testing.T) {
	stack := object.NewStack()
	stack.PushInt(5)
	err := Len(stack, 1)
	var vmErr *errz.VMError
	require.ErrorAs(t, err, &vmErr)
	require.Equal(t, errz.ErrBadArgument, vmErr.Kind)
}

func TestStr(t *testing.T) {
	stack := object.NewStack()
	stack.PushInt(42)
	require.NoError(t, Str(stack, 1))
	v, err := stack.Pop()
	require.NoError(t, err)
	require.Equal(t, "42", v.Interface())
}
