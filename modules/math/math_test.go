package math

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skald-lang/skald/errz"
	"github.com/skald-lang/skald/object"
)

func TestModuleContents(t *testing.T) {
	require.Equal(t, 5, Module().Len())
}

func TestAbs(t *testing.T) {
	stack := object.NewStack()

	stack.PushInt(-4)
	require.NoError(t, Abs(stack, 1))
	v, err := stack.Pop()
	require.NoError(t, err)
	require.Equal(t, int64(4), v.Interface())

	stack.PushFloat(-1.5)
	require.NoError(t, Abs(stack, 1))
	v, err = stack.Pop()
	require.NoError(t, err)
	require.Equal(t, 1.5, v.Interface())

	stack.PushBool(true)
	err = Abs(stack, 1)
	var vmErr *errz.VMError
	require.ErrorAs(t, err, &vmErr)
	require.Equal(t, errz.ErrBadArgument, vmErr.Kind)
}

func TestSqrt(t *testing.T) {
	stack := object.NewStack()
	stack.PushInt(9)
	require.NoError(t, Sqrt(stack, 1))
	v, err := stack.Pop()
	require.NoError(t, err)
	require.Equal(t, 3.0, v.Interface())

	stack.PushFloat(-1)
	require.Error(t, Sqrt(stack, 1))
}

func TestPowArgumentOrder(t *testing.T) {
	stack := object.NewStack()
	stack.PushInt(2) // base, pushed first
	stack.PushInt(10)
	require.NoError(t, Pow(stack, 2))
	v, err := stack.Pop()
	require.NoError(t, err)
	require.Equal(t, 1024.0, v.Interface())
}

func TestMinMax(t *testing.T) {
	stack := object.NewStack()
	stack.PushInt(3)
	stack.PushFloat(1.5)
	require.NoError(t, Min(stack, 2))
	v, err := stack.Pop()
	require.NoError(t, err)
	require.Equal(t, 1.5, v.Interface())

	stack.PushInt(3)
	stack.PushFloat(1.5)
	require.NoError(t, Max(stack, 2))
	v, err = stack.Pop()
	require.NoError(t, err)
	require.Equal(t, 3.0, v.Interface())
}

func TestBadArgumentCounts(t *testing.T) {
	stack := object.NewStack()
	var vmErr *errz.VMError
	require.ErrorAs(t, Abs(stack, 0), &vmErr)
	require.ErrorAs(t, Sqrt(stack, 2), &vmErr)
	require.ErrorAs(t, Pow(stack, 1), &vmErr)
	require.ErrorAs(t, Min(stack, 1), &vmErr)
	require.ErrorAs(t, Max(stack, 3), &vmErr)
}
