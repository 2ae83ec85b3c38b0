package object

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skald-lang/skald/errz"
)

func TestStackPushPopOrder(t *testing.T) {
	s := NewStack()
	require.Equal(t, 0, s.Len())
	s.PushInt(1)
	s.PushInt(2)
	s.PushInt(3)
	require.Equal(t, 3, s.Len())

	v, err := s.Pop()
	require.NoError(t, err)
	require.Equal(t, int64(3), v.Interface())
	v, err = s.Pop()
	require.NoError(t, err)
	require.Equal(t, int64(2), v.Interface())
	require.Equal(t, 1, s.Len())
}

func TestStackPopUnderflow(t *testing.T) {
	s := NewStack()
	_, err := s.Pop()
	require.Error(t, err)
	var vmErr *errz.VMError
	require.ErrorAs(t, err, &vmErr)
	require.Equal(t, errz.ErrStackUnderflow, vmErr.Kind)
}

func TestStackTypedPushers(t *testing.T) {
	s := NewStack()
	s.PushUnit()
	s.PushBool(true)
	s.PushByte(7)
	s.PushFloat(2.5)
	s.PushType(IntTypeHash)
	require.NoError(t, s.PushChar('q'))
	require.Equal(t, 6, s.Len())

	v, err := s.Pop()
	require.NoError(t, err)
	require.Equal(t, CHAR, v.Type())
}

func TestStackPushCharInvalid(t *testing.T) {
	s := NewStack()
	err := s.PushChar(0xd800)
	require.Error(t, err)
	require.Equal(t, 0, s.Len(), "nothing pushed on failure")
}

func TestDrainPreservesPushOrder(t *testing.T) {
	s := NewStack()
	s.PushInt(10)
	s.PushInt(20)
	s.PushInt(30)
	items, err := s.Drain(2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, int64(20), items[0].Interface())
	require.Equal(t, int64(30), items[1].Interface())
	require.Equal(t, 1, s.Len())
}

func TestDrainUnderflowLeavesStackUnchanged(t *testing.T) {
	s := NewStack()
	s.PushInt(1)
	_, err := s.Drain(2)
	require.Error(t, err)
	require.Equal(t, 1, s.Len())
}

func TestPushTupleOrder(t *testing.T) {
	s := NewStack()
	s.PushUnit()
	s.PushInt(420)
	require.NoError(t, s.PushTuple(2))
	require.Equal(t, 1, s.Len())

	v, err := s.Pop()
	require.NoError(t, err)
	tuple, ok := v.(*Tuple)
	require.True(t, ok)
	require.Equal(t, 2, tuple.Len())
	require.Equal(t, UNIT, tuple.Items()[0].Type())
	require.Equal(t, int64(420), tuple.Items()[1].Interface())
	require.Equal(t, "((), 420)", tuple.Inspect())
}

func TestPushTupleUnderflow(t *testing.T) {
	s := NewStack()
	s.PushInt(1)
	err := s.PushTuple(3)
	require.Error(t, err)
	var vmErr *errz.VMError
	require.ErrorAs(t, err, &vmErr)
	require.Equal(t, errz.ErrStackUnderflow, vmErr.Kind)
	// The stack is untouched on failure.
	require.Equal(t, 1, s.Len())
}

func TestPushVecOrder(t *testing.T) {
	s := NewStack()
	s.PushInt(1)
	s.PushInt(2)
	s.PushInt(3)
	require.NoError(t, s.PushVec(3))

	v, err := s.Pop()
	require.NoError(t, err)
	vec, ok := v.(*Vec)
	require.True(t, ok)
	require.Equal(t, "[1, 2, 3]", vec.Inspect())
}

func TestPushEmptyAggregates(t *testing.T) {
	s := NewStack()
	require.NoError(t, s.PushTuple(0))
	require.NoError(t, s.PushVec(0))
	require.Equal(t, 2, s.Len())
}
