package object

import (
	"github.com/skald-lang/skald/errz"
	"github.com/skald-lang/skald/hash"
)

// Stack is the ordered sequence of values used as the sole data-passing
// channel for calls into the virtual machine and into native functions.
// Length changes only through push and pop operations; popping from an empty
// stack is a reported error, never a fault.
//
// A stack is owned by a single VM and is not safe for concurrent use.
type Stack struct {
	values []Value
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Len returns the number of values on the stack.
func (s *Stack) Len() int {
	return len(s.values)
}

// Push pushes a value onto the stack.
func (s *Stack) Push(v Value) {
	s.values = append(s.values, v)
}

// PushUnit pushes the unit value.
func (s *Stack) PushUnit() {
	s.Push(Unit)
}

// PushBool pushes a boolean value.
func (s *Stack) PushBool(v bool) {
	s.Push(NewBool(v))
}

// PushByte pushes a byte value.
func (s *Stack) PushByte(v byte) {
	s.Push(NewByte(v))
}

// PushInt pushes an integer value.
func (s *Stack) PushInt(v int64) {
	s.Push(NewInt(v))
}

// PushFloat pushes a float value.
func (s *Stack) PushFloat(v float64) {
	s.Push(NewFloat(v))
}

// PushType pushes a type value referring to the given hash.
func (s *Stack) PushType(h hash.Hash) {
	s.Push(NewTypeValue(h))
}

// PushChar pushes a character value. If the code point is not a valid
// character an error is returned and nothing is pushed.
func (s *Stack) PushChar(v rune) error {
	c, err := NewChar(v)
	if err != nil {
		return err
	}
	s.Push(c)
	return nil
}

// Pop removes and returns the top value. Fails with a stack underflow error
// if the stack is empty.
func (s *Stack) Pop() (Value, error) {
	if len(s.values) == 0 {
		return nil, errz.NewStackUnderflow(1, 0)
	}
	top := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	return top, nil
}

// Drain removes the top count values and returns them in their original push
// order (bottom-most first). Fails with a stack underflow error if fewer
// than count values are available, in which case the stack is unchanged;
// callers must still treat the error as terminal for the invocation.
func (s *Stack) Drain(count int) ([]Value, error) {
	if count < 0 || count > len(s.values) {
		return nil, errz.NewStackUnderflow(count, len(s.values))
	}
	at := len(s.values) - count
	items := make([]Value, count)
	copy(items, s.values[at:])
	s.values = s.values[:at]
	return items, nil
}

// PushTuple pops count values and pushes one tuple built from them. The
// elements are popped in the reverse order that they were pushed, so the
// tuple's element order matches the original push order.
func (s *Stack) PushTuple(count int) error {
	items, err := s.Drain(count)
	if err != nil {
		return err
	}
	s.Push(NewTuple(items))
	return nil
}

// PushVec pops count values and pushes one vector built from them. The
// elements are popped in the reverse order that they were pushed, so the
// vector's element order matches the original push order.
func (s *Stack) PushVec(count int) error {
	items, err := s.Drain(count)
	if err != nil {
		return err
	}
	s.Push(NewVec(items))
	return nil
}
