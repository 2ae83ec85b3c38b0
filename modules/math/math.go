// Package math provides numeric native functions for Skald scripts.
package math

import (
	gomath "math"

	"github.com/skald-lang/skald/errz"
	"github.com/skald-lang/skald/object"
	"github.com/skald-lang/skald/runtime"
)

// Module returns the math native module: abs, sqrt, pow, min and max.
func Module() *runtime.Module {
	m := runtime.NewModule()
	// Registration of literal names on a fresh module cannot fail.
	_ = m.Function("abs", Abs)
	_ = m.Function("sqrt", Sqrt)
	_ = m.Function("pow", Pow)
	_ = m.Function("min", Min)
	_ = m.Function("max", Max)
	return m
}

// Abs pops one numeric argument and pushes its absolute value, preserving
// the variant.
func Abs(stack *object.Stack, count int) error {
	if count != 1 {
		return errz.NewBadArgumentCount(count, 1)
	}
	v, err := stack.Pop()
	if err != nil {
		return err
	}
	if i, ok := object.AsInt(v); ok {
		if i < 0 {
			i = -i
		}
		stack.PushInt(i)
		return nil
	}
	if f, ok := object.AsFloat(v); ok {
		stack.PushFloat(gomath.Abs(f))
		return nil
	}
	return errz.NewBadArgument(0, string(v.Type()), "a number")
}

// Sqrt pops one numeric argument and pushes its square root as a float.
func Sqrt(stack *object.Stack, count int) error {
	if count != 1 {
		return errz.NewBadArgumentCount(count, 1)
	}
	f, err := popNumber(stack, 0)
	if err != nil {
		return err
	}
	if f < 0 {
		return errz.NewRuntimeError("sqrt of negative number %v", f)
	}
	stack.PushFloat(gomath.Sqrt(f))
	return nil
}

// Pow pops base and exponent, in push order, and pushes base**exponent as a
// float.
func Pow(stack *object.Stack, count int) error {
	if count != 2 {
		return errz.NewBadArgumentCount(count, 2)
	}
	exp, err := popNumber(stack, 1)
	if err != nil {
		return err
	}
	base, err := popNumber(stack, 0)
	if err != nil {
		return err
	}
	stack.PushFloat(gomath.Pow(base, exp))
	return nil
}

// Min pops two numeric arguments and pushes the smaller as a float.
func Min(stack *object.Stack, count int) error {
	if count != 2 {
		return errz.NewBadArgumentCount(count, 2)
	}
	b, err := popNumber(stack, 1)
	if err != nil {
		return err
	}
	a, err := popNumber(stack, 0)
	if err != nil {
		return err
	}
	stack.PushFloat(gomath.Min(a, b))
	return nil
}

// Max pops two numeric arguments and pushes the larger as a float.
func Max(stack *object.Stack, count int) error {
	if count != 2 {
		return errz.NewBadArgumentCount(count, 2)
	}
	b, err := popNumber(stack, 1)
	if err != nil {
		return err
	}
	a, err := popNumber(stack, 0)
	if err != nil {
		return err
	}
	stack.PushFloat(gomath.Max(a, b))
	return nil
}

func popNumber(stack *object.Stack, pos int) (float64, error) {
	v, err := stack.Pop()
	if err != nil {
		return 0, err
	}
	if i, ok := object.AsInt(v); ok {
		return float64(i), nil
	}
	if f, ok := object.AsFloat(v); ok {
		return f, nil
	}
	return 0, errz.NewBadArgument(pos, string(v.Type()), "a number")
}
