package object

import (
	"strconv"

	"github.com/skald-lang/skald/hash"
)

// Float wraps float64 and implements the Value interface.
type Float struct {
	value float64
}

// NewFloat returns a float value.
func NewFloat(value float64) *Float {
	return &Float{value: value}
}

func (f *Float) Type() Type {
	return FLOAT
}

func (f *Float) TypeHash() (hash.Hash, error) {
	return FloatTypeHash, nil
}

func (f *Float) Value() float64 {
	return f.value
}

func (f *Float) Inspect() string {
	return strconv.FormatFloat(f.value, 'g', -1, 64)
}

func (f *Float) Interface() interface{} {
	return f.value
}
