package object

import (
	"fmt"

	"github.com/skald-lang/skald/hash"
)

// Option holds either some value or none. It implements the Value interface.
type Option struct {
	storage
	value Value // nil means None
}

// NewSome returns an option holding the given value.
func NewSome(value Value) *Option {
	return &Option{value: value}
}

// NewNone returns the empty option.
func NewNone() *Option {
	return &Option{}
}

func (o *Option) Type() Type {
	return OPTION
}

func (o *Option) TypeHash() (hash.Hash, error) {
	if err := o.access("option"); err != nil {
		return hash.Empty, err
	}
	return OptionTypeHash, nil
}

// IsSome reports whether the option holds a value.
func (o *Option) IsSome() bool {
	return o.value != nil
}

// Value returns the held value, or nil for None.
func (o *Option) Value() Value {
	return o.value
}

func (o *Option) Inspect() string {
	if o.value == nil {
		return "None"
	}
	return fmt.Sprintf("Some(%s)", o.value.Inspect())
}

func (o *Option) Interface() interface{} {
	if o.value == nil {
		return nil
	}
	return o.value.Interface()
}
