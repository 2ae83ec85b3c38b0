package object

import (
	"strings"

	"github.com/skald-lang/skald/hash"
)

// Vec is a growable sequence of values. It implements the Value interface.
type Vec struct {
	storage
	items []Value
}

// NewVec returns a vector value owning the given items.
func NewVec(items []Value) *Vec {
	return &Vec{items: items}
}

func (v *Vec) Type() Type {
	return VEC
}

func (v *Vec) TypeHash() (hash.Hash, error) {
	if err := v.access("vec"); err != nil {
		return hash.Empty, err
	}
	return VecTypeHash, nil
}

// Items returns the vector's elements in order.
func (v *Vec) Items() []Value {
	return v.items
}

// Len returns the number of elements.
func (v *Vec) Len() int {
	return len(v.items)
}

func (v *Vec) Inspect() string {
	var b strings.Builder
	b.WriteString("[")
	for i, item := range v.items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(item.Inspect())
	}
	b.WriteString("]")
	return b.String()
}

func (v *Vec) Interface() interface{} {
	out := make([]interface{}, 0, len(v.items))
	for _, item := range v.items {
		out = append(out, item.Interface())
	}
	return out
}
