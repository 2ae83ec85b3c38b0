package object

import (
	"strings"

	"github.com/skald-lang/skald/hash"
)

// Tuple is a fixed-size sequence of values. It implements the Value
// interface.
type Tuple struct {
	storage
	items []Value
}

// NewTuple returns a tuple value owning the given items.
func NewTuple(items []Value) *Tuple {
	return &Tuple{items: items}
}

func (t *Tuple) Type() Type {
	return TUPLE
}

func (t *Tuple) TypeHash() (hash.Hash, error) {
	if err := t.access("tuple"); err != nil {
		return hash.Empty, err
	}
	return TupleTypeHash, nil
}

// Items returns the tuple's elements in order.
func (t *Tuple) Items() []Value {
	return t.items
}

// Len returns the number of elements.
func (t *Tuple) Len() int {
	return len(t.items)
}

func (t *Tuple) Inspect() string {
	var b strings.Builder
	b.WriteString("(")
	for i, item := range t.items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(item.Inspect())
	}
	if len(t.items) == 1 {
		b.WriteString(",")
	}
	b.WriteString(")")
	return b.String()
}

func (t *Tuple) Interface() interface{} {
	out := make([]interface{}, 0, len(t.items))
	for _, item := range t.items {
		out = append(out, item.Interface())
	}
	return out
}
