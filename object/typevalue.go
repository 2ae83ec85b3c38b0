package object

import (
	"fmt"

	"github.com/skald-lang/skald/hash"
)

// TypeValue is a first-class reference to a runtime type, identified by its
// hash. It implements the Value interface.
type TypeValue struct {
	value hash.Hash
}

// NewTypeValue returns a type value referring to the type identified by h.
func NewTypeValue(h hash.Hash) *TypeValue {
	return &TypeValue{value: h}
}

func (t *TypeValue) Type() Type {
	return TYPE
}

func (t *TypeValue) TypeHash() (hash.Hash, error) {
	return TypeTypeHash, nil
}

// Value returns the hash of the referenced type.
func (t *TypeValue) Value() hash.Hash {
	return t.value
}

func (t *TypeValue) Inspect() string {
	return fmt.Sprintf("type(%s)", t.value)
}

func (t *TypeValue) Interface() interface{} {
	return uint64(t.value)
}
