// Package object provides the runtime value types exchanged between a host
// program and the virtual machine.
//
// Values are opaque handles: hosts create them with the New* constructors,
// classify them with Type or TypeHash, extract primitives with the As*
// coercions, and release heap-owning values with Free. A host never reaches
// into a value's internals.
//
// For example:
//
//	switch obj := obj.(type) {
//	case *object.Int:
//		// do something with obj.Value()
//	case *object.Tuple:
//		// do something with obj.Items()
//	}
package object

import (
	"github.com/skald-lang/skald/hash"
)

// Type of a value as a string.
type Type string

// Type constants
const (
	UNIT            Type = "unit"
	BOOL            Type = "bool"
	BYTE            Type = "byte"
	CHAR            Type = "char"
	INT             Type = "int"
	FLOAT           Type = "float"
	TYPE            Type = "type"
	STRING          Type = "string"
	BYTES           Type = "bytes"
	VEC             Type = "vec"
	TUPLE           Type = "tuple"
	OBJECT          Type = "object"
	RANGE           Type = "range"
	OPTION          Type = "option"
	RESULT          Type = "result"
	UNIT_STRUCT     Type = "unit_struct"
	TUPLE_STRUCT    Type = "tuple_struct"
	STRUCT          Type = "struct"
	VARIANT         Type = "variant"
	FUNCTION        Type = "function"
	FUTURE          Type = "future"
	STREAM          Type = "stream"
	GENERATOR       Type = "generator"
	GENERATOR_STATE Type = "generator_state"
	FORMAT          Type = "format"
	ITERATOR        Type = "iterator"
	ANY             Type = "any"
)

// Value is the interface implemented by every runtime value. A value is
// always in exactly one variant.
type Value interface {
	// Type of the value.
	Type() Type

	// TypeHash returns the published hash identifying the value's runtime
	// type. This is the only value operation permitted to fail: heap-owning
	// variants whose storage has been consumed report an access error.
	TypeHash() (hash.Hash, error)

	// Inspect returns a string representation of the value.
	Inspect() string

	// Interface converts the value to a native Go value.
	Interface() interface{}
}

// consumable is implemented by heap-owning variants whose storage can be
// claimed exactly once.
type consumable interface {
	consume() bool
}

// Free releases any heap resource owned by v and returns Unit, so that the
// caller's handle can be normalized in one step:
//
//	v = object.Free(v)
//
// Freeing a value twice, or freeing an inline value, is a safe no-op.
func Free(v Value) Value {
	if c, ok := v.(consumable); ok {
		c.consume()
	}
	return Unit
}

// TypeHashOrEmpty returns the value's type hash, or the empty hash if the
// type could not be resolved. Callers that need to distinguish "unit-typed"
// from "error" must use TypeHash directly.
func TypeHashOrEmpty(v Value) hash.Hash {
	h, err := v.TypeHash()
	if err != nil {
		return hash.Empty
	}
	return h
}

// UnitType is the unit value. It carries no data.
type UnitType struct{}

// Unit is the singleton unit value.
var Unit = &UnitType{}

func (u *UnitType) Type() Type {
	return UNIT
}

func (u *UnitType) TypeHash() (hash.Hash, error) {
	return UnitTypeHash, nil
}

func (u *UnitType) Inspect() string {
	return "()"
}

func (u *UnitType) Interface() interface{} {
	return nil
}
