package object

import (
	"fmt"
	"sort"
	"strings"

	"github.com/skald-lang/skald/hash"
)

// UnitStruct is a named struct with no fields. It implements the Value
// interface.
type UnitStruct struct {
	storage
	name string
}

// NewUnitStruct returns a unit struct with the given type name.
func NewUnitStruct(name string) *UnitStruct {
	return &UnitStruct{name: name}
}

func (s *UnitStruct) Type() Type {
	return UNIT_STRUCT
}

func (s *UnitStruct) TypeHash() (hash.Hash, error) {
	if err := s.access("unit struct"); err != nil {
		return hash.Empty, err
	}
	return UnitStructTypeHash, nil
}

// Name returns the struct's type name.
func (s *UnitStruct) Name() string {
	return s.name
}

func (s *UnitStruct) Inspect() string {
	return s.name
}

func (s *UnitStruct) Interface() interface{} {
	return s.name
}

// TupleStruct is a named struct with positional fields. It implements the
// Value interface.
type TupleStruct struct {
	storage
	name  string
	items []Value
}

// NewTupleStruct returns a tuple struct with the given type name and fields.
func NewTupleStruct(name string, items []Value) *TupleStruct {
	return &TupleStruct{name: name, items: items}
}

func (s *TupleStruct) Type() Type {
	return TUPLE_STRUCT
}

func (s *TupleStruct) TypeHash() (hash.Hash, error) {
	if err := s.access("tuple struct"); err != nil {
		return hash.Empty, err
	}
	return TupleStructTypeHash, nil
}

// Name returns the struct's type name.
func (s *TupleStruct) Name() string {
	return s.name
}

// Items returns the positional fields in order.
func (s *TupleStruct) Items() []Value {
	return s.items
}

func (s *TupleStruct) Inspect() string {
	parts := make([]string, 0, len(s.items))
	for _, item := range s.items {
		parts = append(parts, item.Inspect())
	}
	return fmt.Sprintf("%s(%s)", s.name, strings.Join(parts, ", "))
}

func (s *TupleStruct) Interface() interface{} {
	out := make([]interface{}, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item.Interface())
	}
	return out
}

// Struct is a named struct with named fields. It implements the Value
// interface.
type Struct struct {
	storage
	name   string
	fields map[string]Value
}

// NewStruct returns a struct with the given type name and fields.
func NewStruct(name string, fields map[string]Value) *Struct {
	if fields == nil {
		fields = map[string]Value{}
	}
	return &Struct{name: name, fields: fields}
}

func (s *Struct) Type() Type {
	return STRUCT
}

func (s *Struct) TypeHash() (hash.Hash, error) {
	if err := s.access("struct"); err != nil {
		return hash.Empty, err
	}
	return StructTypeHash, nil
}

// Name returns the struct's type name.
func (s *Struct) Name() string {
	return s.name
}

// Get returns the field with the given name.
func (s *Struct) Get(name string) (Value, bool) {
	v, ok := s.fields[name]
	return v, ok
}

func (s *Struct) Inspect() string {
	keys := make([]string, 0, len(s.fields))
	for k := range s.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, s.fields[k].Inspect()))
	}
	return fmt.Sprintf("%s { %s }", s.name, strings.Join(parts, ", "))
}

func (s *Struct) Interface() interface{} {
	out := make(map[string]interface{}, len(s.fields))
	for k, v := range s.fields {
		out[k] = v.Interface()
	}
	return out
}

// Variant is one case of a named enum, holding positional fields. It
// implements the Value interface.
type Variant struct {
	storage
	enum  string
	name  string
	items []Value
}

// NewVariant returns an enum variant value.
func NewVariant(enum, name string, items []Value) *Variant {
	return &Variant{enum: enum, name: name, items: items}
}

func (v *Variant) Type() Type {
	return VARIANT
}

func (v *Variant) TypeHash() (hash.Hash, error) {
	if err := v.access("variant"); err != nil {
		return hash.Empty, err
	}
	return VariantTypeHash, nil
}

// Enum returns the enum's type name.
func (v *Variant) Enum() string {
	return v.enum
}

// Name returns the variant's name within the enum.
func (v *Variant) Name() string {
	return v.name
}

// Items returns the variant's positional fields.
func (v *Variant) Items() []Value {
	return v.items
}

func (v *Variant) Inspect() string {
	if len(v.items) == 0 {
		return fmt.Sprintf("%s::%s", v.enum, v.name)
	}
	parts := make([]string, 0, len(v.items))
	for _, item := range v.items {
		parts = append(parts, item.Inspect())
	}
	return fmt.Sprintf("%s::%s(%s)", v.enum, v.name, strings.Join(parts, ", "))
}

func (v *Variant) Interface() interface{} {
	out := make([]interface{}, 0, len(v.items))
	for _, item := range v.items {
		out = append(out, item.Interface())
	}
	return out
}
