package object

import (
	"sort"
	"strings"

	"github.com/skald-lang/skald/hash"
)

// Object is an anonymous object: a string-keyed collection of values. It
// implements the Value interface.
type Object struct {
	storage
	fields map[string]Value
}

// NewObject returns an object value owning the given fields.
func NewObject(fields map[string]Value) *Object {
	if fields == nil {
		fields = map[string]Value{}
	}
	return &Object{fields: fields}
}

func (o *Object) Type() Type {
	return OBJECT
}

func (o *Object) TypeHash() (hash.Hash, error) {
	if err := o.access("object"); err != nil {
		return hash.Empty, err
	}
	return ObjectTypeHash, nil
}

// Get returns the field with the given key.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.fields[key]
	return v, ok
}

// Keys returns the object's keys in sorted order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.fields))
	for k := range o.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of fields.
func (o *Object) Len() int {
	return len(o.fields)
}

func (o *Object) Inspect() string {
	var b strings.Builder
	b.WriteString("{")
	for i, k := range o.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(o.fields[k].Inspect())
	}
	b.WriteString("}")
	return b.String()
}

func (o *Object) Interface() interface{} {
	out := make(map[string]interface{}, len(o.fields))
	for k, v := range o.fields {
		out[k] = v.Interface()
	}
	return out
}
