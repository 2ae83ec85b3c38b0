package object

import (
	"fmt"

	"github.com/skald-lang/skald/hash"
)

// The variants below are heap-owning placeholders for execution constructs
// the host can receive, classify, and pass back, but not drive through this
// package: asynchronous computations, streams, generators, deferred format
// specifications and iterators.

// Future is a deferred computation. It implements the Value interface.
type Future struct {
	storage
	payload interface{}
}

// NewFuture returns a future value owning the given payload.
func NewFuture(payload interface{}) *Future {
	return &Future{payload: payload}
}

func (f *Future) Type() Type {
	return FUTURE
}

func (f *Future) TypeHash() (hash.Hash, error) {
	if err := f.access("future"); err != nil {
		return hash.Empty, err
	}
	return FutureTypeHash, nil
}

func (f *Future) Inspect() string {
	return "future"
}

func (f *Future) Interface() interface{} {
	return f.payload
}

// Stream is an asynchronous sequence of values. It implements the Value
// interface.
type Stream struct {
	storage
	payload interface{}
}

// NewStream returns a stream value owning the given payload.
func NewStream(payload interface{}) *Stream {
	return &Stream{payload: payload}
}

func (s *Stream) Type() Type {
	return STREAM
}

func (s *Stream) TypeHash() (hash.Hash, error) {
	if err := s.access("stream"); err != nil {
		return hash.Empty, err
	}
	return StreamTypeHash, nil
}

func (s *Stream) Inspect() string {
	return "stream"
}

func (s *Stream) Interface() interface{} {
	return s.payload
}

// Generator is a suspended script computation. It implements the Value
// interface.
type Generator struct {
	storage
	payload interface{}
}

// NewGenerator returns a generator value owning the given payload.
func NewGenerator(payload interface{}) *Generator {
	return &Generator{payload: payload}
}

func (g *Generator) Type() Type {
	return GENERATOR
}

func (g *Generator) TypeHash() (hash.Hash, error) {
	if err := g.access("generator"); err != nil {
		return hash.Empty, err
	}
	return GeneratorTypeHash, nil
}

func (g *Generator) Inspect() string {
	return "generator"
}

func (g *Generator) Interface() interface{} {
	return g.payload
}

// GeneratorState is the result of resuming a generator: either a yielded
// value or a completed value. It implements the Value interface.
type GeneratorState struct {
	storage
	complete bool
	value    Value
}

// NewYielded returns a generator state holding a yielded value.
func NewYielded(value Value) *GeneratorState {
	return &GeneratorState{value: value}
}

// NewComplete returns a generator state holding a completion value.
func NewComplete(value Value) *GeneratorState {
	return &GeneratorState{complete: true, value: value}
}

func (g *GeneratorState) Type() Type {
	return GENERATOR_STATE
}

func (g *GeneratorState) TypeHash() (hash.Hash, error) {
	if err := g.access("generator state"); err != nil {
		return hash.Empty, err
	}
	return GeneratorStateTypeHash, nil
}

// IsComplete reports whether the generator has finished.
func (g *GeneratorState) IsComplete() bool {
	return g.complete
}

// Value returns the yielded or completion value.
func (g *GeneratorState) Value() Value {
	return g.value
}

func (g *GeneratorState) Inspect() string {
	if g.complete {
		return fmt.Sprintf("Complete(%s)", g.value.Inspect())
	}
	return fmt.Sprintf("Yielded(%s)", g.value.Inspect())
}

func (g *GeneratorState) Interface() interface{} {
	return g.value.Interface()
}

// Format is a deferred formatting specification applied to a value. It
// implements the Value interface.
type Format struct {
	storage
	spec  string
	value Value
}

// NewFormat returns a format value applying spec to the given value.
func NewFormat(spec string, value Value) *Format {
	return &Format{spec: spec, value: value}
}

func (f *Format) Type() Type {
	return FORMAT
}

func (f *Format) TypeHash() (hash.Hash, error) {
	if err := f.access("format"); err != nil {
		return hash.Empty, err
	}
	return FormatTypeHash, nil
}

// Spec returns the format specification.
func (f *Format) Spec() string {
	return f.spec
}

// Value returns the formatted value.
func (f *Format) Value() Value {
	return f.value
}

func (f *Format) Inspect() string {
	return fmt.Sprintf("format(%q, %s)", f.spec, f.value.Inspect())
}

func (f *Format) Interface() interface{} {
	return f.value.Interface()
}

// Iterator is an in-progress iteration over a container. It implements the
// Value interface.
type Iterator struct {
	storage
	items []Value
	pos   int
}

// NewIterator returns an iterator over the given items.
func NewIterator(items []Value) *Iterator {
	return &Iterator{items: items}
}

func (it *Iterator) Type() Type {
	return ITERATOR
}

func (it *Iterator) TypeHash() (hash.Hash, error) {
	if err := it.access("iterator"); err != nil {
		return hash.Empty, err
	}
	return IteratorTypeHash, nil
}

// Next returns the next value, or false when exhausted.
func (it *Iterator) Next() (Value, bool) {
	if it.pos >= len(it.items) {
		return nil, false
	}
	v := it.items[it.pos]
	it.pos++
	return v, true
}

func (it *Iterator) Inspect() string {
	return "iterator"
}

func (it *Iterator) Interface() interface{} {
	out := make([]interface{}, 0, len(it.items))
	for _, item := range it.items {
		out = append(out, item.Interface())
	}
	return out
}

// Any is an opaque host value carried through the runtime unchanged. It
// implements the Value interface.
type Any struct {
	storage
	name  string
	value interface{}
}

// NewAny returns an opaque value with the given host type name.
func NewAny(name string, value interface{}) *Any {
	return &Any{name: name, value: value}
}

func (a *Any) Type() Type {
	return ANY
}

func (a *Any) TypeHash() (hash.Hash, error) {
	if err := a.access("any"); err != nil {
		return hash.Empty, err
	}
	return AnyTypeHash, nil
}

// Name returns the host type name.
func (a *Any) Name() string {
	return a.name
}

func (a *Any) Inspect() string {
	return fmt.Sprintf("any(%s)", a.name)
}

func (a *Any) Interface() interface{} {
	return a.value
}
