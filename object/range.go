package object

import (
	"fmt"

	"github.com/skald-lang/skald/hash"
)

// Range is a pair of bounds. It implements the Value interface.
type Range struct {
	storage
	start     Value
	end       Value
	inclusive bool
}

// NewRange returns a range value with the given bounds.
func NewRange(start, end Value, inclusive bool) *Range {
	return &Range{start: start, end: end, inclusive: inclusive}
}

func (r *Range) Type() Type {
	return RANGE
}

func (r *Range) TypeHash() (hash.Hash, error) {
	if err := r.access("range"); err != nil {
		return hash.Empty, err
	}
	return RangeTypeHash, nil
}

// Start returns the lower bound.
func (r *Range) Start() Value {
	return r.start
}

// End returns the upper bound.
func (r *Range) End() Value {
	return r.end
}

// Inclusive reports whether the upper bound is included.
func (r *Range) Inclusive() bool {
	return r.inclusive
}

func (r *Range) Inspect() string {
	op := ".."
	if r.inclusive {
		op = "..="
	}
	return fmt.Sprintf("%s%s%s", r.start.Inspect(), op, r.end.Inspect())
}

func (r *Range) Interface() interface{} {
	return []interface{}{r.start.Interface(), r.end.Interface()}
}
