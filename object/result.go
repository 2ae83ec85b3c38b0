package object

import (
	"fmt"

	"github.com/skald-lang/skald/hash"
)

// Result holds either an ok value or an err value. It implements the Value
// interface.
type Result struct {
	storage
	ok    bool
	value Value
}

// NewOk returns a result holding an ok value.
func NewOk(value Value) *Result {
	return &Result{ok: true, value: value}
}

// NewErr returns a result holding an err value.
func NewErr(value Value) *Result {
	return &Result{ok: false, value: value}
}

func (r *Result) Type() Type {
	return RESULT
}

func (r *Result) TypeHash() (hash.Hash, error) {
	if err := r.access("result"); err != nil {
		return hash.Empty, err
	}
	return ResultTypeHash, nil
}

// IsOk reports whether the result is ok.
func (r *Result) IsOk() bool {
	return r.ok
}

// Value returns the held value.
func (r *Result) Value() Value {
	return r.value
}

func (r *Result) Inspect() string {
	if r.ok {
		return fmt.Sprintf("Ok(%s)", r.value.Inspect())
	}
	return fmt.Sprintf("Err(%s)", r.value.Inspect())
}

func (r *Result) Interface() interface{} {
	return r.value.Interface()
}
