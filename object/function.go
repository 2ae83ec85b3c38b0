package object

import (
	"fmt"

	"github.com/skald-lang/skald/hash"
)

// Function is a first-class reference to a callable location, identified by
// its hash. It implements the Value interface.
type Function struct {
	storage
	name string
	h    hash.Hash
}

// NewFunction returns a function value referring to the callable registered
// under the given name.
func NewFunction(name string) *Function {
	return &Function{name: name, h: hash.OfName(name)}
}

func (f *Function) Type() Type {
	return FUNCTION
}

func (f *Function) TypeHash() (hash.Hash, error) {
	if err := f.access("function"); err != nil {
		return hash.Empty, err
	}
	return FunctionTypeHash, nil
}

// Name returns the function's registered name.
func (f *Function) Name() string {
	return f.name
}

// Hash returns the hash the function resolves through.
func (f *Function) Hash() hash.Hash {
	return f.h
}

func (f *Function) Inspect() string {
	return fmt.Sprintf("fn(%s)", f.name)
}

func (f *Function) Interface() interface{} {
	return f.name
}
