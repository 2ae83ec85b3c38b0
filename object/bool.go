package object

import (
	"github.com/skald-lang/skald/hash"
)

// Bool wraps bool and implements the Value interface.
type Bool struct {
	value bool
}

var (
	// True is the singleton true value.
	True = &Bool{value: true}
	// False is the singleton false value.
	False = &Bool{value: false}
)

// NewBool returns one of the singleton boolean values.
func NewBool(value bool) *Bool {
	if value {
		return True
	}
	return False
}

func (b *Bool) Type() Type {
	return BOOL
}

func (b *Bool) TypeHash() (hash.Hash, error) {
	return BoolTypeHash, nil
}

func (b *Bool) Value() bool {
	return b.value
}

func (b *Bool) Inspect() string {
	if b.value {
		return "true"
	}
	return "false"
}

func (b *Bool) Interface() interface{} {
	return b.value
}
