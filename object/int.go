package object

import (
	"fmt"

	"github.com/skald-lang/skald/hash"
)

// Int wraps int64 and implements the Value interface.
type Int struct {
	value int64
}

// NewInt returns an integer value.
func NewInt(value int64) *Int {
	if value >= 0 && value < int64(len(intCache)) {
		return intCache[value]
	}
	return &Int{value: value}
}

func (i *Int) Type() Type {
	return INT
}

func (i *Int) TypeHash() (hash.Hash, error) {
	return IntTypeHash, nil
}

func (i *Int) Value() int64 {
	return i.value
}

func (i *Int) Inspect() string {
	return fmt.Sprintf("%d", i.value)
}

func (i *Int) Interface() interface{} {
	return i.value
}

var intCache = []*Int{}

func init() {
	intCache = make([]*Int, 256)
	for i := 0; i < 256; i++ {
		intCache[i] = &Int{value: int64(i)}
	}
}
