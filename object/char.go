package object

import (
	"fmt"

	"github.com/skald-lang/skald/errz"
	"github.com/skald-lang/skald/hash"
)

// Char wraps a Unicode code point and implements the Value interface.
// Characters are only valid below 0x110000 and outside the surrogate range
// 0xD800 to 0xDFFF inclusive.
type Char struct {
	value rune
}

// NewChar returns a character value, or an error if the code point is not a
// valid character. On error no value is produced.
func NewChar(value rune) (*Char, error) {
	if !ValidChar(value) {
		return nil, errz.NewRuntimeError("invalid character code point %#x", value)
	}
	return &Char{value: value}, nil
}

// ValidChar reports whether the code point is a valid character.
func ValidChar(value rune) bool {
	if value < 0 || value > 0x10ffff {
		return false
	}
	if value >= 0xd800 && value <= 0xdfff {
		return false
	}
	return true
}

func (c *Char) Type() Type {
	return CHAR
}

func (c *Char) TypeHash() (hash.Hash, error) {
	return CharTypeHash, nil
}

func (c *Char) Value() rune {
	return c.value
}

func (c *Char) Inspect() string {
	return fmt.Sprintf("%q", c.value)
}

func (c *Char) Interface() interface{} {
	return c.value
}
