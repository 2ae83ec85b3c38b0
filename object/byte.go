package object

import (
	"fmt"

	"github.com/skald-lang/skald/hash"
)

// Byte wraps byte and implements the Value interface.
type Byte struct {
	value byte
}

// NewByte returns the interned byte value.
func NewByte(value byte) *Byte {
	return byteCache[value]
}

func (b *Byte) Type() Type {
	return BYTE
}

func (b *Byte) TypeHash() (hash.Hash, error) {
	return ByteTypeHash, nil
}

func (b *Byte) Value() byte {
	return b.value
}

func (b *Byte) Inspect() string {
	return fmt.Sprintf("%d", b.value)
}

func (b *Byte) Interface() interface{} {
	return b.value
}

var byteCache = []*Byte{}

func init() {
	byteCache = make([]*Byte, 256)
	for i := 0; i < 256; i++ {
		byteCache[i] = &Byte{value: byte(i)}
	}
}
