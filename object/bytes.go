package object

import (
	"fmt"

	"github.com/skald-lang/skald/hash"
)

// Bytes wraps []byte and implements the Value interface.
type Bytes struct {
	storage
	value []byte
}

// NewBytes returns a bytes value owning the given slice.
func NewBytes(value []byte) *Bytes {
	return &Bytes{value: value}
}

func (b *Bytes) Type() Type {
	return BYTES
}

func (b *Bytes) TypeHash() (hash.Hash, error) {
	if err := b.access("bytes"); err != nil {
		return hash.Empty, err
	}
	return BytesTypeHash, nil
}

func (b *Bytes) Value() []byte {
	return b.value
}

func (b *Bytes) Inspect() string {
	return fmt.Sprintf("b%q", b.value)
}

func (b *Bytes) Interface() interface{} {
	return b.value
}
