package object

import (
	"fmt"

	"github.com/skald-lang/skald/hash"
)

// String wraps string and implements the Value interface.
type String struct {
	storage
	value string
}

// NewString returns a string value.
func NewString(value string) *String {
	return &String{value: value}
}

func (s *String) Type() Type {
	return STRING
}

func (s *String) TypeHash() (hash.Hash, error) {
	if err := s.access("string"); err != nil {
		return hash.Empty, err
	}
	return StringTypeHash, nil
}

func (s *String) Value() string {
	return s.value
}

func (s *String) Inspect() string {
	return fmt.Sprintf("%q", s.value)
}

func (s *String) Interface() interface{} {
	return s.value
}
