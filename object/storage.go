package object

import "github.com/skald-lang/skald/errz"

// storage tracks ownership of a heap variant's backing data. Consuming the
// storage (via Free or an ownership-claiming coercion) is a one-shot
// operation; later type resolution on the same handle reports an access
// error rather than observing torn state.
type storage struct {
	consumed bool
}

func (s *storage) consume() bool {
	if s.consumed {
		return false
	}
	s.consumed = true
	return true
}

// access returns an error if the storage has been consumed.
func (s *storage) access(what string) error {
	if s.consumed {
		return errz.NewValueAccess(what)
	}
	return nil
}
