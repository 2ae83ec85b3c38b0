package runtime

import (
	"unicode/utf8"

	"github.com/skald-lang/skald/errz"
	"github.com/skald-lang/skald/hash"
)

// Module is an ordered collection of native function registrations, built
// incrementally and then frozen by installation into a Context.
type Module struct {
	entries []moduleEntry
	frozen  bool
}

type moduleEntry struct {
	name string
	hash hash.Hash
	fn   Function
}

// NewModule returns an empty module.
func NewModule() *Module {
	return &Module{}
}

// Function registers fn under the given name. The name must be non-empty,
// valid UTF-8. Duplicate names within a module are not rejected here; they
// surface as duplicate symbols when the module is installed.
func (m *Module) Function(name string, fn Function) error {
	if m.frozen {
		return errz.NewInvalidContext("module has been installed and is frozen")
	}
	if name == "" || !utf8.ValidString(name) {
		return errz.NewInvalidName(name)
	}
	if fn == nil {
		return errz.NewInvalidContext("function must not be nil")
	}
	m.entries = append(m.entries, moduleEntry{
		name: name,
		hash: hash.OfName(name),
		fn:   fn,
	})
	return nil
}

// Len returns the number of registered functions.
func (m *Module) Len() int {
	return len(m.entries)
}
