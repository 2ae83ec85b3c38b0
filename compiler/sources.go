// Package compiler turns named source texts into an immutable compiled Unit:
// an entrypoint table keyed by hash plus the function bodies the virtual
// machine executes. The script language it accepts is deliberately small;
// the build step, sources and diagnostics are collaborators of the
// value/stack/VM core, not the core itself.
package compiler

import (
	"unicode/utf8"

	"github.com/gofrs/uuid"
)

// Source is one named script text queued for compilation.
type Source struct {
	id      uuid.UUID
	name    string
	content string
}

// NewSource returns a source with the given name and text. Returns nil if
// either the name or the text is not valid UTF-8.
func NewSource(name, content string) *Source {
	if !utf8.ValidString(name) || !utf8.ValidString(content) {
		return nil
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil
	}
	return &Source{id: id, name: name, content: content}
}

// ID returns the source's unique identity.
func (s *Source) ID() uuid.UUID {
	return s.id
}

// Name returns the source's name, used in diagnostics.
func (s *Source) Name() string {
	return s.name
}

// Content returns the source text.
func (s *Source) Content() string {
	return s.content
}

// Sources is a collection of sources to be compiled together. Inserted
// sources are owned by the collection.
type Sources struct {
	list []*Source
}

// NewSources returns an empty collection.
func NewSources() *Sources {
	return &Sources{}
}

// Insert adds a source to the collection. Returns false if the source is
// absent.
func (s *Sources) Insert(src *Source) bool {
	if src == nil {
		return false
	}
	s.list = append(s.list, src)
	return true
}

// Len returns the number of sources.
func (s *Sources) Len() int {
	return len(s.list)
}

// Get returns the source at index i.
func (s *Sources) Get(i int) *Source {
	if i < 0 || i >= len(s.list) {
		return nil
	}
	return s.list[i]
}
