package runtime

import (
	"github.com/hashicorp/go-multierror"

	"github.com/skald-lang/skald/errz"
	"github.com/skald-lang/skald/hash"
)

// Context aggregates installed modules into a hash-resolvable symbol table.
// Symbol uniqueness is global across all installed modules.
type Context struct {
	items map[hash.Hash]contextItem
}

type contextItem struct {
	name string
	fn   Function
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{items: map[hash.Hash]contextItem{}}
}

// Install merges a module's registrations into the context and freezes the
// module. Every colliding symbol is reported; non-colliding functions from
// the same module are still installed (no rollback).
func (c *Context) Install(m *Module) error {
	if c.items == nil {
		return errz.NewInvalidContext("context was not constructed with NewContext")
	}
	if m == nil {
		return errz.NewInvalidContext("module is not set")
	}
	var result *multierror.Error
	for _, entry := range m.entries {
		if _, exists := c.items[entry.hash]; exists {
			result = multierror.Append(result, errz.NewDuplicateSymbol(entry.name, entry.hash))
			continue
		}
		c.items[entry.hash] = contextItem{name: entry.name, fn: entry.fn}
	}
	m.frozen = true
	return result.ErrorOrNil()
}

// Runtime snapshots the context into an immutable, shareable form. The
// context may be modified or discarded afterwards without affecting the
// snapshot.
func (c *Context) Runtime() (*RuntimeContext, error) {
	if c.items == nil {
		return nil, errz.NewInvalidContext("context was not constructed with NewContext")
	}
	items := make(map[hash.Hash]contextItem, len(c.items))
	for h, item := range c.items {
		items[h] = item
	}
	return &RuntimeContext{items: items}, nil
}

// RuntimeContext is a read-only snapshot of a Context's resolvable symbols.
// It is immutable after construction and safe to share across concurrently
// executing virtual machines.
type RuntimeContext struct {
	items map[hash.Hash]contextItem
}

// Lookup resolves a symbol hash to its native function.
func (rt *RuntimeContext) Lookup(h hash.Hash) (Function, bool) {
	item, ok := rt.items[h]
	return item.fn, ok
}

// Name returns the registered name for a symbol hash, for error reporting.
func (rt *RuntimeContext) Name(h hash.Hash) (string, bool) {
	item, ok := rt.items[h]
	return item.name, ok
}

// Len returns the number of resolvable symbols.
func (rt *RuntimeContext) Len() int {
	return len(rt.items)
}
