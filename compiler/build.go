package compiler

import (
	"fmt"

	"github.com/rs/zerolog"
)

type config struct {
	diags  *Diagnostics
	logger zerolog.Logger
}

// Option configures a build.
type Option func(*config)

// WithDiagnostics directs build reports into the given collection. Without
// it, diagnostics are collected internally and only the summary error
// survives.
func WithDiagnostics(d *Diagnostics) Option {
	return func(c *config) {
		c.diags = d
	}
}

// WithLogger sets the logger used to trace the build.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Build compiles every source in the collection into a single Unit. The
// returned Unit is immutable. A nil Unit and a summary error are returned
// when any source fails to compile; the per-report detail goes to the
// diagnostics collection.
func Build(sources *Sources, opts ...Option) (*Unit, error) {
	c := &config{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	if c.diags == nil {
		c.diags = NewDiagnostics()
	}
	if sources == nil || sources.Len() == 0 {
		return nil, fmt.Errorf("no sources to build")
	}

	unit := newUnit()
	declared := map[string]string{} // function name -> source it came from
	for i := 0; i < sources.Len(); i++ {
		src := sources.Get(i)
		c.logger.Debug().Str("source", src.Name()).Msg("compiling source")
		decls := newParser(src, c.diags).parseFile()
		for _, decl := range decls {
			if prev, ok := declared[decl.name]; ok {
				c.diags.errorf(src.Name(), decl.pos.line, decl.pos.column,
					"function %q is already defined in %s", decl.name, prev)
				continue
			}
			declared[decl.name] = src.Name()
			fn := newFuncCompiler(decl, src.Name(), c.diags).compile()
			if fn == nil {
				continue
			}
			c.logger.Debug().
				Str("function", fn.Name()).
				Int("arity", fn.Arity()).
				Stringer("hash", fn.Hash()).
				Msg("compiled function")
			unit.add(fn)
		}
	}

	if c.diags.HasErrors() {
		n := 0
		for _, r := range c.diags.Reports() {
			if r.Severity == Error {
				n++
			}
		}
		return nil, fmt.Errorf("build failed with %d error(s)", n)
	}
	return unit, nil
}
