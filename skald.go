// Package skald is the embedding API for the Skald scripting runtime. It
// wraps the compiler, runtime and vm packages behind two calls: Compile
// turns source text into an immutable Unit, and Eval runs a Unit's
// entrypoint with the supplied arguments.
package skald

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/skald-lang/skald/builtins"
	"github.com/skald-lang/skald/compiler"
	"github.com/skald-lang/skald/hash"
	"github.com/skald-lang/skald/object"
	"github.com/skald-lang/skald/runtime"
	"github.com/skald-lang/skald/vm"
)

// Option configures a Skald compilation or execution.
type Option func(*options)

type options struct {
	filename   string
	entrypoint string
	args       []object.Value
	modules    []*runtime.Module
	diags      *compiler.Diagnostics
	logger     zerolog.Logger
	loggerSet  bool
}

func collectOptions(opts ...Option) *options {
	o := &options{
		filename:   "main.skald",
		entrypoint: "main",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) compilerOpts() []compiler.Option {
	var opts []compiler.Option
	if o.diags != nil {
		opts = append(opts, compiler.WithDiagnostics(o.diags))
	}
	if o.loggerSet {
		opts = append(opts, compiler.WithLogger(o.logger))
	}
	return opts
}

func (o *options) vmOpts() []vm.Option {
	var opts []vm.Option
	if o.loggerSet {
		opts = append(opts, vm.WithLogger(o.logger))
	}
	return opts
}

// WithFilename sets the filename attached to the source being evaluated.
// It appears in diagnostics.
func WithFilename(filename string) Option {
	return func(o *options) {
		o.filename = filename
	}
}

// WithEntrypoint names the public function Eval runs. The default is "main".
func WithEntrypoint(name string) Option {
	return func(o *options) {
		o.entrypoint = name
	}
}

// WithArgs supplies the argument values passed to the entrypoint, in
// declaration order. The default is no arguments.
func WithArgs(args ...object.Value) Option {
	return func(o *options) {
		o.args = args
	}
}

// WithModule installs a native module into the runtime context used for
// execution. This option is additive. By default the environment is empty;
// use Builtins() for the standard natives:
//
//	result, _ := skald.Eval(ctx, source, skald.WithModule(skald.Builtins()))
func WithModule(m *runtime.Module) Option {
	return func(o *options) {
		o.modules = append(o.modules, m)
	}
}

// WithDiagnostics directs build reports into the given collection.
func WithDiagnostics(d *compiler.Diagnostics) Option {
	return func(o *options) {
		o.diags = d
	}
}

// WithLogger sets the logger used by the build step and the VM.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
		o.loggerSet = true
	}
}

// Builtins returns the default native module: print, len and str.
func Builtins() *runtime.Module {
	return builtins.Module()
}

// Compile builds source text into an immutable Unit. The returned Unit is
// safe to share across VMs and goroutines.
func Compile(source string, opts ...Option) (*compiler.Unit, error) {
	o := collectOptions(opts...)
	sources := compiler.NewSources()
	sources.Insert(compiler.NewSource(o.filename, source))
	return compiler.Build(sources, o.compilerOpts()...)
}

// Run executes a Unit's entrypoint and returns its result value.
func Run(ctx context.Context, unit *compiler.Unit, opts ...Option) (object.Value, error) {
	o := collectOptions(opts...)
	rt, err := runtimeContext(o.modules)
	if err != nil {
		return nil, err
	}
	machine, err := vm.New(rt, unit, o.vmOpts()...)
	if err != nil {
		return nil, err
	}
	for _, arg := range o.args {
		machine.Stack().Push(arg)
	}
	if err := machine.SetEntrypoint(hash.OfName(o.entrypoint), len(o.args)); err != nil {
		return nil, err
	}
	return machine.Complete(ctx)
}

// Eval compiles and runs source code. It is equivalent to Compile followed
// by Run.
func Eval(ctx context.Context, source string, opts ...Option) (object.Value, error) {
	unit, err := Compile(source, opts...)
	if err != nil {
		return nil, err
	}
	return Run(ctx, unit, opts...)
}

func runtimeContext(modules []*runtime.Module) (*runtime.RuntimeContext, error) {
	c := runtime.NewContext()
	for _, m := range modules {
		if err := c.Install(m); err != nil {
			return nil, err
		}
	}
	return c.Runtime()
}
