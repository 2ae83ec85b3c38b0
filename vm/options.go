package vm

import "github.com/rs/zerolog"

// DefaultMaxCallDepth is the call depth limit applied when no option
// overrides it.
const DefaultMaxCallDepth = 1024

// contextCheckInterval is the number of instructions between deterministic
// checks of ctx.Done().
const contextCheckInterval = 64

// Option is a configuration function for a VM.
type Option func(*VM)

// WithLogger sets the logger used to trace execution. Logging is disabled
// by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(vm *VM) {
		vm.logger = logger
	}
}

// WithMaxCallDepth caps how deeply script calls may nest before execution
// fails with a runtime error.
func WithMaxCallDepth(depth int) Option {
	return func(vm *VM) {
		if depth > 0 {
			vm.maxDepth = depth
		}
	}
}
