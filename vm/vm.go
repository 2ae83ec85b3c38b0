// Package vm executes compiled units against a runtime context. A VM binds
// one immutable Unit and one RuntimeContext at construction, exposes the
// value stack used to pass entrypoint arguments, and runs synchronously to
// completion.
package vm

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/skald-lang/skald/compiler"
	"github.com/skald-lang/skald/errz"
	"github.com/skald-lang/skald/hash"
	"github.com/skald-lang/skald/object"
	"github.com/skald-lang/skald/runtime"
)

// VM is a single-threaded virtual machine. It is not safe for concurrent
// use; units and runtime contexts may be shared across VMs freely.
type VM struct {
	rt       *runtime.RuntimeContext
	unit     *compiler.Unit
	stack    *object.Stack
	logger   zerolog.Logger
	maxDepth int

	entry     *compiler.CompiledFunction
	entryArgs int
	output    object.Value
	ticks     int
}

// New returns a VM bound to the given runtime context and unit. Both are
// required: the machine has no unbound state.
func New(rt *runtime.RuntimeContext, unit *compiler.Unit, opts ...Option) (*VM, error) {
	if rt == nil {
		return nil, errz.NewRuntimeError("vm requires a runtime context")
	}
	if unit == nil {
		return nil, errz.NewRuntimeError("vm requires a compiled unit")
	}
	vm := &VM{
		rt:       rt,
		unit:     unit,
		stack:    object.NewStack(),
		logger:   zerolog.Nop(),
		maxDepth: DefaultMaxCallDepth,
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm, nil
}

// Stack returns the machine's value stack. Callers push entrypoint arguments
// onto it before Complete; natives pop their arguments from it and push
// their results.
func (vm *VM) Stack() *object.Stack {
	return vm.stack
}

// SetEntrypoint resolves h against the unit's public functions and records
// it, along with the argument count the caller will provide. Fails if the
// hash does not resolve or if args differs from the function's declared
// arity. The stack is left untouched either way.
func (vm *VM) SetEntrypoint(h hash.Hash, args int) error {
	fn, ok := vm.unit.Lookup(h)
	if !ok || !fn.Public() {
		return errz.NewMissingEntrypoint(h)
	}
	if args != fn.Arity() {
		return errz.NewArityMismatch(args, fn.Arity())
	}
	vm.entry = fn
	vm.entryArgs = args
	return nil
}

// Complete runs the entrypoint to completion and returns its result. The top
// entryArgs stack values are consumed as arguments, in push order. A result
// from an earlier run is released and replaced. Execution is synchronous;
// ctx cancellation is observed between instructions.
func (vm *VM) Complete(ctx context.Context) (object.Value, error) {
	if vm.entry == nil {
		return nil, errz.NewMissingEntrypoint(hash.Empty)
	}
	args, err := vm.stack.Drain(vm.entryArgs)
	if err != nil {
		return nil, err
	}
	vm.logger.Debug().
		Str("entrypoint", vm.entry.Name()).
		Int("args", vm.entryArgs).
		Msg("run started")
	result, err := vm.call(ctx, vm.entry, args, 0)
	if err != nil {
		vm.logger.Debug().Err(err).Msg("run failed")
		return nil, err
	}
	if vm.output != nil {
		object.Free(vm.output)
	}
	vm.output = result
	vm.logger.Debug().Str("result", result.Inspect()).Msg("run completed")
	return result, nil
}

// Output returns the result of the most recent successful run, or nil.
func (vm *VM) Output() object.Value {
	return vm.output
}

func (vm *VM) checkContext(ctx context.Context) error {
	vm.ticks++
	if vm.ticks%contextCheckInterval != 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return errz.NewRuntimeError("execution canceled: %s", err)
	}
	return nil
}

// call executes one compiled function with the given arguments. Script
// callees recurse through call; native callees go through the shared value
// stack per the calling convention.
func (vm *VM) call(ctx context.Context, fn *compiler.CompiledFunction, args []object.Value, depth int) (object.Value, error) {
	if depth > vm.maxDepth {
		return nil, errz.NewRuntimeError("call depth limit %d exceeded", vm.maxDepth)
	}
	locals := make([]object.Value, fn.NumLocals())
	copy(locals, args)
	for i := len(args); i < len(locals); i++ {
		locals[i] = object.Unit
	}

	var operands []object.Value
	push := func(v object.Value) {
		operands = append(operands, v)
	}
	pop := func() (object.Value, error) {
		if len(operands) == 0 {
			return nil, errz.NewStackUnderflow(1, 0)
		}
		v := operands[len(operands)-1]
		operands = operands[:len(operands)-1]
		return v, nil
	}
	popN := func(n int) ([]object.Value, error) {
		if len(operands) < n {
			return nil, errz.NewStackUnderflow(n, len(operands))
		}
		vals := append([]object.Value(nil), operands[len(operands)-n:]...)
		operands = operands[:len(operands)-n]
		return vals, nil
	}

	for ip := 0; ip < fn.InstructionCount(); ip++ {
		if err := vm.checkContext(ctx); err != nil {
			return nil, err
		}
		ins := fn.Instruction(ip)
		switch ins.Op {
		case opNop:
			// nothing
		case opHalt:
			return object.Unit, nil
		case opLoadConst:
			// String constants get a fresh handle per load so a native
			// claiming ownership cannot consume the shared constant.
			if s, ok := fn.Constant(ins.A).(*object.String); ok {
				push(object.NewString(s.Value()))
			} else {
				push(fn.Constant(ins.A))
			}
		case opLoadFast:
			push(locals[ins.A])
		case opStoreFast:
			v, err := pop()
			if err != nil {
				return nil, err
			}
			locals[ins.A] = v
		case opBinary:
			right, err := pop()
			if err != nil {
				return nil, err
			}
			left, err := pop()
			if err != nil {
				return nil, err
			}
			out, err := binaryOp(left, right, binType(ins.A))
			if err != nil {
				return nil, err
			}
			push(out)
		case opBuildTuple:
			elems, err := popN(ins.A)
			if err != nil {
				return nil, err
			}
			push(object.NewTuple(elems))
		case opBuildVec:
			elems, err := popN(ins.A)
			if err != nil {
				return nil, err
			}
			push(object.NewVec(elems))
		case opPopTop:
			if _, err := pop(); err != nil {
				return nil, err
			}
		case opUnit:
			push(object.Unit)
		case opTrue:
			push(object.True)
		case opFalse:
			push(object.False)
		case opCall:
			site := fn.Call(ins.A)
			callArgs, err := popN(ins.B)
			if err != nil {
				return nil, err
			}
			result, err := vm.dispatch(ctx, site, callArgs, depth)
			if err != nil {
				return nil, err
			}
			push(result)
		case opReturn:
			return pop()
		default:
			return nil, errz.NewRuntimeError("invalid opcode %d at %s+%d", ins.Op, fn.Name(), ip)
		}
	}
	// Bodies end with RETURN_VALUE; falling off the end means a build bug.
	return nil, errz.NewRuntimeError("function %s ended without returning", fn.Name())
}

// dispatch resolves a call site and invokes it. Compiled functions shadow
// native registrations with the same hash.
func (vm *VM) dispatch(ctx context.Context, site compiler.CallSite, args []object.Value, depth int) (object.Value, error) {
	if callee, ok := vm.unit.Lookup(site.Hash); ok {
		if len(args) != callee.Arity() {
			return nil, errz.NewBadArgumentCount(len(args), callee.Arity())
		}
		vm.logger.Trace().Str("function", callee.Name()).Msg("script call")
		return vm.call(ctx, callee, args, depth+1)
	}
	if native, ok := vm.rt.Lookup(site.Hash); ok {
		vm.logger.Trace().Str("function", site.Name).Msg("native call")
		return vm.callNative(site, native, args)
	}
	return nil, errz.NewRuntimeError("call to undefined function %q (%s)", site.Name, site.Hash)
}

// callNative pushes the arguments onto the shared stack, invokes the native,
// and takes back the single result the convention requires it to leave.
func (vm *VM) callNative(site compiler.CallSite, native runtime.Function, args []object.Value) (object.Value, error) {
	before := vm.stack.Len()
	for _, arg := range args {
		vm.stack.Push(arg)
	}
	if err := native(vm.stack, len(args)); err != nil {
		return nil, err
	}
	if vm.stack.Len() != before+1 {
		return nil, errz.NewRuntimeError(
			"native function %q left %d values on the stack, expected 1",
			site.Name, vm.stack.Len()-before)
	}
	return vm.stack.Pop()
}
