package compiler

import (
	"fmt"
	"strings"

	"github.com/skald-lang/skald/hash"
	"github.com/skald-lang/skald/object"
	"github.com/skald-lang/skald/op"
)

// Instruction is one decoded operation. Operands that an opcode does not use
// are zero.
type Instruction struct {
	Op op.Code
	A  int
	B  int
}

func (i Instruction) String() string {
	info := op.GetInfo(i.Op)
	switch info.OperandCount {
	case 0:
		return info.Name
	case 1:
		return fmt.Sprintf("%s %d", info.Name, i.A)
	default:
		return fmt.Sprintf("%s %d %d", info.Name, i.A, i.B)
	}
}

// CallSite is one named call target inside a function body. Targets are
// resolved by hash at run time, compiled functions first, then native
// registrations.
type CallSite struct {
	Name string
	Hash hash.Hash
}

// CompiledFunction is one compiled function body. It is immutable after
// creation.
type CompiledFunction struct {
	name         string
	hash         hash.Hash
	public       bool
	params       []string
	numLocals    int
	instructions []Instruction
	constants    []object.Value
	calls        []CallSite
}

// CompiledFunctionParams contains parameters for creating a CompiledFunction.
type CompiledFunctionParams struct {
	Name         string
	Public       bool
	Params       []string
	NumLocals    int
	Instructions []Instruction
	Constants    []object.Value
	Calls        []CallSite
}

// NewCompiledFunction creates a new immutable CompiledFunction. Input slices
// are copied.
func NewCompiledFunction(params CompiledFunctionParams) *CompiledFunction {
	return &CompiledFunction{
		name:         params.Name,
		hash:         hash.OfName(params.Name),
		public:       params.Public,
		params:       append([]string(nil), params.Params...),
		numLocals:    params.NumLocals,
		instructions: append([]Instruction(nil), params.Instructions...),
		constants:    append([]object.Value(nil), params.Constants...),
		calls:        append([]CallSite(nil), params.Calls...),
	}
}

// Name returns the declared function name.
func (f *CompiledFunction) Name() string {
	return f.name
}

// Hash returns the hash of the function name, the key callers resolve it by.
func (f *CompiledFunction) Hash() hash.Hash {
	return f.hash
}

// Public reports whether the function was declared pub and may serve as an
// entrypoint.
func (f *CompiledFunction) Public() bool {
	return f.public
}

// Arity returns the declared parameter count.
func (f *CompiledFunction) Arity() int {
	return len(f.params)
}

// NumLocals returns the number of local slots the body needs, parameters
// included.
func (f *CompiledFunction) NumLocals() int {
	return f.numLocals
}

// Instruction returns the instruction at index i.
func (f *CompiledFunction) Instruction(i int) Instruction {
	return f.instructions[i]
}

// InstructionCount returns the length of the body.
func (f *CompiledFunction) InstructionCount() int {
	return len(f.instructions)
}

// Constant returns the constant at index i.
func (f *CompiledFunction) Constant(i int) object.Value {
	return f.constants[i]
}

// Call returns the call site at index i.
func (f *CompiledFunction) Call(i int) CallSite {
	return f.calls[i]
}

func (f *CompiledFunction) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "fn %s/%d:\n", f.name, len(f.params))
	for _, ins := range f.instructions {
		fmt.Fprintf(&b, "  %s\n", ins)
	}
	return b.String()
}

// Unit is the immutable result of a successful build: every compiled
// function keyed by the hash of its name. Units can be shared freely across
// virtual machines.
type Unit struct {
	functions map[hash.Hash]*CompiledFunction
	order     []hash.Hash
}

func newUnit() *Unit {
	return &Unit{functions: map[hash.Hash]*CompiledFunction{}}
}

func (u *Unit) add(f *CompiledFunction) {
	if _, ok := u.functions[f.Hash()]; !ok {
		u.order = append(u.order, f.Hash())
	}
	u.functions[f.Hash()] = f
}

// Lookup returns the compiled function whose name hashes to h.
func (u *Unit) Lookup(h hash.Hash) (*CompiledFunction, bool) {
	f, ok := u.functions[h]
	return f, ok
}

// Len returns the number of compiled functions.
func (u *Unit) Len() int {
	return len(u.functions)
}

// Functions returns the compiled functions in declaration order.
func (u *Unit) Functions() []*CompiledFunction {
	out := make([]*CompiledFunction, 0, len(u.order))
	for _, h := range u.order {
		out = append(out, u.functions[h])
	}
	return out
}
