package compiler

import (
	"github.com/skald-lang/skald/hash"
	"github.com/skald-lang/skald/object"
	"github.com/skald-lang/skald/op"
)

// funcCompiler lowers one parsed function body into instructions. All name
// resolution it performs is local: parameters and let bindings become slots,
// and call targets are recorded by name and hash for run-time resolution.
type funcCompiler struct {
	decl   *funcDecl
	source string
	diags  *Diagnostics

	slots        map[string]int
	numLocals    int
	instructions []Instruction
	constants    []object.Value
	calls        []CallSite
	failed       bool
}

func newFuncCompiler(decl *funcDecl, source string, diags *Diagnostics) *funcCompiler {
	fc := &funcCompiler{
		decl:   decl,
		source: source,
		diags:  diags,
		slots:  map[string]int{},
	}
	for _, p := range decl.params {
		fc.bind(p)
	}
	return fc
}

func (fc *funcCompiler) errorf(pos position, format string, args ...any) {
	if !fc.failed {
		fc.diags.errorf(fc.source, pos.line, pos.column, format, args...)
	}
	fc.failed = true
}

// bind allocates a fresh slot for name. Rebinding a name shadows the earlier
// slot for the rest of the body.
func (fc *funcCompiler) bind(name string) int {
	slot := fc.numLocals
	fc.numLocals++
	fc.slots[name] = slot
	return slot
}

func (fc *funcCompiler) emit(code op.Code, operands ...int) {
	ins := Instruction{Op: code}
	if len(operands) > 0 {
		ins.A = operands[0]
	}
	if len(operands) > 1 {
		ins.B = operands[1]
	}
	fc.instructions = append(fc.instructions, ins)
}

func (fc *funcCompiler) constant(v object.Value) int {
	fc.constants = append(fc.constants, v)
	return len(fc.constants) - 1
}

func (fc *funcCompiler) compile() *CompiledFunction {
	fc.compileBlock(fc.decl.body)
	fc.emit(op.ReturnValue)
	if fc.failed {
		return nil
	}
	return NewCompiledFunction(CompiledFunctionParams{
		Name:         fc.decl.name,
		Public:       fc.decl.public,
		Params:       fc.decl.params,
		NumLocals:    fc.numLocals,
		Instructions: fc.instructions,
		Constants:    fc.constants,
		Calls:        fc.calls,
	})
}

func (fc *funcCompiler) compileBlock(block *blockExpr) {
	for _, s := range block.stmts {
		switch s := s.(type) {
		case *letStmt:
			fc.compileExpr(s.value)
			fc.emit(op.StoreFast, fc.bind(s.name))
		case *exprStmt:
			fc.compileExpr(s.value)
			fc.emit(op.PopTop)
		}
	}
	if block.tail != nil {
		fc.compileExpr(block.tail)
	} else {
		fc.emit(op.Unit)
	}
}

func (fc *funcCompiler) compileExpr(e expr) {
	switch e := e.(type) {
	case *intLit:
		fc.emit(op.LoadConst, fc.constant(object.NewInt(e.value)))
	case *floatLit:
		fc.emit(op.LoadConst, fc.constant(object.NewFloat(e.value)))
	case *boolLit:
		if e.value {
			fc.emit(op.True)
		} else {
			fc.emit(op.False)
		}
	case *charLit:
		c, err := object.NewChar(e.value)
		if err != nil {
			fc.errorf(e.pos, "char literal %q is not a valid scalar value", e.value)
			return
		}
		fc.emit(op.LoadConst, fc.constant(c))
	case *stringLit:
		fc.emit(op.LoadConst, fc.constant(object.NewString(e.value)))
	case *unitLit:
		fc.emit(op.Unit)
	case *identExpr:
		slot, ok := fc.slots[e.name]
		if !ok {
			fc.errorf(e.pos, "undefined name %q", e.name)
			return
		}
		fc.emit(op.LoadFast, slot)
	case *binaryExpr:
		fc.compileExpr(e.left)
		fc.compileExpr(e.right)
		fc.emit(op.BinaryOp, int(binaryOpType(e.op)))
	case *callExpr:
		for _, arg := range e.args {
			fc.compileExpr(arg)
		}
		fc.calls = append(fc.calls, CallSite{Name: e.name, Hash: hash.OfName(e.name)})
		fc.emit(op.Call, len(fc.calls)-1, len(e.args))
	case *tupleExpr:
		for _, elem := range e.elems {
			fc.compileExpr(elem)
		}
		fc.emit(op.BuildTuple, len(e.elems))
	case *vecExpr:
		for _, elem := range e.elems {
			fc.compileExpr(elem)
		}
		fc.emit(op.BuildVec, len(e.elems))
	}
}

func binaryOpType(kind tokenKind) op.BinaryOpType {
	switch kind {
	case tokenPlus:
		return op.Add
	case tokenMinus:
		return op.Subtract
	case tokenStar:
		return op.Multiply
	case tokenSlash:
		return op.Divide
	default:
		return op.Modulo
	}
}
