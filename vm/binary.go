package vm

import (
	"github.com/skald-lang/skald/errz"
	"github.com/skald-lang/skald/object"
	"github.com/skald-lang/skald/op"
)

// Opcode aliases keep the execution switch compact.
const (
	opNop        = op.Nop
	opHalt       = op.Halt
	opCall       = op.Call
	opReturn     = op.ReturnValue
	opLoadFast   = op.LoadFast
	opLoadConst  = op.LoadConst
	opStoreFast  = op.StoreFast
	opBinary     = op.BinaryOp
	opBuildVec   = op.BuildVec
	opBuildTuple = op.BuildTuple
	opPopTop     = op.PopTop
	opUnit       = op.Unit
	opFalse      = op.False
	opTrue       = op.True
)

func binType(a int) op.BinaryOpType {
	return op.BinaryOpType(a)
}

// binaryOp applies an arithmetic operation. Integer operands stay integers,
// with truncating division; mixing an integer with a float promotes to
// float. Anything else is a runtime error.
func binaryOp(left, right object.Value, bop op.BinaryOpType) (object.Value, error) {
	li, lIsInt := object.AsInt(left)
	ri, rIsInt := object.AsInt(right)
	if lIsInt && rIsInt {
		return intOp(li, ri, bop)
	}
	lf, lIsFloat := object.AsFloat(left)
	rf, rIsFloat := object.AsFloat(right)
	switch {
	case lIsFloat && rIsFloat:
		return floatOp(lf, rf, bop)
	case lIsFloat && rIsInt:
		return floatOp(lf, float64(ri), bop)
	case lIsInt && rIsFloat:
		return floatOp(float64(li), rf, bop)
	}
	return nil, errz.NewRuntimeError("unsupported operand types %s and %s for %s",
		left.Type(), right.Type(), bop)
}

func intOp(left, right int64, bop op.BinaryOpType) (object.Value, error) {
	switch bop {
	case op.Add:
		return object.NewInt(left + right), nil
	case op.Subtract:
		return object.NewInt(left - right), nil
	case op.Multiply:
		return object.NewInt(left * right), nil
	case op.Divide:
		if right == 0 {
			return nil, errz.NewRuntimeError("integer division by zero")
		}
		return object.NewInt(left / right), nil
	case op.Modulo:
		if right == 0 {
			return nil, errz.NewRuntimeError("integer modulo by zero")
		}
		return object.NewInt(left % right), nil
	}
	return nil, errz.NewRuntimeError("invalid binary operation %d", bop)
}

func floatOp(left, right float64, bop op.BinaryOpType) (object.Value, error) {
	switch bop {
	case op.Add:
		return object.NewFloat(left + right), nil
	case op.Subtract:
		return object.NewFloat(left - right), nil
	case op.Multiply:
		return object.NewFloat(left * right), nil
	case op.Divide:
		if right == 0 {
			return nil, errz.NewRuntimeError("float division by zero")
		}
		return object.NewFloat(left / right), nil
	case op.Modulo:
		return nil, errz.NewRuntimeError("modulo is not defined for floats")
	}
	return nil, errz.NewRuntimeError("invalid binary operation %d", bop)
}
