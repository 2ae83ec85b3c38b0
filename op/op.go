// Package op defines opcodes used by the Skald build step and virtual
// machine.
package op

// Code is an integer opcode that indicates an operation to execute.
type Code uint16

const (
	Invalid Code = 0

	// Execution
	Nop         Code = 1
	Halt        Code = 2
	Call        Code = 3
	ReturnValue Code = 4

	// Load
	LoadFast  Code = 21
	LoadConst Code = 24

	// Store
	StoreFast Code = 31

	// Operations
	BinaryOp Code = 40

	// Build
	BuildVec   Code = 50
	BuildTuple Code = 51

	// Stack
	PopTop Code = 72

	// Push constants
	Unit  Code = 80
	False Code = 81
	True  Code = 82
)

// BinaryOpType describes a type of binary operation, as in an operation that
// takes two operands.
type BinaryOpType uint16

const (
	Add      BinaryOpType = 1
	Subtract BinaryOpType = 2
	Multiply BinaryOpType = 3
	Divide   BinaryOpType = 4
	Modulo   BinaryOpType = 5
)

// String returns a string representation of the binary operation.
// For example "+" for addition.
func (bop BinaryOpType) String() string {
	switch bop {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case Modulo:
		return "%"
	default:
		return ""
	}
}

// Info contains information about an opcode.
type Info struct {
	Code         Code
	Name         string
	OperandCount int
}

var infos = make([]Info, 256)

func init() {
	type opInfo struct {
		op    Code
		name  string
		count int
	}
	ops := []opInfo{
		{BinaryOp, "BINARY_OP", 1},
		{BuildTuple, "BUILD_TUPLE", 1},
		{BuildVec, "BUILD_VEC", 1},
		{Call, "CALL", 2},
		{False, "FALSE", 0},
		{Halt, "HALT", 0},
		{LoadConst, "LOAD_CONST", 1},
		{LoadFast, "LOAD_FAST", 1},
		{Nop, "NOP", 0},
		{PopTop, "POP_TOP", 0},
		{ReturnValue, "RETURN_VALUE", 0},
		{StoreFast, "STORE_FAST", 1},
		{True, "TRUE", 0},
		{Unit, "UNIT", 0},
	}
	for _, o := range ops {
		infos[o.op] = Info{
			Name:         o.name,
			Code:         o.op,
			OperandCount: o.count,
		}
	}
}

// GetInfo returns information about the given opcode.
func GetInfo(op Code) Info {
	return infos[op]
}
