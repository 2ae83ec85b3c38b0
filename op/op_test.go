package op

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo(Call)
	require.Equal(t, "CALL", info.Name)
	require.Equal(t, 2, info.OperandCount)
	require.Equal(t, Call, info.Code)
}

func TestGetInfoAllOpcodes(t *testing.T) {
	tests := []struct {
		code     Code
		name     string
		operands int
	}{
		{Nop, "NOP", 0},
		{Halt, "HALT", 0},
		{Call, "CALL", 2},
		{ReturnValue, "RETURN_VALUE", 0},
		{LoadFast, "LOAD_FAST", 1},
		{LoadConst, "LOAD_CONST", 1},
		{StoreFast, "STORE_FAST", 1},
		{BinaryOp, "BINARY_OP", 1},
		{BuildVec, "BUILD_VEC", 1},
		{BuildTuple, "BUILD_TUPLE", 1},
		{PopTop, "POP_TOP", 0},
		{Unit, "UNIT", 0},
		{False, "FALSE", 0},
		{True, "TRUE", 0},
	}
	for _, tt := range tests {
		info := GetInfo(tt.code)
		require.Equal(t, tt.name, info.Name)
		require.Equal(t, tt.operands, info.OperandCount)
		require.Equal(t, tt.code, info.Code)
	}
}

func TestBinaryOpString(t *testing.T) {
	require.Equal(t, "+", Add.String())
	require.Equal(t, "-", Subtract.String())
	require.Equal(t, "*", Multiply.String())
	require.Equal(t, "/", Divide.String())
	require.Equal(t, "%", Modulo.String())
	require.Equal(t, "", BinaryOpType(99).String())
}
