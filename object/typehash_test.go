package object

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skald-lang/skald/hash"
)

// The integer and bool hashes are published wire constants; hosts match on
// them bit for bit.
func TestPublishedTypeHashConstants(t *testing.T) {
	require.Equal(t, hash.Hash(13490401188435821026), IntTypeHash)
	require.Equal(t, hash.Hash(0xbb378867da3981e2), IntTypeHash)
	require.Equal(t, hash.Hash(13721341357821314905), BoolTypeHash)
	require.Equal(t, hash.Hash(0xbe6bff4422d0c759), BoolTypeHash)
}

func TestTypeHashOfCoversEveryType(t *testing.T) {
	types := []Type{
		UNIT, BOOL, BYTE, CHAR, INT, FLOAT, TYPE, STRING, BYTES, VEC, TUPLE,
		OBJECT, RANGE, OPTION, RESULT, UNIT_STRUCT, TUPLE_STRUCT, STRUCT,
		VARIANT, FUNCTION, FUTURE, STREAM, GENERATOR, GENERATOR_STATE,
		FORMAT, ITERATOR, ANY,
	}
	seen := map[hash.Hash]Type{}
	for _, typ := range types {
		h := TypeHashOf(typ)
		require.False(t, h.IsEmpty(), "type %s maps to the empty hash", typ)
		prev, dup := seen[h]
		require.False(t, dup, "types %s and %s share hash %s", prev, typ, h)
		seen[h] = typ
	}
}

func TestTypeHashOfUnknown(t *testing.T) {
	require.True(t, TypeHashOf(Type("no_such_type")).IsEmpty())
}

func TestValueTypeHashesMatchConstants(t *testing.T) {
	char, err := NewChar('a')
	require.NoError(t, err)
	pairs := []struct {
		v    Value
		want hash.Hash
	}{
		{Unit, UnitTypeHash},
		{True, BoolTypeHash},
		{NewByte(1), ByteTypeHash},
		{char, CharTypeHash},
		{NewInt(1), IntTypeHash},
		{NewFloat(1), FloatTypeHash},
		{NewTypeValue(IntTypeHash), TypeTypeHash},
		{NewString("s"), StringTypeHash},
		{NewBytes(nil), BytesTypeHash},
		{NewVec(nil), VecTypeHash},
		{NewTuple(nil), TupleTypeHash},
		{NewObject(nil), ObjectTypeHash},
		{NewRange(NewInt(0), NewInt(3), false), RangeTypeHash},
		{NewNone(), OptionTypeHash},
		{NewOk(Unit), ResultTypeHash},
		{NewUnitStruct("Marker"), UnitStructTypeHash},
		{NewTupleStruct("Pair", nil), TupleStructTypeHash},
		{NewStruct("Point", nil), StructTypeHash},
		{NewVariant("Shape", "Circle", nil), VariantTypeHash},
		{NewFunction("f"), FunctionTypeHash},
		{NewFuture(nil), FutureTypeHash},
		{NewStream(nil), StreamTypeHash},
		{NewGenerator(nil), GeneratorTypeHash},
		{NewYielded(Unit), GeneratorStateTypeHash},
		{NewFormat("{}", Unit), FormatTypeHash},
		{NewIterator(nil), IteratorTypeHash},
		{NewAny("conn", nil), AnyTypeHash},
	}
	for _, p := range pairs {
		h, err := p.v.TypeHash()
		require.NoError(t, err, "type %s", p.v.Type())
		require.Equal(t, p.want, h, "type %s", p.v.Type())
	}
}
