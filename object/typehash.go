package object

import "github.com/skald-lang/skald/hash"

// Published type hashes for the built-in runtime types. These are stable
// identifiers: hosts may compare them bit-for-bit across processes, store
// them, or bake them into other systems. They are never recomputed at
// runtime.
const (
	UnitTypeHash           = hash.Hash(0x1943d25de558334a)
	BoolTypeHash           = hash.Hash(0xbe6bff4422d0c759)
	ByteTypeHash           = hash.Hash(0x23a457e531a3608d)
	CharTypeHash           = hash.Hash(0xafd10602251c8306)
	IntTypeHash            = hash.Hash(0xbb378867da3981e2)
	FloatTypeHash          = hash.Hash(0x6c52321817789688)
	TypeTypeHash           = hash.Hash(0x2443697be5def15a)
	StringTypeHash         = hash.Hash(0xc4f55bfb7f125982)
	BytesTypeHash          = hash.Hash(0x80b481a213028eba)
	VecTypeHash            = hash.Hash(0xe19a66f2a8e15dbd)
	TupleTypeHash          = hash.Hash(0x99f417b3b4d1b8c6)
	ObjectTypeHash         = hash.Hash(0xe5a346631a42638a)
	RangeTypeHash          = hash.Hash(0x22db5d6b58bbabfe)
	OptionTypeHash         = hash.Hash(0xfbabd5fe8da1ae26)
	ResultTypeHash         = hash.Hash(0x298471a7f6f34e57)
	UnitStructTypeHash     = hash.Hash(0x40619d0bb4ad7d56)
	TupleStructTypeHash    = hash.Hash(0x616458ab8585b89f)
	StructTypeHash         = hash.Hash(0x2a68f2695bacb853)
	VariantTypeHash        = hash.Hash(0x20c376a7d6e149f7)
	FunctionTypeHash       = hash.Hash(0x18fa215219f60566)
	FutureTypeHash         = hash.Hash(0xbe3c8fb4ee9b5222)
	StreamTypeHash         = hash.Hash(0xd95c50fc703b3679)
	GeneratorTypeHash      = hash.Hash(0x488f0799cf5a3ee4)
	GeneratorStateTypeHash = hash.Hash(0xd1d01df299c8a522)
	FormatTypeHash         = hash.Hash(0x256a8ca9115bec45)
	IteratorTypeHash       = hash.Hash(0xba7657d7b7be492b)
	AnyTypeHash            = hash.Hash(0x9d86ff4190d913fe)
)

// typeHashes maps each type name to its published hash.
var typeHashes = map[Type]hash.Hash{
	UNIT:            UnitTypeHash,
	BOOL:            BoolTypeHash,
	BYTE:            ByteTypeHash,
	CHAR:            CharTypeHash,
	INT:             IntTypeHash,
	FLOAT:           FloatTypeHash,
	TYPE:            TypeTypeHash,
	STRING:          StringTypeHash,
	BYTES:           BytesTypeHash,
	VEC:             VecTypeHash,
	TUPLE:           TupleTypeHash,
	OBJECT:          ObjectTypeHash,
	RANGE:           RangeTypeHash,
	OPTION:          OptionTypeHash,
	RESULT:          ResultTypeHash,
	UNIT_STRUCT:     UnitStructTypeHash,
	TUPLE_STRUCT:    TupleStructTypeHash,
	STRUCT:          StructTypeHash,
	VARIANT:         VariantTypeHash,
	FUNCTION:        FunctionTypeHash,
	FUTURE:          FutureTypeHash,
	STREAM:          StreamTypeHash,
	GENERATOR:       GeneratorTypeHash,
	GENERATOR_STATE: GeneratorStateTypeHash,
	FORMAT:          FormatTypeHash,
	ITERATOR:        IteratorTypeHash,
	ANY:             AnyTypeHash,
}

// TypeHashOf returns the published hash for a built-in type name, or the
// empty hash for an unknown type.
func TypeHashOf(t Type) hash.Hash {
	return typeHashes[t]
}
