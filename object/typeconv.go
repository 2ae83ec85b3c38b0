package object

import "github.com/skald-lang/skald/hash"

// Coercions for the inline variants. Each returns the contained primitive
// and true iff the value is in the matching variant; extraction copies, so
// the value handle remains valid and must still be freed by its owner.

// AsBool returns the contained bool if v is a Bool.
func AsBool(v Value) (bool, bool) {
	if b, ok := v.(*Bool); ok {
		return b.value, true
	}
	return false, false
}

// AsByte returns the contained byte if v is a Byte.
func AsByte(v Value) (byte, bool) {
	if b, ok := v.(*Byte); ok {
		return b.value, true
	}
	return 0, false
}

// AsChar returns the contained code point if v is a Char.
func AsChar(v Value) (rune, bool) {
	if c, ok := v.(*Char); ok {
		return c.value, true
	}
	return 0, false
}

// AsInt returns the contained integer if v is an Int.
func AsInt(v Value) (int64, bool) {
	if i, ok := v.(*Int); ok {
		return i.value, true
	}
	return 0, false
}

// AsFloat returns the contained float if v is a Float.
func AsFloat(v Value) (float64, bool) {
	if f, ok := v.(*Float); ok {
		return f.value, true
	}
	return 0, false
}

// AsType returns the referenced type hash if v is a TypeValue.
func AsType(v Value) (hash.Hash, bool) {
	if t, ok := v.(*TypeValue); ok {
		return t.value, true
	}
	return hash.Empty, false
}

// AsString returns the contained string if v is a String. This coercion
// claims ownership: the string handle is consumed and later type resolution
// on it reports an access error.
func AsString(v Value) (string, bool) {
	if s, ok := v.(*String); ok && s.consume() {
		return s.value, true
	}
	return "", false
}

// AsBytes returns the contained bytes if v is a Bytes value. This coercion
// claims ownership, consuming the handle.
func AsBytes(v Value) ([]byte, bool) {
	if b, ok := v.(*Bytes); ok && b.consume() {
		return b.value, true
	}
	return nil, false
}
