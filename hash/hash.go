// Package hash provides the 64-bit identifiers used to reference functions
// and runtime types. Hashes are deterministic: the same name always produces
// the same hash, in any process, on any platform.
package hash

import (
	"fmt"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// Hash is an opaque 64-bit identifier derived from a name or a static type.
type Hash uint64

// Empty is the sentinel hash representing "no hash". It is distinguishable
// from any valid hash with overwhelming probability; it is not reserved by
// construction.
const Empty = Hash(0)

// Mixing constants keep the separate hash domains (functions, types) from
// colliding with plain name hashes.
const (
	sep      = 0x4bc94d6bd06053ad
	typeKind = 0x2fac10b63a6cc57c
)

// OfName returns the hash of a top-level name. Returns Empty if the name is
// empty or not valid UTF-8.
func OfName(name string) Hash {
	if name == "" || !utf8.ValidString(name) {
		return Empty
	}
	var d xxhash.Digest
	d.Reset()
	var buf [8]byte
	putUint64(&buf, sep)
	d.Write(buf[:])
	d.WriteString(name)
	return Hash(d.Sum64())
}

// OfPath returns the hash of a `::`-separated item path such as
// "::std::option::Option". Used to derive static type identifiers.
func OfPath(path string) Hash {
	if path == "" || !utf8.ValidString(path) {
		return Empty
	}
	var d xxhash.Digest
	d.Reset()
	var buf [8]byte
	putUint64(&buf, typeKind)
	d.Write(buf[:])
	d.WriteString(path)
	d.Write([]byte{0xff})
	return Hash(d.Sum64())
}

// IsEmpty reports whether h is the empty sentinel.
func (h Hash) IsEmpty() bool {
	return h == Empty
}

// String formats the hash as a hex literal.
func (h Hash) String() string {
	return fmt.Sprintf("0x%x", uint64(h))
}

func putUint64(buf *[8]byte, v uint64) {
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
}
