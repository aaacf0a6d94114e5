// Package hashable turns values of many types into well-distributed 32-bit
// hash codes, for use as the key-derivation step inside hash-based
// containers. It is not itself a container.
//
// Primitive types hash directly to their numeric value. Composite types
// hash by recursion: each constituent is hashed, and the sub-hashes are
// merged with hash.Combine in a fixed left-to-right order. Sum types follow
// the tag-then-payload convention: a small per-variant tag is combined with
// the hash of the variant's payload, so that marker variants of different
// shapes do not collide.
//
// The only contract a hash function must obey is consistency with equality:
// equal values hash equal. Collisions are permitted, and hash codes are not
// stable across processes or builds.
//
// To make a user-defined struct hashable, combine the hashes of its fields
// starting from Seed:
//
//	func (p Point) Hash() uint32 {
//		return hashable.Fields(hashable.Seed, hashable.Int(p.X), hashable.Int(p.Y))
//	}
package hashable

import (
	"math/bits"

	"github.com/xiaq/hashable/hash"
	"github.com/xiaq/hashable/types"
)

// Func is the hashing capability for type T: a total, pure function from a
// value to its hash code.
type Func[T any] func(v T) uint32

// Seed is the conventional starting hash for user-defined composite types.
// Seeding with a small nonzero constant lets leading fields whose own hash
// is 0 still influence the result.
const Seed uint32 = 17

// Tags for the two arms of a left/right union, for use with Variant.
const (
	TagLeft  uint32 = 0
	TagRight uint32 = 1
)

// Unit hashes the empty struct, to the constant 0.
func Unit(struct{}) uint32 {
	return 0
}

// Bool hashes a boolean, to 1 if true and 0 if false.
func Bool(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// Int hashes an int: as-is on 32-bit platforms, and by xor-ing the two
// halves of the sign-extended value on 64-bit platforms.
func Int(i int) uint32 {
	if bits.UintSize == 32 {
		return uint32(i)
	}
	return hash.UInt64(uint64(i))
}

// Int32 hashes an int32, which is just its bit pattern.
func Int32(i int32) uint32 {
	return uint32(i)
}

// Int64 hashes an int64 by xor-ing its two 32-bit halves.
func Int64(i int64) uint32 {
	return hash.UInt64(uint64(i))
}

// Uint hashes a uint, with the same width rule as Int.
func Uint(u uint) uint32 {
	if bits.UintSize == 32 {
		return uint32(u)
	}
	return hash.UInt64(uint64(u))
}

// Uint32 hashes a uint32, which is just itself.
func Uint32(u uint32) uint32 {
	return hash.UInt32(u)
}

// Uint64 hashes a uint64 by xor-ing its two 32-bit halves.
func Uint64(u uint64) uint32 {
	return hash.UInt64(u)
}

// Rune hashes a rune, to its code point value.
func Rune(r rune) uint32 {
	return uint32(r)
}

// Option hashes an optional value represented as a pointer: nil hashes to
// the constant 0, and a present value to Combine(1, h(*v)). The tag keeps a
// present value whose own hash is 0 from colliding with absence.
func Option[T any](v *T, h Func[T]) uint32 {
	if v == nil {
		return 0
	}
	return hash.Combine(1, h(*v))
}

// Variant hashes one arm of a sum type, by combining the arm's tag with the
// hash of its payload. Use TagLeft and TagRight for two-armed unions, and
// consecutive small integers in general, one per variant.
func Variant(tag, payload uint32) uint32 {
	return hash.Combine(tag, payload)
}

// Fields hashes an ordered sequence of field hashes, as for a tuple or a
// struct: the first hash is the accumulator, and each following hash is
// merged with Combine, left to right in declaration order. Swapping two
// fields changes the result. Fields() returns 0.
func Fields(hs ...uint32) uint32 {
	if len(hs) == 0 {
		return hash.Init
	}
	acc := hs[0]
	for _, h := range hs[1:] {
		acc = hash.Combine(acc, h)
	}
	return acc
}

// Slice hashes a slice by folding its elements' hashes in order, starting
// from 0. The empty slice hashes to 0, the same constant as an absent
// Option; that collision is accepted.
func Slice[T any](xs []T, h Func[T]) uint32 {
	acc := hash.Init
	for _, x := range xs {
		acc = hash.Combine(acc, h(x))
	}
	return acc
}

// Bytes hashes a contiguous byte buffer, delegating to hash.Bytes over the
// whole content instead of recursing per element.
func Bytes(bs []byte) uint32 {
	return hash.Bytes(bs)
}

// String hashes the bytes of a string, like Bytes.
func String(s string) uint32 {
	return hash.String(s)
}

// Chunked hashes a byte sequence delivered as multiple chunks, by folding
// each chunk's byte hash in chunk order. This is NOT the hash of the
// concatenated content: chunk boundaries are observable in the result, so
// two chunkings of the same bytes hash differently. Callers whose equality
// ignores chunking must hash the concatenation instead.
func Chunked(chunks ...[]byte) uint32 {
	return ChunkedWith(hash.Bytes, chunks...)
}

// ChunkedWith is Chunked with a caller-chosen byte hasher, such as
// hash.XXHBytes.
func ChunkedWith(f hash.BytesFunc, chunks ...[]byte) uint32 {
	acc := hash.Init
	for _, chunk := range chunks {
		acc = hash.Combine(acc, f(chunk))
	}
	return acc
}

// Values hashes an ordered sequence of self-hashing values, with the same
// chaining as Fields.
func Values(vs ...types.Hasher) uint32 {
	if len(vs) == 0 {
		return hash.Init
	}
	acc := vs[0].Hash()
	for _, v := range vs[1:] {
		acc = hash.Combine(acc, v.Hash())
	}
	return acc
}
