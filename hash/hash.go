// Package hash contains the primitive hash functions that the rest of the
// module is built on: a byte-sequence hasher and a combinator for merging
// hash values, both from the multiply-by-33 family.
//
// All functions are pure and safe for concurrent use. Results are only
// meaningful within one process execution; do not persist them or compare
// them across processes.
package hash

import "unsafe"

// Init is the hash of the empty byte sequence, and the initial accumulator
// for folding a sequence of hash values.
const Init uint32 = 0

// Combine merges the hash value h into the accumulator acc, as
// (acc*33) ^ h with wraparound arithmetic. It is not commutative; when
// merging more than two values, always apply it left to right.
func Combine(acc, h uint32) uint32 {
	return mul33(acc) ^ h
}

// Fold combines the given hash values left to right, starting from Init.
// Fold() returns Init.
func Fold(hs ...uint32) uint32 {
	acc := Init
	for _, h := range hs {
		acc = Combine(acc, h)
	}
	return acc
}

// Bytes hashes a byte slice, one Combine step per byte in order:
// h = (h*33) ^ b, starting from Init. Bytes(nil) returns Init. The slice is
// never written to or retained.
func Bytes(bs []byte) uint32 {
	h := Init
	for i := 0; i < len(bs); i++ {
		h = Combine(h, uint32(bs[i]))
	}
	return h
}

// String hashes the bytes of a string, with the same recurrence as Bytes.
func String(s string) uint32 {
	h := Init
	for i := 0; i < len(s); i++ {
		h = Combine(h, uint32(s[i]))
	}
	return h
}

// UInt32 hashes a uint32, which is just itself.
func UInt32(u uint32) uint32 {
	return u
}

// UInt64 hashes a uint64 by xor-ing its two 32-bit halves.
func UInt64(u uint64) uint32 {
	return uint32(u>>32) ^ uint32(u)
}

// Pointer hashes a pointer by its address.
func Pointer(p unsafe.Pointer) uint32 {
	switch unsafe.Sizeof(p) {
	case 4:
		return UInt32(uint32(uintptr(p)))
	case 8:
		return UInt64(uint64(uintptr(p)))
	default:
		panic("unhandled pointer size")
	}
}

// UIntPtr hashes a uintptr.
func UIntPtr(p uintptr) uint32 {
	switch unsafe.Sizeof(p) {
	case 4:
		return UInt32(uint32(p))
	case 8:
		return UInt64(uint64(p))
	default:
		panic("unhandled pointer size")
	}
}

func mul33(u uint32) uint32 {
	return u<<5 + u
}
