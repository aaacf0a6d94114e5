package hash

import "github.com/cespare/xxhash/v2"

// BytesFunc is the contract of a byte-sequence hasher: a pure function from
// a read-only byte view to a hash value, deterministic within one process,
// safe for concurrent use, and retaining no reference to its argument. Bytes
// is the reference implementation; XXHBytes is an optimized one.
type BytesFunc func(bs []byte) uint32

// XXHBytes hashes a byte slice with xxHash, folding the 64-bit sum to 32
// bits the same way UInt64 does. It satisfies the BytesFunc contract and is
// much faster than Bytes on large inputs, at the cost of producing different
// (but equally valid) hash values.
func XXHBytes(bs []byte) uint32 {
	return UInt64(xxhash.Sum64(bs))
}
