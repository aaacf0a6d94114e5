// Package types defines the method form of the hashing capability, for
// user-defined types that carry their own hash function.
package types

// Equaler is a value that knows whether it is equal to another value or not.
type Equaler interface {
	// Equal returns whether this value is equal to another one.
	Equal(other any) bool
}

// Hasher is a value with a 32-bit hash code. The hash must be consistent
// with equality: if v1.Equal(v2), then v1.Hash() == v2.Hash(). The converse
// need not hold; collisions are permitted.
type Hasher interface {
	// Hash returns the hash code of the value. It must be a pure function
	// of the value, and is only stable within one process execution.
	Hash() uint32
}

// EqualHasher packs Equaler and Hasher. Hash-based containers typically
// require their keys to satisfy this interface.
type EqualHasher interface {
	Equaler
	Hasher
}
