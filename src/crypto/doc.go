// Package crypto computes the SHA-256 digests used throughout the toolkit.
//
// The package does not implement SHA-256 itself. Digests are delegated to a
// Hasher, by default backed by github.com/minio/sha256-simd, and wrapped in a
// common.Hash32. A handful of well-known digests are computed once at package
// initialisation and exposed as read-only variables:
//
//	EmptyStringDigest      // SHA-256 of the empty byte string
//	EmptyRlpSequenceDigest // SHA-256 of 0xc0, the RLP encoding of an empty list
//	EmptyTreeDigest        // SHA-256 of 0x80, the RLP encoding of an empty string
//	Zero                   // 32 zero bytes, a sentinel and not a digest
//
// All functions are pure and safe for concurrent use.
package crypto
