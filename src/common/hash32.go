package common

import (
	"fmt"
)

// Hash32Len is the length in bytes of a SHA-256 digest.
const Hash32Len = 32

// Hash32 is a 32-byte digest. It is a plain array, so it is copied by value and
// compared with ==.
type Hash32 [Hash32Len]byte

// BytesToHash32 converts a byte slice into a Hash32. The slice must be exactly
// 32 bytes long.
func BytesToHash32(b []byte) (Hash32, error) {
	var h Hash32
	if len(b) != Hash32Len {
		return h, NewErr("Hash32", InvalidLength, fmt.Sprintf("%d", len(b)))
	}
	copy(h[:], b)
	return h, nil
}

// HexToHash32 parses a 0x-prefixed (or bare) hex string into a Hash32.
func HexToHash32(s string) (Hash32, error) {
	b, err := DecodeFromString(s)
	if err != nil {
		return Hash32{}, err
	}
	return BytesToHash32(b)
}

// Bytes returns a copy of the digest as a byte slice.
func (h Hash32) Bytes() []byte {
	b := make([]byte, Hash32Len)
	copy(b, h[:])
	return b
}

// Hex returns the 0x-prefixed lowercase hex representation of the digest.
func (h Hash32) Hex() string {
	return EncodeToString(h[:])
}

// String implements fmt.Stringer.
func (h Hash32) String() string {
	return h.Hex()
}

// IsZero reports whether all 32 bytes are zero.
func (h Hash32) IsZero() bool {
	return h == Hash32{}
}

// MarshalText implements encoding.TextMarshaler.
func (h Hash32) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hash32) UnmarshalText(text []byte) error {
	res, err := HexToHash32(string(text))
	if err != nil {
		return err
	}
	*h = res
	return nil
}
