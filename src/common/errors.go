package common

import "fmt"

// ErrType ...
type ErrType uint32

const (
	// BufferTooSmall is returned when a destination buffer cannot hold a
	// digest.
	BufferTooSmall ErrType = iota
	// InvalidLength ...
	InvalidLength
	// InvalidHex ...
	InvalidHex
	// KeyNotFound ...
	KeyNotFound
	// Corrupted is returned when stored content no longer matches its digest.
	Corrupted
)

// Err is the error type shared by the digest packages. It records which
// component failed, why, and the offending key or value.
type Err struct {
	dataType string
	errType  ErrType
	key      string
}

// NewErr ...
func NewErr(dataType string, errType ErrType, key string) Err {
	return Err{
		dataType: dataType,
		errType:  errType,
		key:      key,
	}
}

// Error ...
func (e Err) Error() string {
	m := ""
	switch e.errType {
	case BufferTooSmall:
		m = "Buffer Too Small"
	case InvalidLength:
		m = "Invalid Length"
	case InvalidHex:
		m = "Invalid Hex"
	case KeyNotFound:
		m = "Not Found"
	case Corrupted:
		m = "Corrupted"
	}

	return fmt.Sprintf("%s, %s, %s", e.dataType, e.key, m)
}

// Is checks that an error is of type Err and that its code matches the
// provided ErrType.
func Is(err error, t ErrType) bool {
	e, ok := err.(Err)
	return ok && e.errType == t
}
