package crypto

import (
	"fmt"
	"strings"

	"github.com/minio/sha256-simd"
	"github.com/mosaicnetworks/digest/src/common"
)

// Hasher is the digest primitive the package delegates to. Implementations
// must be standards-compliant SHA-256 and safe for concurrent use.
type Hasher interface {
	Sum256(data []byte) [sha256.Size]byte
}

// SIMDHasher computes SHA-256 with github.com/minio/sha256-simd, which picks
// SHA-NI, AVX-512 or ARM SHA2 instructions when the CPU has them.
type SIMDHasher struct{}

// Sum256 implements Hasher.
func (SIMDHasher) Sum256(data []byte) [sha256.Size]byte {
	return sha256.Sum256(data)
}

// Sha256 computes digests with the Hasher it wraps.
type Sha256 struct {
	hasher Hasher
}

// NewSha256 returns a Sha256 that delegates to h.
func NewSha256(h Hasher) *Sha256 {
	return &Sha256{hasher: h}
}

var defaultSha256 = NewSha256(SIMDHasher{})

var (
	// EmptyStringDigest is the digest of a zero-length input,
	// 0xe3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855
	EmptyStringDigest = defaultSha256.sum([]byte{})

	// EmptyRlpSequenceDigest is the digest of the single byte 0xc0,
	// 0xe4ff5e7d7a7f08e9800a3e25cb774533cb20040df30b6ba10f956f9acd0eb3f7
	EmptyRlpSequenceDigest = defaultSha256.sum([]byte{0xc0})

	// EmptyTreeDigest is the digest of the single byte 0x80,
	// 0x76be8b528d0075f7aae98d6fa57a6d3c83ae480a8469e668d7b0af968995ac71
	EmptyTreeDigest = defaultSha256.sum([]byte{0x80})

	// Zero is 32 zero bytes.
	Zero = common.Hash32{}
)

func (s *Sha256) sum(data []byte) common.Hash32 {
	return common.Hash32(s.hasher.Sum256(data))
}

// Compute returns the digest of data. Empty or nil input yields
// EmptyStringDigest.
func (s *Sha256) Compute(data []byte) common.Hash32 {
	if len(data) == 0 {
		return EmptyStringDigest
	}
	return s.sum(data)
}

// ComputeString returns the digest of the UTF-8 bytes of text. Empty or
// whitespace-only text yields EmptyStringDigest.
func (s *Sha256) ComputeString(text string) common.Hash32 {
	if strings.TrimSpace(text) == "" {
		return EmptyStringDigest
	}
	return s.sum([]byte(text))
}

// ComputeInPlace hashes the current contents of buf and overwrites its first 32
// bytes with the digest. buf must be at least 32 bytes long; otherwise it is
// left untouched and a BufferTooSmall error is returned.
func (s *Sha256) ComputeInPlace(buf []byte) error {
	if len(buf) < common.Hash32Len {
		return common.NewErr("ComputeInPlace", common.BufferTooSmall, fmt.Sprintf("len %d", len(buf)))
	}
	h := s.sum(buf)
	copy(buf, h[:])
	return nil
}

// Verify reports whether data hashes to digest.
func (s *Sha256) Verify(data []byte, digest common.Hash32) bool {
	return s.Compute(data) == digest
}

// Compute returns the digest of data using the default Hasher.
func Compute(data []byte) common.Hash32 {
	return defaultSha256.Compute(data)
}

// ComputeString returns the digest of text using the default Hasher.
func ComputeString(text string) common.Hash32 {
	return defaultSha256.ComputeString(text)
}

// ComputeInPlace overwrites the first 32 bytes of buf with the digest of its
// contents, using the default Hasher.
func ComputeInPlace(buf []byte) error {
	return defaultSha256.ComputeInPlace(buf)
}

// Verify reports whether data hashes to digest using the default Hasher.
func Verify(data []byte, digest common.Hash32) bool {
	return defaultSha256.Verify(data, digest)
}
