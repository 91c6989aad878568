package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
)

// Calculator is an interface for computing content checksums.
// This abstraction allows for different checksum algorithms.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// NewHasher returns a streaming hasher producing the same digests as CalculateRaw.
	NewHasher() Hasher
}

// Hasher accumulates written bytes and reports their digest.
type Hasher interface {
	io.Writer

	// Sum returns the hex digest of everything written so far.
	Sum() string
}

// SHA256 implements checksum calculation using SHA-256.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
// Using value semantics (pass by value) eliminates heap allocations.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// NewHasher returns a streaming SHA-256 hasher.
func (c SHA256) NewHasher() Hasher {
	return &sha256Hasher{h: sha256.New()}
}

type sha256Hasher struct {
	h hash.Hash
}

func (s *sha256Hasher) Write(p []byte) (int, error) {
	return s.h.Write(p)
}

func (s *sha256Hasher) Sum() string {
	return hex.EncodeToString(s.h.Sum(nil))
}

// Verify SHA256 implements the interface at compile time
var _ Calculator = SHA256{}
