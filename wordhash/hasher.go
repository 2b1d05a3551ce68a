// SPDX-License-Identifier: MIT

package wordhash

import (
	"fmt"
	"strings"

	"github.com/decred/dcrd/crypto/blake256"
	"lukechampine.com/blake3"
)

// Hasher is a deterministic, fixed-output-length hash function.
type Hasher struct {
	// Name identifies the algorithm ("blake256", "blake3").
	Name string

	// Size is the digest length in bytes.
	Size int

	sum func([]byte) []byte
}

// Sum returns the digest of data.
func (h Hasher) Sum(data []byte) []byte {
	return h.sum(data)
}

// SumString returns the digest of s.
func (h Hasher) SumString(s string) []byte {
	return h.sum([]byte(s))
}

// valid reports whether h is usable: only Blake256, Blake3, and values
// returned by HasherByName carry a digest function.
func (h Hasher) valid() bool {
	return h.sum != nil && h.Size > 0
}

// Bits returns the digest length in bits, i.e. the vector length L.
func (h Hasher) Bits() int {
	return 8 * h.Size
}

// Blake256 is BLAKE-256 (14 rounds) as used by Decred.
var Blake256 = Hasher{
	Name: "blake256",
	Size: blake256.Size,
	sum: func(b []byte) []byte {
		d := blake256.Sum256(b)
		return d[:]
	},
}

// Blake3 is BLAKE3 with a 256-bit output.
var Blake3 = Hasher{
	Name: "blake3",
	Size: 32,
	sum: func(b []byte) []byte {
		d := blake3.Sum256(b)
		return d[:]
	},
}

// DefaultHasher is used when no WithHasher option is given.
var DefaultHasher = Blake256

// HasherByName resolves a hasher by its case-insensitive name.
func HasherByName(name string) (Hasher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Blake256.Name, "blake-256":
		return Blake256, nil
	case Blake3.Name:
		return Blake3, nil
	}

	return Hasher{}, wordErrorf(opHasher, fmt.Errorf("%q: %w", name, ErrUnknownHasher))
}
