// SPDX-License-Identifier: MIT

package vector

import (
	"io"

	"github.com/decred/dcrd/crypto/rand"
	"github.com/jrick/bitset"
)

// Random returns a uniformly random vector of length n drawn from the
// package-level CSPRNG of dcrd/crypto/rand.
func Random(n int) (Vector, error) {
	return RandomFrom(n, rand.Reader())
}

// RandomFrom returns a vector of length n whose bits are read from src.
// Any trailing bits of the last byte beyond n are cleared.
func RandomFrom(n int, src io.Reader) (Vector, error) {
	if n <= 0 {
		return Vector{}, vectorErrorf(opRandom, ErrBadLength)
	}
	b := bitset.NewBytes(n)
	if _, err := io.ReadFull(src, b); err != nil {
		return Vector{}, vectorErrorf(opRandom, err)
	}
	for i := n; i < 8*len(b); i++ {
		b.Unset(i)
	}

	return Vector{n: n, bits: b}, nil
}
