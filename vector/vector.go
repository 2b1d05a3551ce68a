// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math/bits"

	"github.com/jrick/bitset"
)

// Bit is a GF(2) scalar. Valid values are 0 and 1.
type Bit uint8

// Operation tags used when wrapping errors.
const (
	opAdd       = "Add"
	opAt        = "At"
	opFromBits  = "FromBits"
	opFromBytes = "FromBytes"
	opZero      = "Zero"
	opRandom    = "Random"
	opParse     = "Parse"
)

// Vector is an immutable GF(2) vector of fixed length.
// The zero value is an empty vector of length 0 and is only useful as a
// "no value" placeholder; every constructor requires a positive length.
type Vector struct {
	n    int          // number of bits
	bits bitset.Bytes // packed storage; bits at index >= n are always zero
}

// Zero returns the all-zero vector of length n.
func Zero(n int) (Vector, error) {
	if n <= 0 {
		return Vector{}, vectorErrorf(opZero, ErrBadLength)
	}

	return Vector{n: n, bits: bitset.NewBytes(n)}, nil
}

// FromBits builds a vector from explicit bits. Every entry must be 0 or 1.
func FromBits(b ...Bit) (Vector, error) {
	if len(b) == 0 {
		return Vector{}, vectorErrorf(opFromBits, ErrBadLength)
	}
	v := Vector{n: len(b), bits: bitset.NewBytes(len(b))}
	for i, x := range b {
		switch x {
		case 0:
		case 1:
			v.bits.Set(i)
		default:
			return Vector{}, vectorErrorf(opFromBits, fmt.Errorf("bit %d = %d: %w", i, x, ErrInvalidBit))
		}
	}

	return v, nil
}

// FromBytes interprets the first n bits of b as a vector, most significant
// bit of b[0] first. It is the inverse of Bytes for n == 8*len(b).
func FromBytes(b []byte, n int) (Vector, error) {
	if n <= 0 || n > 8*len(b) {
		return Vector{}, vectorErrorf(opFromBytes, ErrBadLength)
	}
	v := Vector{n: n, bits: bitset.NewBytes(n)}
	for i := 0; i < n; i++ {
		if b[i>>3]&(0x80>>uint(i&7)) != 0 {
			v.bits.Set(i)
		}
	}

	return v, nil
}

// Must panics if err is non-nil and otherwise returns v. It is intended for
// literals in tests and examples.
func Must(v Vector, err error) Vector {
	if err != nil {
		panic(err)
	}

	return v
}

// Len returns the number of bits in v.
func (v Vector) Len() int {
	return v.n
}

// Get reports whether bit i is set. i must be in [0, Len()).
func (v Vector) Get(i int) bool {
	return v.bits.Get(i)
}

// At returns bit i as a Bit, or ErrOutOfRange.
func (v Vector) At(i int) (Bit, error) {
	if i < 0 || i >= v.n {
		return 0, vectorErrorf(opAt, fmt.Errorf("%d of %d: %w", i, v.n, ErrOutOfRange))
	}
	if v.bits.Get(i) {
		return 1, nil
	}

	return 0, nil
}

// Bits returns a fresh copy of the bits of v.
func (v Vector) Bits() []Bit {
	out := make([]Bit, v.n)
	for i := range out {
		if v.bits.Get(i) {
			out[i] = 1
		}
	}

	return out
}

// Bytes packs v most significant bit first into (Len()+7)/8 bytes.
func (v Vector) Bytes() []byte {
	out := make([]byte, (v.n+7)/8)
	for i := 0; i < v.n; i++ {
		if v.bits.Get(i) {
			out[i>>3] |= 0x80 >> uint(i&7)
		}
	}

	return out
}

// IsZero reports whether every bit of v is 0.
func (v Vector) IsZero() bool {
	for _, b := range v.bits {
		if b != 0 {
			return false
		}
	}

	return true
}

// Weight returns the number of set bits (Hamming weight).
func (v Vector) Weight() int {
	w := 0
	for _, b := range v.bits {
		w += bits.OnesCount8(b)
	}

	return w
}

// Equal reports whether a and b have the same length and bits.
func Equal(a, b Vector) bool {
	if a.n != b.n {
		return false
	}
	for i := range a.bits {
		if a.bits[i] != b.bits[i] {
			return false
		}
	}

	return true
}

// Add returns a + b over GF(2), i.e. the elementwise XOR.
// Both operands must have the same length.
//
// Complexity: O(L/8).
func Add(a, b Vector) (Vector, error) {
	if a.n != b.n {
		return Vector{}, vectorErrorf(opAdd, fmt.Errorf("%d != %d: %w", a.n, b.n, ErrLengthMismatch))
	}
	out := Vector{n: a.n, bits: bitset.NewBytes(a.n)}
	for i := range out.bits {
		out.bits[i] = a.bits[i] ^ b.bits[i]
	}

	return out, nil
}

// MustAdd is Add for operands whose lengths are already known to match.
// It panics on a length mismatch.
func MustAdd(a, b Vector) Vector {
	return Must(Add(a, b))
}
