// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"strings"
)

// String renders v as "[b0b1...]" with one digit per bit, e.g. "[010]".
func (v Vector) String() string {
	var sb strings.Builder
	sb.Grow(v.n + 2)
	sb.WriteByte('[')
	for i := 0; i < v.n; i++ {
		if v.bits.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte(']')

	return sb.String()
}

// Parse reads a vector written as a run of 0/1 digits. Surrounding brackets
// are optional and commas or blanks between digits are ignored, so "[010]",
// "010" and "[0, 1, 0]" all parse to the same vector.
func Parse(s string) (Vector, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	bs := make([]Bit, 0, len(s))
	for i, r := range s {
		switch r {
		case '0':
			bs = append(bs, 0)
		case '1':
			bs = append(bs, 1)
		case ',', ' ', '\t':
		default:
			return Vector{}, vectorErrorf(opParse, fmt.Errorf("symbol %q at %d: %w", r, i, ErrInvalidBit))
		}
	}
	if len(bs) == 0 {
		return Vector{}, vectorErrorf(opParse, ErrBadLength)
	}

	return FromBits(bs...)
}
