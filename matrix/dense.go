// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/jrick/bitset"

	"github.com/katalvlaran/gf2/vector"
)

// Dense is an augmented coefficient matrix over GF(2).
// It has r rows and c = unknowns+1 columns; column c-1 is the augmented
// (right-hand side) column. Rows are packed bitsets kept in one flat buffer.
type Dense struct {
	r, c   int    // number of rows and total columns (unknowns + 1)
	stride int    // bytes per row, (c+7)/8
	data   []byte // flat backing storage, length == r*stride
}

// NewDense creates a zero matrix with the given number of rows and
// unknowns+1 columns.
// Stage 1 (Validate): rows > 0, unknowns >= 0.
// Stage 2 (Prepare): allocate one flat buffer.
// Complexity: O(rows * unknowns / 8) time and memory.
func NewDense(rows, unknowns int) (*Dense, error) {
	if rows <= 0 || unknowns < 0 {
		return nil, matrixErrorf(opNewDense, fmt.Errorf("%dx%d: %w", rows, unknowns+1, ErrBadShape))
	}
	cols := unknowns + 1
	stride := len(bitset.NewBytes(cols))

	return &Dense{r: rows, c: cols, stride: stride, data: make([]byte, rows*stride)}, nil
}

// Rows returns the number of rows (equations).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the total number of columns, including the augmented one.
func (m *Dense) Cols() int {
	return m.c
}

// Unknowns returns the number of coefficient columns (Cols()-1).
func (m *Dense) Unknowns() int {
	return m.c - 1
}

// row returns a view of row i. The capacity is clipped so that appends can
// never spill into the next row.
func (m *Dense) row(i int) bitset.Bytes {
	lo := i * m.stride
	hi := lo + m.stride

	return bitset.Bytes(m.data[lo:hi:hi])
}

// get is the unchecked element read used by the kernels.
func (m *Dense) get(i, j int) bool {
	return m.row(i).Get(j)
}

// checkIndex validates (row, col) against the shape.
func (m *Dense) checkIndex(op string, row, col int) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return matrixErrorf(op, fmt.Errorf("(%d,%d) in %dx%d: %w", row, col, m.r, m.c, ErrOutOfRange))
	}

	return nil
}

// At returns the bit at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (vector.Bit, error) {
	if err := m.checkIndex(opAt, row, col); err != nil {
		return 0, err
	}
	if m.get(row, col) {
		return 1, nil
	}

	return 0, nil
}

// Set assigns b at (row, col). b must be 0 or 1.
// Complexity: O(1).
func (m *Dense) Set(row, col int, b vector.Bit) error {
	if err := m.checkIndex(opSet, row, col); err != nil {
		return err
	}
	switch b {
	case 0:
		m.row(row).Unset(col)
	case 1:
		m.row(row).Set(col)
	default:
		return matrixErrorf(opSet, fmt.Errorf("value %d: %w", b, ErrInvalidBit))
	}

	return nil
}

// Augmented returns the right-hand side bit of row i.
func (m *Dense) Augmented(row int) (vector.Bit, error) {
	return m.At(row, m.c-1)
}

// Clone returns a deep copy of m.
// Complexity: O(r*c/8).
func (m *Dense) Clone() *Dense {
	data := make([]byte, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, stride: m.stride, data: data}
}

// Equal reports whether a and b have the same shape and bits.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// String renders one "[...]" line per row, coefficient bits followed by the
// augmented bit, e.g.
//
//	[0101]
//	[1100]
//
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	sb.Grow(m.r * (m.c + 3))
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if m.get(i, j) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
