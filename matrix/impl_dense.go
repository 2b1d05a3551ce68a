// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Row primitives of GF(2) elimination: swap, XOR-accumulate, leading-1 scan.
//   - Unexported kernels skip bounds checks and are used by the elimination
//     loops; the exported wrappers validate and return ErrOutOfRange.
//
// Determinism & Performance:
//   - All loops walk bytes of the flat buffer in increasing order.
//   - A zero byte covers eight columns at once in the leading-1 scan.

package matrix

import "fmt"

// swapRows exchanges rows i and j in place. i == j is a no-op.
func (m *Dense) swapRows(i, j int) {
	if i == j {
		return
	}
	a, b := m.row(i), m.row(j)
	for k := range a {
		a[k], b[k] = b[k], a[k]
	}
}

// xorRow replaces row dst with dst ⊕ src, the only row operation GF(2)
// elimination needs (no scaling: the only non-zero scalar is 1).
func (m *Dense) xorRow(dst, src int) {
	d, s := m.row(dst), m.row(src)
	for k := range d {
		d[k] ^= s[k]
	}
}

// leadingColumn returns the first coefficient column of row i holding a 1,
// or NoPivot. The augmented column is never reported.
func (m *Dense) leadingColumn(i int) int {
	row := m.row(i)
	n := m.c - 1
	for j := 0; j < n; j++ {
		// skip whole zero bytes; byte k holds columns 8k..8k+7
		if j&7 == 0 && row[j>>3] == 0 {
			j += 7
			continue
		}
		if row.Get(j) {
			return j
		}
	}

	return NoPivot
}

// SwapRows exchanges rows i and j.
func (m *Dense) SwapRows(i, j int) error {
	if err := m.checkIndex(opSwapRows, i, 0); err != nil {
		return err
	}
	if err := m.checkIndex(opSwapRows, j, 0); err != nil {
		return err
	}
	m.swapRows(i, j)

	return nil
}

// XorRow adds row src into row dst over GF(2): dst ← dst ⊕ src.
// dst == src is rejected since it would zero the row.
func (m *Dense) XorRow(dst, src int) error {
	if err := m.checkIndex(opXorRow, dst, 0); err != nil {
		return err
	}
	if err := m.checkIndex(opXorRow, src, 0); err != nil {
		return err
	}
	if dst == src {
		return matrixErrorf(opXorRow, fmt.Errorf("dst == src == %d: %w", dst, ErrOutOfRange))
	}
	m.xorRow(dst, src)

	return nil
}

// LeadingColumn returns the first coefficient column of row i equal to 1,
// or NoPivot if the coefficient region of the row is zero.
func (m *Dense) LeadingColumn(i int) (int, error) {
	if err := m.checkIndex(opLeading, i, 0); err != nil {
		return NoPivot, err
	}

	return m.leadingColumn(i), nil
}
