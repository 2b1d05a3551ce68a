// SPDX-License-Identifier: MIT
// Package matrix: GF(2) Gaussian elimination.
//
// Purpose:
//   - RowEchelon: forward elimination to row-echelon form.
//   - BackPropagate: reverse elimination to reduced row-echelon form.
//   - Copy-returning facades (EchelonForm, ReducedForm) for callers that must
//     keep the original matrix.
//
// Notes:
//   - Over GF(2) pivot selection is trivial (any 1 qualifies, no magnitude
//     comparison) and elimination is XOR instead of scaled subtraction.
//   - Only coefficient columns are ever pivoted; the augmented column rides
//     along with every row operation.

package matrix

import "fmt"

// RowEchelon transforms m in place into row-echelon form with respect to the
// coefficient columns and returns the rank (number of pivot rows).
//
// Implementation:
//   - Stage 1: cur := 0.
//   - Stage 2: for each coefficient column col (ascending) while cur < rows:
//     find the first row >= cur with a 1 in col; if none, skip the column
//     (or fail with ErrNoPivot under WithStrictPivot); otherwise swap it into
//     row cur, XOR row cur into every row below with a 1 in col, advance cur.
//   - Stage 3: return cur as the rank.
//
// Behavior highlights:
//   - Earlier columns are preferred as pivots, so input order decides which
//     representative solution is later read off.
//   - Stops early once every row holds a pivot.
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrNoPivot (strict policy only), with the matrix left partially reduced.
//
// Complexity:
//   - Time O(min(r,C) · r · c/8), Space O(1).
func (m *Dense) RowEchelon(opts ...Option) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRowEchelon, err)
	}
	o := gatherOptions(opts...)

	var (
		cur      int // next row to receive a pivot
		col, row int // loop iterators
		found    int // first candidate row for col
	)
	unknowns := m.c - 1
	for col = 0; col < unknowns && cur < m.r; col++ {
		found = NoPivot
		for row = cur; row < m.r; row++ {
			if m.get(row, col) {
				found = row
				break
			}
		}
		if found == NoPivot {
			if o.strictPivot {
				return cur, matrixErrorf(opRowEchelon, fmt.Errorf("column %d: %w", col, ErrNoPivot))
			}
			continue
		}

		m.swapRows(found, cur)
		for row = cur + 1; row < m.r; row++ {
			if m.get(row, col) {
				m.xorRow(row, cur)
			}
		}
		cur++
	}

	return cur, nil
}

// BackPropagate turns a row-echelon matrix into reduced row-echelon form in
// place: walking rows from last to first, each row's leading 1 is cleared
// from every row above it by XOR. Rows that are zero in the coefficient
// region are skipped.
//
// Rows must be processed bottom-up: a row XORed into the rows above only
// carries entries to the right of its pivot, which belong to pivots that are
// already cleared or to free columns.
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrNotEchelon if m is not in row-echelon form.
//
// Complexity:
//   - Time O(r² · c/8), Space O(1).
func (m *Dense) BackPropagate() error {
	if err := ValidateRowEchelon(m); err != nil {
		return matrixErrorf(opBackPropagate, err)
	}

	var row, above, lead int
	for row = m.r - 1; row >= 0; row-- {
		lead = m.leadingColumn(row)
		if lead == NoPivot {
			continue
		}
		for above = 0; above < row; above++ {
			if m.get(above, lead) {
				m.xorRow(above, row)
			}
		}
	}

	return nil
}

// EchelonForm returns a row-echelon copy of m and its rank; m is untouched.
func EchelonForm(m *Dense, opts ...Option) (*Dense, int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, 0, matrixErrorf(opRowEchelon, err)
	}
	out := m.Clone()
	rank, err := out.RowEchelon(opts...)
	if err != nil {
		return nil, rank, err
	}

	return out, rank, nil
}

// ReducedForm returns a reduced row-echelon copy of m and its rank; m is
// untouched.
func ReducedForm(m *Dense, opts ...Option) (*Dense, int, error) {
	out, rank, err := EchelonForm(m, opts...)
	if err != nil {
		return nil, rank, err
	}
	if err = out.BackPropagate(); err != nil {
		return nil, rank, err
	}

	return out, rank, nil
}
