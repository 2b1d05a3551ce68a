// Package matrix implements dense augmented matrices over GF(2) and the
// elimination kernels used to solve XOR systems.
//
// 🚀 What is it for?
//
//	Given C input vectors of length L and a target of length L, Build lays the
//	vectors out as COLUMNS of an L×(C+1) matrix whose last column is the
//	target. Row r then reads as one scalar equation:
//
//	  x0·v0[r] ⊕ x1·v1[r] ⊕ … ⊕ x(C-1)·v(C-1)[r] = t[r]
//
//	RowEchelon runs forward Gaussian elimination specialised to GF(2): any 1
//	qualifies as a pivot and row elimination is XOR. BackPropagate then clears
//	every entry above each pivot, leaving reduced row-echelon form, from which
//	the solve package reads the selected inputs.
//
// ✨ Key properties:
//   - rows are packed bitsets (github.com/jrick/bitset) stored in one flat
//     buffer with a fixed per-row stride; XOR of two rows is a byte loop,
//   - all public indexers bounds-check and return sentinel errors,
//   - a column with no pivot candidate is skipped by default; the strict
//     square-system policy (fail with ErrNoPivot) is opt-in via WithStrictPivot.
//
// ⚙️ Usage:
//
//	m, err := matrix.Build(vectors, target)
//	rank, err := m.RowEchelon()
//	err = m.BackPropagate()
//
// Performance:
//
//   - RowEchelon:    O(min(L,C) · L · C/8)
//   - BackPropagate: O(L² · C/8)
//   - Memory:        O(L · C/8), one allocation per matrix
package matrix
