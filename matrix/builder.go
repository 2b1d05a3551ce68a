// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/gf2/vector"
)

// Build assembles the augmented coefficient matrix of the system
// "which subset of vectors XORs to target".
//
// Implementation:
//   - Stage 1: ValidateSystem (target length > 0, every vector has the same length).
//   - Stage 2: allocate an L×(C+1) Dense.
//   - Stage 3: transpose: cell (r, c) = vectors[c] bit r; cell (r, C) = target bit r.
//
// Behavior highlights:
//   - Each row is one scalar equation over all C unknowns.
//   - C == 0 is allowed; the matrix is then the target as a single column.
//
// Errors:
//   - ErrDimensionMismatch if any vector length differs from target.Len().
//   - ErrBadShape if the target is empty.
//
// Complexity:
//   - Time O(L*C), Space O(L*C/8).
func Build(vectors []vector.Vector, target vector.Vector) (*Dense, error) {
	if err := ValidateSystem(vectors, target); err != nil {
		return nil, matrixErrorf(opBuild, err)
	}
	rows, unknowns := target.Len(), len(vectors)
	m, err := NewDense(rows, unknowns)
	if err != nil {
		return nil, matrixErrorf(opBuild, err)
	}

	var r, c int
	for r = 0; r < rows; r++ {
		row := m.row(r)
		for c = 0; c < unknowns; c++ {
			if vectors[c].Get(r) {
				row.Set(c)
			}
		}
		if target.Get(r) {
			row.Set(unknowns)
		}
	}

	return m, nil
}

// BuildExpect is Build with an additional check that exactly want input
// vectors were supplied, for callers whose unknown count is fixed ahead of
// time (e.g. a dictionary of known size).
func BuildExpect(vectors []vector.Vector, target vector.Vector, want int) (*Dense, error) {
	if len(vectors) != want {
		return nil, matrixErrorf(opBuild, fmt.Errorf("got %d vectors, want %d: %w", len(vectors), want, ErrDimensionMismatch))
	}

	return Build(vectors, target)
}
