// SPDX-License-Identifier: MIT

package solve

import (
	"fmt"

	"github.com/katalvlaran/gf2/matrix"
	"github.com/katalvlaran/gf2/vector"
)

// Subset lists the indices of the selected input vectors in ascending order.
// An empty Subset is a valid solution (the target is the zero vector).
type Subset []int

// Solve finds one subset of vectors whose XOR equals target.
//
// Implementation:
//   - Stage 1: matrix.Build validates shapes and lays out the augmented matrix.
//   - Stage 2: RowEchelon, then BackPropagate, in place.
//   - Stage 3: Extract reads the subset off the reduced rows.
//   - Stage 4: Verify recombines the inputs (unless WithoutVerify).
//
// Behavior highlights:
//   - Deterministic: the same inputs in the same order give the same Subset.
//   - Free columns are excluded, so among equivalent inputs the earliest
//     indexed ones are preferred.
//
// Errors:
//   - ErrDimensionMismatch / matrix.ErrBadShape for malformed input.
//   - ErrInconsistent when target is outside the span of vectors.
//   - ErrVerification if recombination disagrees with target.
//   - matrix.ErrNoPivot under WithMatrixOptions(matrix.WithStrictPivot()).
//
// Complexity:
//   - Time O(L² · C/8), Space O(L · C/8).
func Solve(vectors []vector.Vector, target vector.Vector, opts ...Option) (Subset, error) {
	o := gatherOptions(opts...)
	subset, err := solveOnce(vectors, target, &o)
	if err != nil {
		return nil, solveErrorf(opSolve, err)
	}

	return subset, nil
}

// solveOnce runs one attempt with already-gathered options.
func solveOnce(vectors []vector.Vector, target vector.Vector, o *Options) (Subset, error) {
	var (
		m   *matrix.Dense
		err error
	)
	if o.expect == noExpectedCount {
		m, err = matrix.Build(vectors, target)
	} else {
		m, err = matrix.BuildExpect(vectors, target, o.expect)
	}
	if err != nil {
		return nil, err
	}
	rank, err := m.RowEchelon(o.matrixOpts...)
	if err != nil {
		return nil, err
	}
	if err = m.BackPropagate(); err != nil {
		return nil, err
	}
	subset, err := Extract(m)
	if err != nil {
		return nil, err
	}
	log.Tracef("L=%d C=%d rank=%d selected=%d", target.Len(), len(vectors), rank, len(subset))

	if o.verify {
		if err = Verify(vectors, target, subset); err != nil {
			log.Errorf("verification failed for %d-of-%d subset: %v", len(subset), len(vectors), err)
			return nil, err
		}
	}

	return subset, nil
}

// Extract reads the representative solution off a matrix in reduced
// row-echelon form.
//
// Every row is scanned: a row that is zero in the coefficient region but
// has augmented bit 1 means the system is inconsistent. Otherwise the row's
// leading column is included iff its augmented bit is 1. Columns that never
// lead a row are free and excluded.
//
// Errors:
//   - matrix.ErrNotReduced / matrix.ErrNotEchelon when m is not reduced.
//   - ErrInconsistent.
//
// Complexity: O(r*c).
func Extract(m *matrix.Dense) (Subset, error) {
	if err := matrix.ValidateReduced(m); err != nil {
		return nil, solveErrorf(opExtract, err)
	}

	aug := m.Cols() - 1
	subset := make(Subset, 0, m.Rows())
	for row := 0; row < m.Rows(); row++ {
		lead, err := m.LeadingColumn(row)
		if err != nil {
			return nil, solveErrorf(opExtract, err)
		}
		b, err := m.At(row, aug)
		if err != nil {
			return nil, solveErrorf(opExtract, err)
		}
		if lead == matrix.NoPivot {
			if b == 1 {
				return nil, solveErrorf(opExtract, fmt.Errorf("row %d: %w", row, ErrInconsistent))
			}
			continue
		}
		if b == 1 {
			subset = append(subset, lead)
		}
	}

	// leading columns increase row by row, so subset is already sorted
	return subset, nil
}

// Combine returns the XOR of the selected vectors. length is the vector
// length used for the empty combination.
func Combine(vectors []vector.Vector, subset Subset, length int) (vector.Vector, error) {
	acc, err := vector.Zero(length)
	if err != nil {
		return vector.Vector{}, solveErrorf(opCombine, err)
	}
	for _, idx := range subset {
		if idx < 0 || idx >= len(vectors) {
			return vector.Vector{}, solveErrorf(opCombine, fmt.Errorf("index %d of %d: %w", idx, len(vectors), ErrIndexOutOfRange))
		}
		if acc, err = vector.Add(acc, vectors[idx]); err != nil {
			return vector.Vector{}, solveErrorf(opCombine, err)
		}
	}

	return acc, nil
}

// Verify recombines the selected vectors with vector.Add and checks the
// result against target bit for bit.
func Verify(vectors []vector.Vector, target vector.Vector, subset Subset) error {
	got, err := Combine(vectors, subset, target.Len())
	if err != nil {
		return solveErrorf(opVerify, err)
	}
	if !vector.Equal(got, target) {
		return solveErrorf(opVerify, fmt.Errorf("combination %s != target %s: %w", got, target, ErrVerification))
	}

	return nil
}
