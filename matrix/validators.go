// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape and form checks.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly.
//
// Note:
//  - Form checks (ValidateRowEchelon, ValidateReduced) run in O(r*c) and
//    allocate nothing.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/gf2/vector"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSystem ensures the target is non-empty and every input vector has
// the target's length.
// Complexity: O(C).
func ValidateSystem(vectors []vector.Vector, target vector.Vector) error {
	if target.Len() <= 0 {
		return validatorErrorf("ValidateSystem", ErrBadShape)
	}
	for i, v := range vectors {
		if v.Len() != target.Len() {
			return validatorErrorf("ValidateSystem",
				fmt.Errorf("vector %d has length %d, target %d: %w", i, v.Len(), target.Len(), ErrDimensionMismatch))
		}
	}

	return nil
}

// ValidateRowEchelon checks the canonical echelon shape: every non-zero row
// has its leading 1 strictly to the right of the previous row's, and every
// zero row (in the coefficient region) sits below all non-zero rows.
// Complexity: O(r*c).
func ValidateRowEchelon(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	prev := NoPivot
	seenZero := false
	for i := 0; i < m.r; i++ {
		lead := m.leadingColumn(i)
		if lead == NoPivot {
			seenZero = true
			continue
		}
		if seenZero || lead <= prev {
			return validatorErrorf("ValidateRowEchelon", fmt.Errorf("row %d leads at %d: %w", i, lead, ErrNotEchelon))
		}
		prev = lead
	}

	return nil
}

// ValidateReduced checks reduced row-echelon form: echelon shape plus every
// pivot column holding exactly one 1.
// Complexity: O(r²) on top of ValidateRowEchelon.
func ValidateReduced(m *Dense) error {
	if err := ValidateRowEchelon(m); err != nil {
		return err
	}
	for i := 0; i < m.r; i++ {
		lead := m.leadingColumn(i)
		if lead == NoPivot {
			continue
		}
		for k := 0; k < m.r; k++ {
			if k != i && m.get(k, lead) {
				return validatorErrorf("ValidateReduced", fmt.Errorf("pivot (%d,%d) also set in row %d: %w", i, lead, k, ErrNotReduced))
			}
		}
	}

	return nil
}
