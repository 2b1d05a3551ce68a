// SPDX-License-Identifier: MIT
// Package solve: sentinel error set.

package solve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gf2/matrix"
)

var (
	// ErrInconsistent reports that no subset of the inputs XORs to the
	// target: the reduced matrix has a row that is zero in every coefficient
	// column but 1 in the augmented column. Callers treat it as a normal
	// result.
	ErrInconsistent = errors.New("solve: inconsistent system")

	// ErrVerification reports that the recombined subset does not equal the
	// target. It signals a defect in elimination, never a data problem.
	ErrVerification = errors.New("solve: internal verification failure")

	// ErrDimensionMismatch aliases the matrix sentinel so callers of this
	// package do not need to import matrix to classify shape errors.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrIndexOutOfRange reports a subset index outside the input slice.
	ErrIndexOutOfRange = errors.New("solve: subset index out of range")
)

// Operation tags.
const (
	opSolve   = "Solve"
	opExtract = "Extract"
	opVerify  = "Verify"
	opCombine = "Combine"
	opSearch  = "SearchMinimal"
)

// solveErrorf wraps err with an operation tag; err must be non-nil.
func solveErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
