// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Algorithms return these sentinels (optionally wrapped with an
// operation tag) and tests check them via errors.Is. No algorithm panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with matrixErrorf(op, ErrX);
// callers still match with errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0 or unknowns < 0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/SwapRows/XorRow) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that input vectors, the target, or the
	// expected input count disagree on shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidBit signals a value outside {0,1} passed to Set.
	ErrInvalidBit = errors.New("matrix: bit must be 0 or 1")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNoPivot is returned by RowEchelon under WithStrictPivot when a
	// coefficient column has no row with a 1 at or below the current row.
	ErrNoPivot = errors.New("matrix: no pivot found")

	// ErrNotEchelon is returned when an operation requiring row-echelon form
	// receives a matrix that is not in that form.
	ErrNotEchelon = errors.New("matrix: not in row-echelon form")

	// ErrNotReduced is returned when reduced row-echelon form is required
	// but a pivot column has another 1 in it.
	ErrNotReduced = errors.New("matrix: not in reduced row-echelon form")
)
