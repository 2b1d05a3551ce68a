// SPDX-License-Identifier: MIT

// Package matrix: shared constants and the error-wrapping helper.
package matrix

import "fmt"

// NoPivot is the column index reported by LeadingColumn for a row whose
// coefficient region is entirely zero.
const NoPivot = -1

// Operation name constants for unified error wrapping.
const (
	opNewDense      = "NewDense"
	opAt            = "At"
	opSet           = "Set"
	opSwapRows      = "SwapRows"
	opXorRow        = "XorRow"
	opBuild         = "Build"
	opRowEchelon    = "RowEchelon"
	opBackPropagate = "BackPropagate"
	opLeading       = "LeadingColumn"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w. Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
