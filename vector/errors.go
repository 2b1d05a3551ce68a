// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrBadLength is returned when a vector length is not positive, or when
	// the requested bit length does not fit into the supplied bytes.
	ErrBadLength = errors.New("vector: invalid length")

	// ErrLengthMismatch indicates that two operands do not share a length.
	ErrLengthMismatch = errors.New("vector: length mismatch")

	// ErrInvalidBit signals a value outside {0,1}, or an unparsable symbol.
	ErrInvalidBit = errors.New("vector: bit must be 0 or 1")

	// ErrOutOfRange indicates that a bit index is outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")
)

// vectorErrorf wraps err with an operation tag; err must be non-nil.
func vectorErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
