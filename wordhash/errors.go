// SPDX-License-Identifier: MIT

package wordhash

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownHasher is returned by HasherByName for an unsupported name.
	ErrUnknownHasher = errors.New("wordhash: unknown hash algorithm")

	// ErrEmptyDictionary indicates a dictionary without any usable word.
	ErrEmptyDictionary = errors.New("wordhash: empty dictionary")

	// ErrDigestSize indicates a target digest whose length differs from the
	// hasher's output size.
	ErrDigestSize = errors.New("wordhash: digest size mismatch")

	// ErrVerification reports that the XOR of the selected words' digests
	// differs from the target digest.
	ErrVerification = errors.New("wordhash: digest verification failed")
)

// Operation tags.
const (
	opLoad    = "LoadWords"
	opNew     = "NewDictionary"
	opFind    = "Find"
	opMinimal = "FindMinimal"
	opVerify  = "VerifyWords"
	opHasher  = "HasherByName"
)

// wordErrorf wraps err with an operation tag; err must be non-nil.
func wordErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
