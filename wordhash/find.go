// SPDX-License-Identifier: MIT

package wordhash

import (
	"bytes"
	"context"
	"fmt"
	"iter"

	"github.com/katalvlaran/gf2/solve"
	"github.com/katalvlaran/gf2/vector"
)

// Match is one word set found by FindMinimal.
type Match struct {
	// Trial is the search trial that produced Words (0 = unshuffled).
	Trial int

	// Words XOR (by digest) to the target, in dictionary order.
	Words []string
}

// targetVector validates a digest and converts it into a vector.
func (d *Dictionary) targetVector(op string, target []byte) (vector.Vector, error) {
	if len(target) != d.hasher.Size {
		return vector.Vector{}, wordErrorf(op, fmt.Errorf("got %d bytes, %s wants %d: %w",
			len(target), d.hasher.Name, d.hasher.Size, ErrDigestSize))
	}
	v, err := vector.FromBytes(target, d.hasher.Bits())
	if err != nil {
		return vector.Vector{}, wordErrorf(op, err)
	}

	return v, nil
}

// solveOptions pins the unknown count to the dictionary size ahead of the
// caller's options.
func (d *Dictionary) solveOptions(opts []solve.Option) []solve.Option {
	return append([]solve.Option{solve.WithExpectedCount(d.Len())}, opts...)
}

// Find returns words from d whose digests XOR to target. Options are passed
// to solve.Solve. The result is re-verified with VerifyWords.
//
// Errors:
//   - ErrDigestSize for a target of the wrong length.
//   - solve.ErrInconsistent when no word set reaches target.
//   - ErrVerification (or solve.ErrVerification) on an internal defect.
func Find(d *Dictionary, target []byte, opts ...solve.Option) ([]string, error) {
	tv, err := d.targetVector(opFind, target)
	if err != nil {
		return nil, err
	}
	subset, err := solve.Solve(d.vectors, tv, d.solveOptions(opts)...)
	if err != nil {
		return nil, wordErrorf(opFind, err)
	}
	words := d.pick(subset)
	if err = VerifyWords(d.hasher, words, target); err != nil {
		log.Criticalf("solver returned an unverifiable word set: %v", err)
		return nil, wordErrorf(opFind, err)
	}
	log.Debugf("found %d-word solution", len(words))

	return words, nil
}

// FindMinimal streams ever smaller word sets for target using
// solve.SearchMinimal. Every yielded set is verified at the digest level; a
// failed verification is yielded as ErrVerification and ends the sequence.
func FindMinimal(ctx context.Context, d *Dictionary, target []byte, opts ...solve.Option) (iter.Seq2[Match, error], error) {
	tv, err := d.targetVector(opMinimal, target)
	if err != nil {
		return nil, err
	}
	seq, err := solve.SearchMinimal(ctx, d.vectors, tv, d.solveOptions(opts)...)
	if err != nil {
		return nil, wordErrorf(opMinimal, err)
	}

	return func(yield func(Match, error) bool) {
		for imp, err := range seq {
			if err != nil {
				yield(Match{}, wordErrorf(opMinimal, err))
				return
			}
			words := d.pick(imp.Subset)
			if err = VerifyWords(d.hasher, words, target); err != nil {
				log.Criticalf("search returned an unverifiable word set: %v", err)
				yield(Match{}, wordErrorf(opMinimal, err))
				return
			}
			if !yield(Match{Trial: imp.Trial, Words: words}, nil) {
				return
			}
		}
	}, nil
}

// VerifyWords recomputes the XOR of the digests of words and compares it
// with target byte for byte.
func VerifyWords(h Hasher, words []string, target []byte) error {
	if len(target) != h.Size {
		return wordErrorf(opVerify, ErrDigestSize)
	}
	acc := make([]byte, h.Size)
	for _, w := range words {
		d := h.SumString(w)
		for i := range acc {
			acc[i] ^= d[i]
		}
	}
	if !bytes.Equal(acc, target) {
		return wordErrorf(opVerify, fmt.Errorf("xor %x != target %x: %w", acc, target, ErrVerification))
	}

	return nil
}
