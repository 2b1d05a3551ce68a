// SPDX-License-Identifier: MIT

package wordhash

import (
	"fmt"

	"github.com/katalvlaran/gf2/vector"
)

// Option configures a Dictionary.
type Option func(*options)

type options struct {
	hasher Hasher
}

// WithHasher selects the digest algorithm (default DefaultHasher).
func WithHasher(h Hasher) Option {
	return func(o *options) { o.hasher = h }
}

// Dictionary is a fixed word list together with each word's digest and the
// digest's bit vector. It is immutable after construction and safe for
// concurrent reads.
type Dictionary struct {
	hasher  Hasher
	words   []string
	digests [][]byte
	vectors []vector.Vector
}

// NewDictionary hashes every word once up front.
func NewDictionary(words []string, opts ...Option) (*Dictionary, error) {
	o := options{hasher: DefaultHasher}
	for _, set := range opts {
		set(&o)
	}
	if !o.hasher.valid() {
		return nil, wordErrorf(opNew, fmt.Errorf("%q has no digest function: %w", o.hasher.Name, ErrUnknownHasher))
	}
	if len(words) == 0 {
		return nil, wordErrorf(opNew, ErrEmptyDictionary)
	}

	d := &Dictionary{
		hasher:  o.hasher,
		words:   append([]string(nil), words...),
		digests: make([][]byte, len(words)),
		vectors: make([]vector.Vector, len(words)),
	}
	for i, w := range d.words {
		d.digests[i] = o.hasher.SumString(w)
		v, err := vector.FromBytes(d.digests[i], o.hasher.Bits())
		if err != nil {
			return nil, wordErrorf(opNew, err)
		}
		d.vectors[i] = v
	}
	log.Debugf("dictionary: %d words, %s, L=%d", len(d.words), o.hasher.Name, o.hasher.Bits())

	return d, nil
}

// Len returns the number of words, i.e. the unknown count C.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Hasher returns the digest algorithm in use.
func (d *Dictionary) Hasher() Hasher {
	return d.hasher
}

// Words returns a copy of the word list.
func (d *Dictionary) Words() []string {
	return append([]string(nil), d.words...)
}

// Vectors returns the digest vectors in word order. The slice is shared;
// vectors themselves are immutable.
func (d *Dictionary) Vectors() []vector.Vector {
	return d.vectors
}

// Target hashes phrase with the dictionary's hasher.
func (d *Dictionary) Target(phrase string) []byte {
	return d.hasher.SumString(phrase)
}

// pick maps a subset of indices to words.
func (d *Dictionary) pick(idx []int) []string {
	out := make([]string, len(idx))
	for i, k := range idx {
		out[i] = d.words[k]
	}

	return out
}
