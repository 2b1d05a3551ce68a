// SPDX-License-Identifier: MIT

// Package solve: functional configuration for Solve and SearchMinimal.
//
// Notes:
//   - Invalid values (negative trials, workers < 1) are programmer errors and
//     panic in the constructor, like the matrix package does.
//   - Matrix options are forwarded verbatim to RowEchelon.
package solve

import "github.com/katalvlaran/gf2/matrix"

// Defaults.
const (
	// DefaultVerify re-checks every extracted subset against the target.
	DefaultVerify = true

	// DefaultTrials of 0 means SearchMinimal runs until ctx is cancelled or
	// the consumer stops ranging.
	DefaultTrials = 0

	// DefaultWorkers runs the search inline in the consumer's goroutine.
	DefaultWorkers = 1
)

const (
	panicTrialsInvalid  = "solve: WithTrials: trials must be >= 0"
	panicWorkersInvalid = "solve: WithWorkers: workers must be >= 1"
	panicExpectInvalid  = "solve: WithExpectedCount: count must be >= 0"

	// noExpectedCount disables the input count check.
	noExpectedCount = -1
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	verify     bool
	trials     int
	workers    int
	seeded     bool
	seed       uint64
	matrixOpts []matrix.Option
	expect     int
}

// WithoutVerify skips the recombination check after extraction.
func WithoutVerify() Option {
	return func(o *Options) { o.verify = false }
}

// WithVerify enables the recombination check (default).
func WithVerify() Option {
	return func(o *Options) { o.verify = true }
}

// WithTrials bounds SearchMinimal to n shuffled trials; 0 means unbounded.
func WithTrials(n int) Option {
	if n < 0 {
		panic(panicTrialsInvalid)
	}

	return func(o *Options) { o.trials = n }
}

// WithWorkers runs SearchMinimal on n goroutines. Each worker owns its
// matrices and its shuffler; only the best length found so far is shared.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithSeed makes shuffling reproducible: worker w draws from a PCG stream
// derived from (seed, w). Without it, shuffles come from a CSPRNG.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.seeded = true
		o.seed = seed
	}
}

// WithMatrixOptions forwards elimination options such as
// matrix.WithStrictPivot to every attempt.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(o *Options) { o.matrixOpts = append(o.matrixOpts, opts...) }
}

// WithExpectedCount requires exactly n input vectors; any other count fails
// with ErrDimensionMismatch before a matrix is built.
func WithExpectedCount(n int) Option {
	if n < 0 {
		panic(panicExpectInvalid)
	}

	return func(o *Options) { o.expect = n }
}

// gatherOptions applies user setters on top of defaults; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		verify:  DefaultVerify,
		trials:  DefaultTrials,
		workers: DefaultWorkers,
		expect:  noExpectedCount,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
