// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the elimination kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//
// Notes:
//   - Pivot policy. Historically two variants existed: "wide" systems skip a
//     coefficient column that has no candidate row, while square full-rank
//     systems failed immediately. The default is skip-and-continue, with
//     inconsistency detected only when the solution is extracted. The strict
//     variant stays available for callers that know their system is square
//     and full rank and want to fail fast.
package matrix

// DefaultStrictPivot controls whether RowEchelon fails on a column without
// a pivot candidate (true) or skips it (false).
const DefaultStrictPivot = false

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	strictPivot bool // DefaultStrictPivot
}

// WithStrictPivot makes RowEchelon return ErrNoPivot as soon as a coefficient
// column has no row with a 1 at or below the current row.
//
// Notes:
//   - Only meaningful for square, full-rank systems; a dependent or
//     over-complete input set always trips it.
func WithStrictPivot() Option {
	return func(o *Options) { o.strictPivot = true }
}

// WithSkipMissingPivot restores the default skip-and-continue policy.
func WithSkipMissingPivot() Option {
	return func(o *Options) { o.strictPivot = false }
}

// gatherOptions applies user-provided setters on top of defaults.
// Last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		strictPivot: DefaultStrictPivot,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
