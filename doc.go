// SPDX-License-Identifier: MIT

// Package gf2 finds which of a set of bit vectors XOR to a target, by
// Gaussian elimination over GF(2).
//
// 🚀 What is gf2?
//
//	A small, dependency-light toolkit built in layers:
//		• vector/   – packed GF(2) bit vectors: construction, XOR, formatting
//		• matrix/   – the augmented matrix, row-echelon and reduced forms
//		• solve/    – subset extraction, verification, minimal-subset search
//		• wordhash/ – words whose BLAKE digests XOR to a phrase's digest
//		• cmd/gf2solve – command-line driver for random systems and word lists
//
// ✨ How it works
//
//   - Vectors v₀…v_{C-1} and target t of length L are transposed into an
//     L×(C+1) augmented matrix [ v₀ … v_{C-1} | t ].
//   - Forward elimination brings it to row-echelon form; rows without a
//     pivot in some column are skipped rather than rejected.
//   - Back-propagation clears every pivot column above its pivot.
//   - A zero coefficient row with a 1 on the right means no subset exists;
//     otherwise each pivot column whose row ends in 1 is in the subset and
//     free columns are left out.
//
// Quick example:
//
//	v0 = [010]  v1 = [111]  v2 = [001]   t = [100]
//	v0 ⊕ v1 ⊕ v2 = [100]                 → subset {0, 1, 2}
//
//	go get github.com/katalvlaran/gf2/solve
package gf2
