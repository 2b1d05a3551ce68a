// Package wordhash applies the GF(2) solver to word digests: given a word
// list and a target digest, it finds words whose digests XOR to the target.
//
// Each word is hashed with a fixed-size Hasher (BLAKE-256 by default, or
// BLAKE3-256) and the digest bits become one input vector of length
// 8·Size. A 256-bit digest therefore needs at least 256 independent words
// before every target is reachable; with fewer, Find reports
// solve.ErrInconsistent for most targets.
//
// Every answer is re-verified at the digest level by VerifyWords, which XORs
// the raw digests of the selected words and compares the bytes with the
// target, independent of the vector and matrix layers.
package wordhash
