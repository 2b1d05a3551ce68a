// Package vector provides fixed-length bit vectors over GF(2).
//
// A Vector is an immutable sequence of L bits packed into a bitset.Bytes.
// Addition over GF(2) is XOR, so Add(Add(a, b), b) == a for any a and b of
// the same length.
//
// Vectors come from three places:
//   - literal bits (FromBits, Parse) for tests and hand-written systems,
//   - digests (FromBytes) when a hash output is used as a coordinate vector,
//   - random generation (Random, RandomFrom) backed by a CSPRNG.
//
// Rendering follows a compact row format, e.g. "[0110]".
//
//	a := vector.Must(vector.Parse("[010]"))
//	b := vector.Must(vector.Parse("[110]"))
//	c, _ := vector.Add(a, b) // [100]
package vector
