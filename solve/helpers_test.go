package solve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gf2/solve"
	"github.com/katalvlaran/gf2/vector"
)

// vecs parses vector literals.
func vecs(t testing.TB, lits ...string) []vector.Vector {
	t.Helper()
	out := make([]vector.Vector, len(lits))
	for i, s := range lits {
		out[i] = vector.Must(vector.Parse(s))
	}

	return out
}

// units returns the n standard basis vectors of length n.
func units(t testing.TB, n int) []vector.Vector {
	t.Helper()
	out := make([]vector.Vector, n)
	for i := range out {
		bits := make([]vector.Bit, n)
		bits[i] = 1
		out[i] = vector.Must(vector.FromBits(bits...))
	}

	return out
}

// upperTriangular returns n linearly independent vectors of length n: vector
// i has bit i set, random bits after i and zeros before i.
func upperTriangular(t testing.TB, n int) []vector.Vector {
	t.Helper()
	out := make([]vector.Vector, n)
	for i := range out {
		r := vector.Must(vector.Random(n)).Bits()
		bits := make([]vector.Bit, n)
		bits[i] = 1
		copy(bits[i+1:], r[i+1:])
		out[i] = vector.Must(vector.FromBits(bits...))
	}

	return out
}

// overComplete returns the n unit vectors followed by extra random vectors,
// in a fixed interleaving, so every target of length n is reachable.
func overComplete(t testing.TB, n, extra int) []vector.Vector {
	t.Helper()
	total := n + extra
	out := make([]vector.Vector, 0, total)
	u := units(t, n)
	for i := 0; i < total; i++ {
		if i%2 == 1 && len(u) > 0 {
			out = append(out, u[0])
			u = u[1:]
			continue
		}
		if extra > 0 {
			out = append(out, vector.Must(vector.Random(n)))
			extra--
			continue
		}
		out = append(out, u[0])
		u = u[1:]
	}

	return out
}

// requireCombines asserts that XORing the selected vectors reproduces target.
func requireCombines(t testing.TB, vs []vector.Vector, target vector.Vector, s solve.Subset) {
	t.Helper()
	got, err := solve.Combine(vs, s, target.Len())
	require.NoError(t, err)
	require.True(t, vector.Equal(got, target), "subset %v combines to %s, want %s", s, got, target)
}
