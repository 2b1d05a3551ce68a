// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Build small matrices from their rendered rows ("[0101]") so fixtures read
//     the same way the matrix prints.
//   • Dump the full internal state with go-spew when a form check fails.

package matrix_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gf2/matrix"
	"github.com/katalvlaran/gf2/vector"
)

// MustRows builds a Dense from rendered rows; every row must have the same
// width, the last digit being the augmented bit.
func MustRows(t testing.TB, rows ...string) *matrix.Dense {
	t.Helper()
	require.NotEmpty(t, rows, "at least one row")

	first := vector.Must(vector.Parse(rows[0]))
	m, err := matrix.NewDense(len(rows), first.Len()-1)
	require.NoError(t, err)
	for i, s := range rows {
		v, err := vector.Parse(s)
		require.NoError(t, err, "row %d", i)
		require.Equal(t, first.Len(), v.Len(), "row %d width", i)
		for j, b := range v.Bits() {
			require.NoError(t, m.Set(i, j, b))
		}
	}

	return m
}

// MustVectors parses each literal into a vector.
func MustVectors(t testing.TB, lits ...string) []vector.Vector {
	t.Helper()
	out := make([]vector.Vector, len(lits))
	for i, s := range lits {
		v, err := vector.Parse(s)
		require.NoError(t, err, "vector %d", i)
		out[i] = v
	}

	return out
}

// RequireEchelon fails the test with a full dump when m is not in
// row-echelon form.
func RequireEchelon(t testing.TB, m *matrix.Dense) {
	t.Helper()
	require.NoError(t, matrix.ValidateRowEchelon(m), "matrix:\n%s%s", m, spew.Sdump(m))
}

// RequireReduced fails the test with a full dump when m is not in reduced
// row-echelon form.
func RequireReduced(t testing.TB, m *matrix.Dense) {
	t.Helper()
	require.NoError(t, matrix.ValidateReduced(m), "matrix:\n%s%s", m, spew.Sdump(m))
}

// RandomSystem returns c random vectors and a random target of length l.
func RandomSystem(t testing.TB, l, c int) ([]vector.Vector, vector.Vector) {
	t.Helper()
	vs := make([]vector.Vector, c)
	for i := range vs {
		vs[i] = vector.Must(vector.Random(l))
	}

	return vs, vector.Must(vector.Random(l))
}
