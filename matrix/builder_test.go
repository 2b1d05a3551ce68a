package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gf2/matrix"
	"github.com/katalvlaran/gf2/vector"
)

// TestBuild_Transposes checks that input vectors become columns and the
// target becomes the augmented column.
func TestBuild_Transposes(t *testing.T) {
	vs := MustVectors(t, "[010]", "[110]", "[001]")
	target := vector.Must(vector.Parse("[101]"))

	m, err := matrix.Build(vs, target)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())
	assert.Equal(t, "[0101]\n[1100]\n[0011]\n", m.String())

	for c, v := range vs {
		for r := 0; r < v.Len(); r++ {
			want, err := v.At(r)
			require.NoError(t, err)
			got, err := m.At(r, c)
			require.NoError(t, err)
			assert.Equal(t, want, got, "(%d,%d)", r, c)
		}
	}
}

func TestBuild_NoInputs(t *testing.T) {
	target := vector.Must(vector.Parse("[10]"))
	m, err := matrix.Build(nil, target)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Unknowns())
	assert.Equal(t, "[1]\n[0]\n", m.String())
}

func TestBuild_DimensionMismatch(t *testing.T) {
	vs := MustVectors(t, "[010]", "[11]")
	_, err := matrix.Build(vs, vector.Must(vector.Parse("[101]")))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Build(MustVectors(t, "[01]"), vector.Vector{})
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestBuildExpect_Count(t *testing.T) {
	vs := MustVectors(t, "[01]", "[10]")
	target := vector.Must(vector.Parse("[11]"))

	_, err := matrix.BuildExpect(vs, target, 3)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	m, err := matrix.BuildExpect(vs, target, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Unknowns())
}
