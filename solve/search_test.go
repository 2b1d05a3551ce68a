package solve_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gf2/matrix"
	"github.com/katalvlaran/gf2/solve"
	"github.com/katalvlaran/gf2/vector"
)

// collect drains a search sequence, failing on any yielded error.
func collect(t *testing.T, seq func(func(solve.Improvement, error) bool)) []solve.Improvement {
	t.Helper()
	var out []solve.Improvement
	for imp, err := range seq {
		require.NoError(t, err)
		out = append(out, imp)
	}

	return out
}

// requireImproving checks the search contract on a finished run.
func requireImproving(t *testing.T, imps []solve.Improvement, vs []vector.Vector, target vector.Vector) {
	t.Helper()
	require.NotEmpty(t, imps)
	assert.Equal(t, 0, imps[0].Trial, "baseline first")
	for i, imp := range imps {
		assert.GreaterOrEqual(t, len(imp.Subset), 0)
		assert.LessOrEqual(t, len(imp.Subset), len(vs))
		assert.IsIncreasing(t, []int(imp.Subset), "subset %d sorted", i)
		requireCombines(t, vs, target, imp.Subset)
		if i > 0 {
			assert.Less(t, len(imp.Subset), len(imps[i-1].Subset), "strictly smaller")
		}
	}
}

func TestSearchMinimal_Improves(t *testing.T) {
	defer useTestLogger(t)()

	vs := overComplete(t, 10, 30)
	target := vector.Must(vector.Random(10))
	seq, err := solve.SearchMinimal(context.Background(), vs, target,
		solve.WithTrials(300), solve.WithSeed(42))
	require.NoError(t, err)

	imps := collect(t, seq)
	requireImproving(t, imps, vs, target)
	for i := 1; i < len(imps); i++ {
		assert.Greater(t, imps[i].Trial, imps[i-1].Trial)
		assert.LessOrEqual(t, imps[i].Trial, 300)
	}
}

// TestSearchMinimal_SeedDeterminism: one worker, same seed, same run.
func TestSearchMinimal_SeedDeterminism(t *testing.T) {
	vs := overComplete(t, 12, 36)
	target := vector.Must(vector.Random(12))

	run := func() []solve.Improvement {
		seq, err := solve.SearchMinimal(context.Background(), vs, target,
			solve.WithTrials(200), solve.WithSeed(7))
		require.NoError(t, err)
		return collect(t, seq)
	}
	assert.Equal(t, run(), run())
}

func TestSearchMinimal_Workers(t *testing.T) {
	vs := overComplete(t, 16, 48)
	target := vector.Must(vector.Random(16))

	seq, err := solve.SearchMinimal(context.Background(), vs, target,
		solve.WithTrials(400), solve.WithWorkers(4))
	require.NoError(t, err)
	requireImproving(t, collect(t, seq), vs, target)
}

func TestSearchMinimal_Inconsistent(t *testing.T) {
	_, err := solve.SearchMinimal(context.Background(), vecs(t, "[100]", "[010]"),
		vector.Must(vector.Parse("[001]")))
	assert.ErrorIs(t, err, solve.ErrInconsistent)
}

// TestSearchMinimal_ZeroTarget: the baseline is already the empty subset, so
// nothing can improve on it and the unbounded search ends by itself.
func TestSearchMinimal_ZeroTarget(t *testing.T) {
	for _, workers := range []int{1, 3} {
		vs := overComplete(t, 8, 8)
		seq, err := solve.SearchMinimal(context.Background(), vs, vector.Must(vector.Zero(8)),
			solve.WithWorkers(workers))
		require.NoError(t, err)
		imps := collect(t, seq)
		require.Len(t, imps, 1)
		assert.Empty(t, imps[0].Subset)
	}
}

// TestSearchMinimal_ContextCancel: a unique solution never improves, so an
// unbounded search only stops through its context.
func TestSearchMinimal_ContextCancel(t *testing.T) {
	ones := make([]vector.Bit, 8)
	for i := range ones {
		ones[i] = 1
	}
	target := vector.Must(vector.FromBits(ones...))

	for _, workers := range []int{1, 2} {
		vs := units(t, 8)
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		seq, err := solve.SearchMinimal(ctx, vs, target, solve.WithWorkers(workers))
		require.NoError(t, err)

		var (
			imps []solve.Improvement
			last error
		)
		for imp, err := range seq {
			if err != nil {
				last = err
				break
			}
			imps = append(imps, imp)
		}
		cancel()
		require.Len(t, imps, 1, "workers=%d", workers)
		assert.Len(t, imps[0].Subset, 8)
		assert.ErrorIs(t, last, context.DeadlineExceeded, "workers=%d", workers)
	}
}

// TestSearchMinimal_Break stops consuming after the baseline.
func TestSearchMinimal_Break(t *testing.T) {
	vs := overComplete(t, 10, 30)
	seq, err := solve.SearchMinimal(context.Background(), vs, vector.Must(vector.Random(10)),
		solve.WithWorkers(2))
	require.NoError(t, err)
	n := 0
	for range seq {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { solve.WithTrials(-1) })
	assert.Panics(t, func() { solve.WithWorkers(0) })
}

// TestSearchMinimal_TrialErrorEndsSearch: under the strict pivot policy the
// unshuffled order of [100] [010] [001] [100] succeeds, but any order that
// puts both copies of [100] before the last slot leaves a column without a
// pivot. That error must end the sequence for every worker count.
func TestSearchMinimal_TrialErrorEndsSearch(t *testing.T) {
	vs := vecs(t, "[100]", "[010]", "[001]", "[100]")
	target := vector.Must(vector.Parse("[111]"))

	for _, workers := range []int{1, 3} {
		seq, err := solve.SearchMinimal(context.Background(), vs, target,
			solve.WithTrials(200), solve.WithSeed(5), solve.WithWorkers(workers),
			solve.WithMatrixOptions(matrix.WithStrictPivot()))
		require.NoError(t, err, "workers=%d", workers)

		var (
			imps []solve.Improvement
			last error
		)
		for imp, err := range seq {
			if err != nil {
				last = err
				break
			}
			imps = append(imps, imp)
		}
		require.NotEmpty(t, imps, "workers=%d", workers)
		assert.Equal(t, solve.Subset{0, 1, 2}, imps[0].Subset)
		assert.ErrorIs(t, last, matrix.ErrNoPivot, "workers=%d", workers)
	}
}

// TestSearchMinimal_StopsAtSingleVector: once one vector equals the target
// nothing smaller exists, so the search ends without a trial budget.
func TestSearchMinimal_StopsAtSingleVector(t *testing.T) {
	vs := vecs(t, "[110]", "[011]", "[101]")
	target := vector.Must(vector.Parse("[101]"))

	for _, workers := range []int{1, 2} {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		seq, err := solve.SearchMinimal(ctx, vs, target, solve.WithWorkers(workers))
		require.NoError(t, err)
		imps := collect(t, seq)
		cancel()
		requireImproving(t, imps, vs, target)
		assert.Len(t, imps[len(imps)-1].Subset, 1, "workers=%d", workers)
	}
}

func TestOptions_ExpectedCount(t *testing.T) {
	vs := vecs(t, "[010]", "[111]", "[001]")
	target := vector.Must(vector.Parse("[100]"))

	got, err := solve.Solve(vs, target, solve.WithExpectedCount(3))
	require.NoError(t, err)
	assert.Equal(t, solve.Subset{0, 1, 2}, got)

	_, err = solve.Solve(vs, target, solve.WithExpectedCount(4))
	assert.ErrorIs(t, err, solve.ErrDimensionMismatch)
	_, err = solve.SearchMinimal(context.Background(), vs[:2], target, solve.WithExpectedCount(3))
	assert.ErrorIs(t, err, solve.ErrDimensionMismatch)

	assert.Panics(t, func() { solve.WithExpectedCount(-1) })
}
