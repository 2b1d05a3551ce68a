// Package solve answers "which subset of these GF(2) vectors XORs to the
// target?" on top of the matrix elimination kernels.
//
// Pipeline (one attempt):
//
//	matrix.Build → (*Dense).RowEchelon → (*Dense).BackPropagate → Extract → Verify
//
// Solve returns one representative Subset: every pivot column is pinned by
// its row's augmented bit and every free column is excluded. A target outside
// the span of the inputs yields ErrInconsistent, which is an ordinary outcome
// rather than a failure of the solver. A recombination mismatch after
// extraction yields ErrVerification and always indicates a bug.
//
// SearchMinimal repeats the pipeline over random orderings of the inputs.
// Since elimination prefers earlier columns as pivots, each ordering can
// surface a different representative solution; the search reports every
// strictly smaller one it meets:
//
//	seq, err := solve.SearchMinimal(ctx, vectors, target, solve.WithTrials(1000))
//	for imp, err := range seq {
//		if err != nil { ... }
//		fmt.Println(imp.Trial, len(imp.Subset))
//	}
//
// Logging is disabled until UseLogger is called.
package solve
