// SPDX-License-Identifier: MIT

package solve

import (
	"context"
	"errors"
	"iter"
	"slices"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gf2/vector"
)

// Improvement is one strictly smaller solution found by SearchMinimal.
type Improvement struct {
	// Trial is the shuffled trial that produced Subset; 0 is the unshuffled
	// baseline solve.
	Trial int

	// Worker is the index of the worker that found it.
	Worker int

	// Subset indexes the caller's original vector order, ascending.
	Subset Subset
}

// trialRunner owns the per-worker state of the search: the permutation, the
// permuted input slice, and the shuffler.
type trialRunner struct {
	vectors  []vector.Vector
	target   vector.Vector
	opts     *Options
	perm     []int
	permuted []vector.Vector
	rng      shuffler
}

func newTrialRunner(vectors []vector.Vector, target vector.Vector, o *Options, worker int) *trialRunner {
	return &trialRunner{
		vectors:  vectors,
		target:   target,
		opts:     o,
		perm:     identity(len(vectors)),
		permuted: make([]vector.Vector, len(vectors)),
		rng:      o.newShuffler(worker),
	}
}

// run shuffles the input order, solves the permuted system on a fresh
// matrix, and maps the result back to original indices.
func (r *trialRunner) run() (Subset, error) {
	r.rng.Shuffle(len(r.perm), func(i, j int) {
		r.perm[i], r.perm[j] = r.perm[j], r.perm[i]
	})
	for i, p := range r.perm {
		r.permuted[i] = r.vectors[p]
	}

	sub, err := solveOnce(r.permuted, r.target, r.opts)
	if err != nil {
		return nil, err
	}
	out := make(Subset, len(sub))
	for i, idx := range sub {
		out[i] = r.perm[idx]
	}
	slices.Sort(out)

	return out, nil
}

// floor is the smallest subset size any solution can have: 0 for the zero
// target, 1 otherwise. Once reached, no further improvement is possible.
func floor(target vector.Vector) int {
	if target.IsZero() {
		return 0
	}

	return 1
}

// SearchMinimal looks for small solutions by rerunning Solve over random
// orderings of vectors. It returns a lazy sequence of improvements; each
// yielded Subset is strictly smaller than every earlier one.
//
// Implementation:
//   - Stage 1: solve the unshuffled system once; shape errors and
//     ErrInconsistent are returned immediately (consistency does not depend
//     on the ordering). The baseline is the first improvement (Trial 0).
//   - Stage 2: run shuffled trials, inline for one worker or on
//     WithWorkers(n) goroutines, until the WithTrials budget is spent, the
//     smallest possible size is reached, ctx is done, or the consumer stops.
//
// Behavior highlights:
//   - Unbounded by default; there is no cheap optimality test beyond size.
//     Unlike a pure "run until cancelled" driver, the sequence also ends on
//     its own once a subset of the smallest possible size is yielded (the
//     empty subset for a zero target, a single vector otherwise), since no
//     later trial could improve on it.
//   - An inconsistent trial is skipped; any other trial error (such as
//     ErrVerification) is yielded once and ends the sequence.
//   - If ctx ends the search, ctx.Err() is yielded as the final element.
//
// Complexity:
//   - Per trial: O(C) shuffle plus one Solve.
func SearchMinimal(ctx context.Context, vectors []vector.Vector, target vector.Vector, opts ...Option) (iter.Seq2[Improvement, error], error) {
	o := gatherOptions(opts...)
	baseline, err := solveOnce(vectors, target, &o)
	if err != nil {
		return nil, solveErrorf(opSearch, err)
	}
	log.Debugf("baseline solution selects %d of %d vectors", len(baseline), len(vectors))

	first := Improvement{Trial: 0, Subset: baseline}
	if o.workers <= 1 {
		return searchInline(ctx, vectors, target, &o, first), nil
	}

	return searchParallel(ctx, vectors, target, &o, first), nil
}

func searchInline(ctx context.Context, vectors []vector.Vector, target vector.Vector, o *Options, first Improvement) iter.Seq2[Improvement, error] {
	return func(yield func(Improvement, error) bool) {
		best := len(first.Subset)
		if !yield(first, nil) {
			return
		}
		low := floor(target)
		runner := newTrialRunner(vectors, target, o, 0)
		for trial := 1; best > low && (o.trials == 0 || trial <= o.trials); trial++ {
			if err := ctx.Err(); err != nil {
				yield(Improvement{}, err)
				return
			}
			sub, err := runner.run()
			switch {
			case errors.Is(err, ErrInconsistent):
				continue
			case err != nil:
				yield(Improvement{}, solveErrorf(opSearch, err))
				return
			}
			if len(sub) >= best {
				continue
			}
			best = len(sub)
			log.Debugf("trial %d: new minimum %d", trial, best)
			if !yield(Improvement{Trial: trial, Subset: sub}, nil) {
				return
			}
		}
	}
}

func searchParallel(ctx context.Context, vectors []vector.Vector, target vector.Vector, o *Options, first Improvement) iter.Seq2[Improvement, error] {
	return func(yield func(Improvement, error) bool) {
		if !yield(first, nil) {
			return
		}
		low := floor(target)
		if len(first.Subset) <= low {
			return
		}

		// stop releases the workers once the consumer returns.
		wctx, stop := context.WithCancel(ctx)
		defer stop()
		g, gctx := errgroup.WithContext(wctx)

		var (
			mu      sync.Mutex
			best    = len(first.Subset)
			next    atomic.Int64
			results = make(chan Improvement)
			done    = make(chan error, 1)
		)

		for w := 0; w < o.workers; w++ {
			g.Go(func() error {
				runner := newTrialRunner(vectors, target, o, w)
				for {
					trial := int(next.Add(1))
					if o.trials > 0 && trial > o.trials {
						return nil
					}
					if gctx.Err() != nil {
						return nil
					}
					sub, err := runner.run()
					switch {
					case errors.Is(err, ErrInconsistent):
						continue
					case err != nil:
						return err
					}
					mu.Lock()
					improved := len(sub) < best
					if improved {
						best = len(sub)
					}
					mu.Unlock()
					if !improved {
						continue
					}
					select {
					case results <- Improvement{Trial: trial, Worker: w, Subset: sub}:
					case <-gctx.Done():
						return nil
					}
				}
			})
		}
		go func() {
			done <- g.Wait()
			close(results)
		}()

		// Workers publish in lock order but may be scheduled out of order on
		// the channel; re-check so the consumer only sees strict decreases.
		shown := len(first.Subset)
		for imp := range results {
			if len(imp.Subset) >= shown {
				continue
			}
			shown = len(imp.Subset)
			log.Debugf("worker %d trial %d: new minimum %d", imp.Worker, imp.Trial, shown)
			if !yield(imp, nil) {
				return
			}
			if shown <= low {
				return
			}
		}
		if err := <-done; err != nil {
			yield(Improvement{}, solveErrorf(opSearch, err))
			return
		}
		if err := ctx.Err(); err != nil {
			yield(Improvement{}, err)
		}
	}
}
