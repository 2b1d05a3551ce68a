// Package solve - shuffling sources for SearchMinimal.
//
// Goals:
//   - Seeded runs: same seed ⇒ identical trial sequence per worker.
//   - Unseeded runs: a CSPRNG per worker (dcrd crypto/rand), falling back to
//     the package-level locking generator if a private one cannot be seeded.
//
// Concurrency:
//   - Neither *rand.PRNG nor math/rand/v2's *Rand is goroutine-safe; each
//     worker gets its own stream from newShuffler.
package solve

import (
	mrand "math/rand/v2"

	"github.com/decred/dcrd/crypto/rand"
)

// shuffler is the only randomness the search needs.
// *rand.PRNG and *mrand.Rand both satisfy it.
type shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// globalShuffler delegates to the package-level dcrd generator, which is
// safe for concurrent use.
type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64 finalizer so neighbouring workers do not correlate.
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// newShuffler returns the shuffling source for one worker.
func (o *Options) newShuffler(worker int) shuffler {
	if o.seeded {
		return mrand.New(mrand.NewPCG(o.seed, deriveSeed(o.seed, uint64(worker))))
	}
	p, err := rand.NewPRNG()
	if err != nil {
		log.Warnf("worker %d: private PRNG unavailable, using shared generator: %v", worker, err)
		return globalShuffler{}
	}

	return p
}

// identity returns the permutation 0..n-1.
func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}
