// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	mrand "math/rand/v2"
	"os"

	"github.com/katalvlaran/gf2/matrix"
	"github.com/katalvlaran/gf2/solve"
	"github.com/katalvlaran/gf2/vector"
)

// randomCommand is the "random" demonstration driver.
type randomCommand struct {
	Len      int    `short:"l" long:"len" description:"bit length L of every vector"`
	Count    int    `short:"n" long:"count" description:"number of input vectors C"`
	Seed     uint64 `short:"s" long:"seed" description:"seed the generator (0 = crypto random)"`
	Minimize bool   `short:"m" long:"minimize" description:"search shuffled orders for a smaller subset"`
	Trials   int    `short:"t" long:"trials" default:"64" description:"shuffled trials for --minimize"`
	Strict   bool   `long:"strict" description:"stop elimination at the first column without a pivot"`

	out io.Writer
}

// source returns the byte stream random vectors are drawn from.
func (c *randomCommand) source() io.Reader {
	if c.Seed == 0 {
		return nil
	}
	return mrand.NewChaCha8(seedBytes(c.Seed))
}

func seedBytes(seed uint64) [32]byte {
	var b [32]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(seed >> (8 * i))
	}
	return b
}

func (c *randomCommand) draw(src io.Reader) (vector.Vector, error) {
	if src == nil {
		return vector.Random(c.Len)
	}
	return vector.RandomFrom(c.Len, src)
}

// Execute implements flags.Commander.
func (c *randomCommand) Execute(_ []string) error {
	if c.Len < 1 {
		return fmt.Errorf("--len must be >= 1, got %d", c.Len)
	}
	if c.Count < 0 {
		return fmt.Errorf("--count must be >= 0, got %d", c.Count)
	}
	if c.out == nil {
		c.out = os.Stdout
	}

	src := c.source()
	vectors := make([]vector.Vector, c.Count)
	for i := range vectors {
		v, err := c.draw(src)
		if err != nil {
			return err
		}
		vectors[i] = v
	}
	target, err := c.draw(src)
	if err != nil {
		return err
	}
	log.Debugf("generated %d vectors of %d bits", c.Count, c.Len)

	return c.report(vectors, target)
}

// report prints every stage of the pipeline followed by the result.
func (c *randomCommand) report(vectors []vector.Vector, target vector.Vector) error {
	w := c.out
	for i, v := range vectors {
		fmt.Fprintf(w, "v%-3d %s\n", i, v)
	}
	fmt.Fprintf(w, "t    %s\n", target)

	var mopts []matrix.Option
	if c.Strict {
		mopts = append(mopts, matrix.WithStrictPivot())
	}

	m, err := matrix.Build(vectors, target)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nmatrix:\n%s", m)

	ech, rank, err := matrix.EchelonForm(m, mopts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nechelon (rank %d):\n%s", rank, ech)

	red, _, err := matrix.ReducedForm(m, mopts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nreduced:\n%s", red)

	subset, err := solve.Extract(red)
	if errors.Is(err, solve.ErrInconsistent) {
		fmt.Fprintln(w, "\ninconsistent: no subset XORs to the target")
		return nil
	}
	if err != nil {
		return err
	}
	if err = solve.Verify(vectors, target, subset); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nsolution %v (%d vectors)\n", []int(subset), len(subset))

	if !c.Minimize {
		return nil
	}
	opts := []solve.Option{solve.WithTrials(c.Trials), solve.WithMatrixOptions(mopts...)}
	if c.Seed != 0 {
		opts = append(opts, solve.WithSeed(c.Seed))
	}
	seq, err := solve.SearchMinimal(context.Background(), vectors, target, opts...)
	if err != nil {
		return err
	}
	for imp, err := range seq {
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "trial %-4d %v (%d vectors)\n", imp.Trial, []int(imp.Subset), len(imp.Subset))
	}

	return nil
}
