// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/katalvlaran/gf2/solve"
	"github.com/katalvlaran/gf2/wordhash"
)

// wordsCommand is the word-hash application driver.
type wordsCommand struct {
	WordList string `short:"w" long:"wordlist" required:"true" description:"word list file, one word per line (- for stdin)"`
	Phrase   string `short:"p" long:"phrase" description:"phrase whose digest is the target"`
	Digest   string `long:"digest" description:"hex digest to use as the target instead of --phrase"`
	Hash     string `long:"hash" description:"digest algorithm {blake256, blake3}"`
	Minimize bool   `short:"m" long:"minimize" description:"keep searching shuffled orders for fewer words"`
	Trials   int    `short:"t" long:"trials" description:"shuffled trials for --minimize (0 = until interrupted)"`
	Workers  int    `short:"j" long:"workers" description:"search goroutines for --minimize"`
	Seed     uint64 `short:"s" long:"seed" description:"seed for reproducible shuffles (0 = crypto random)"`

	in  io.Reader
	out io.Writer
}

func (c *wordsCommand) openWordList() (io.ReadCloser, error) {
	if c.WordList == "-" {
		if c.in != nil {
			return io.NopCloser(c.in), nil
		}
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(c.WordList)
}

func (c *wordsCommand) target(d *wordhash.Dictionary) ([]byte, error) {
	switch {
	case c.Digest != "" && c.Phrase != "":
		return nil, errors.New("--phrase and --digest are mutually exclusive")
	case c.Digest != "":
		return hex.DecodeString(strings.TrimPrefix(c.Digest, "0x"))
	case c.Phrase != "":
		return d.Target(c.Phrase), nil
	}
	return nil, errors.New("one of --phrase or --digest is required")
}

// Execute implements flags.Commander.
func (c *wordsCommand) Execute(_ []string) error {
	if c.out == nil {
		c.out = os.Stdout
	}
	if c.Workers < 1 {
		return fmt.Errorf("--workers must be >= 1, got %d", c.Workers)
	}
	if c.Trials < 0 {
		return fmt.Errorf("--trials must be >= 0, got %d", c.Trials)
	}
	h, err := wordhash.HasherByName(c.Hash)
	if err != nil {
		return err
	}

	f, err := c.openWordList()
	if err != nil {
		return err
	}
	words, err := wordhash.LoadWords(f)
	f.Close()
	if err != nil {
		return err
	}
	d, err := wordhash.NewDictionary(words, wordhash.WithHasher(h))
	if err != nil {
		return err
	}
	target, err := c.target(d)
	if err != nil {
		return err
	}
	log.Infof("searching %d words for %s digest %x", d.Len(), h.Name, target)

	var opts []solve.Option
	if c.Seed != 0 {
		opts = append(opts, solve.WithSeed(c.Seed))
	}
	if !c.Minimize {
		found, err := wordhash.Find(d, target, opts...)
		if errors.Is(err, solve.ErrInconsistent) {
			fmt.Fprintln(c.out, "no combination of the word list reaches the target")
			return nil
		}
		if err != nil {
			return err
		}
		c.print(0, found)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts = append(opts, solve.WithTrials(c.Trials), solve.WithWorkers(c.Workers))
	seq, err := wordhash.FindMinimal(ctx, d, target, opts...)
	if errors.Is(err, solve.ErrInconsistent) {
		fmt.Fprintln(c.out, "no combination of the word list reaches the target")
		return nil
	}
	if err != nil {
		return err
	}
	for m, err := range seq {
		if errors.Is(err, context.Canceled) {
			log.Infof("interrupted")
			return nil
		}
		if err != nil {
			return err
		}
		c.print(m.Trial, m.Words)
	}

	return nil
}

func (c *wordsCommand) print(trial int, words []string) {
	fmt.Fprintf(c.out, "trial %-5d %2d words: %s\n", trial, len(words), strings.Join(words, " "))
}
