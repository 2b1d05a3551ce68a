// SPDX-License-Identifier: MIT

// Command gf2solve solves XOR-subset systems over GF(2).
//
// Commands:
//
//	random  generate a random system, print every elimination stage and the solution
//	words   find dictionary words whose digests XOR to the digest of a phrase
//
// Logs are written to stderr; use -d to raise their level.
package main

import (
	"errors"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
)

// globalOptions apply to every command.
type globalOptions struct {
	DebugLevel string `short:"d" long:"debuglevel" default:"info" description:"logging level {trace, debug, info, warn, error, critical} or SUBSYS=level pairs"`
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

func newParser(cfg *globalOptions) (*flags.Parser, error) {
	parser := flags.NewParser(cfg, flags.Default)
	if _, err := parser.AddCommand("random", "solve a random system",
		"Generate COUNT random vectors and a random target of LEN bits, then print the "+
			"augmented matrix, its echelon and reduced forms, and a solution subset.",
		&randomCommand{Len: 8, Count: 10}); err != nil {
		return nil, err
	}
	if _, err := parser.AddCommand("words", "find words whose digests XOR to a phrase digest",
		"Hash every word of a word list and search for a subset whose digests XOR to the "+
			"digest of the target phrase (or of an explicit hex digest).",
		&wordsCommand{Hash: "blake256", Workers: 1}); err != nil {
		return nil, err
	}
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
			return err
		}
		if cmd == nil {
			return nil
		}
		return cmd.Execute(args)
	}

	return parser, nil
}

func main() {
	var cfg globalOptions
	parser, err := newParser(&cfg)
	if err != nil {
		fatalf("%v\n", err)
	}
	if _, err = parser.Parse(); err != nil {
		var e *flags.Error
		if errors.As(err, &e) {
			if e.Type == flags.ErrHelp {
				os.Exit(0)
			}
			// flags.Default already printed the parse error.
			os.Exit(2)
		}
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
