// SPDX-License-Identifier: MIT

package wordhash

import (
	"bufio"
	"io"
	"strings"
)

// LoadWords reads one word per line from r. Blank lines and lines starting
// with '#' are skipped, surrounding whitespace is trimmed, and repeated words
// are kept only once (a duplicate would be a dependent column that can never
// be a pivot). Order of first appearance is preserved.
func LoadWords(r io.Reader) ([]string, error) {
	var (
		words []string
		seen  = make(map[string]struct{})
		dups  int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if _, ok := seen[w]; ok {
			dups++
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, wordErrorf(opLoad, err)
	}
	if dups > 0 {
		log.Debugf("skipped %d duplicate words", dups)
	}
	log.Debugf("loaded %d words", len(words))

	return words, nil
}
