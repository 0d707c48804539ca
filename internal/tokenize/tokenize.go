// Package tokenize splits text into normalized words.
package tokenize

import (
	"bufio"
	"io"
	"iter"
	"regexp"
	"strings"
)

// word matches a run of letters, optionally joined to
// another run by a single apostrophe ("don't", "o'clock").
var word = regexp.MustCompile(`[A-Za-z]+(?:'[A-Za-z]+)?`)

// Scanner yields lowercase words from a reader.
// Digits, punctuation, and hyphens separate words.
type Scanner struct {
	lines *bufio.Scanner
}

// maxLine bounds a single line of input.
const maxLine = 1 << 20

func NewScanner(r io.Reader) *Scanner {
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLine)
	return &Scanner{lines: lines}
}

// Words returns an iterator over the remaining words of the input.
// The input is consumed as it is iterated, so Words is single use.
// Check [Scanner.Err] after iteration ends.
func (s *Scanner) Words() iter.Seq[string] {
	return func(yield func(string) bool) {
		for s.lines.Scan() {
			for _, match := range word.FindAllString(s.lines.Text(), -1) {
				if !yield(strings.ToLower(match)) {
					return
				}
			}
		}
	}
}

// Err returns the first non-EOF error encountered while reading.
func (s *Scanner) Err() error { return s.lines.Err() }
