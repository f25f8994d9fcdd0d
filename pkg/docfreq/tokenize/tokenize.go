// Package tokenize splits extracted document text into lowercase word tokens.
package tokenize

import (
	"regexp"
	"strings"
)

// Word characters are Unicode letters, digits and underscore, matching
// runs of them rather than splitting on a delimiter set.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Words lowercases the corpus and returns every word token in order.
// Returns nil for a corpus with no word characters.
func Words(corpus string) []string {
	if corpus == "" {
		return nil
	}
	return wordPattern.FindAllString(strings.ToLower(corpus), -1)
}
