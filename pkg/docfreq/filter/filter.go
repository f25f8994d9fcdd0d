// Package filter removes excluded, too-short and off-language words
// from the tokenized word stream.
package filter

import (
	"strings"
	"unicode/utf8"
)

// Words shorter than this never survive filtering.
const minWordLength = 2

// Exclusion is a set of lowercase words removed from the analysis
// regardless of frequency or language. Immutable once built and shared
// read-only across filter workers.
type Exclusion map[string]struct{}

// NewExclusion lowercases the given words into an exclusion set.
func NewExclusion(words []string) Exclusion {
	set := make(Exclusion, len(words))
	for _, w := range words {
		w = strings.TrimSpace(strings.ToLower(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

// Contains reports whether the word is excluded. The caller has already
// normalized case.
func (e Exclusion) Contains(word string) bool {
	_, ok := e[word]
	return ok
}

// Classifier yields a best-effort ISO 639-1 code for a single word.
type Classifier interface {
	Classify(word string) (code string, ok bool)
}

// Chunk filters one contiguous chunk of words, preserving relative
// order. A word survives when it is not excluded, is at least two runes
// long and, if targets is non-empty, classifies into one of the target
// languages. Pure aside from classifier cache population.
func Chunk(words []string, excluded Exclusion, targets []string, classifier Classifier) []string {
	var targetSet map[string]struct{}
	if len(targets) > 0 {
		targetSet = make(map[string]struct{}, len(targets))
		for _, t := range targets {
			targetSet[strings.ToLower(t)] = struct{}{}
		}
	}

	kept := make([]string, 0, len(words))
	for _, word := range words {
		if excluded.Contains(word) || utf8.RuneCountInString(word) < minWordLength {
			continue
		}
		if targetSet != nil {
			code, ok := classifier.Classify(word)
			if !ok {
				continue
			}
			if _, ok := targetSet[code]; !ok {
				continue
			}
		}
		kept = append(kept, word)
	}
	return kept
}
