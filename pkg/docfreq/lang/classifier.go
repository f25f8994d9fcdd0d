// Package lang provides best-effort per-word language classification
// with memoized results.
package lang

import (
	"strings"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pemistahl/lingua-go"
)

// Words shorter than this are too short for reliable detection and are
// rejected without invoking the detector.
const minDetectableLength = 3

// cacheSize bounds the memoization cache. Distinct words in a corpus
// rarely approach this, so in practice every word is cached for the
// whole run.
const cacheSize = 50000

// Detector is the underlying language-detection capability. It returns
// a lowercase ISO 639-1 code, or ok=false when no confident guess
// exists. Implementations must be deterministic: the same word always
// yields the same answer.
type Detector interface {
	Detect(word string) (code string, ok bool)
}

// LinguaDetector detects languages with the lingua library, which is
// deterministic by construction (statistical models, no RNG).
type LinguaDetector struct {
	detector lingua.LanguageDetector
}

// NewLinguaDetector builds a detector over all spoken languages.
// Language models are loaded lazily on first use.
func NewLinguaDetector() *LinguaDetector {
	return &LinguaDetector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromAllSpokenLanguages().
			Build(),
	}
}

// Detect implements Detector.
func (d *LinguaDetector) Detect(word string) (string, bool) {
	language, ok := d.detector.DetectLanguageOf(word)
	if !ok {
		return "", false
	}
	return strings.ToLower(language.IsoCode639_1().String()), true
}

// Classifier memoizes per-word classification results for the lifetime
// of the process. Safe for concurrent use.
type Classifier struct {
	detector Detector
	// cached value "" means the detector had no answer for the word
	cache *lru.Cache[string, string]
}

// NewClassifier wraps a detector with a memoization cache.
func NewClassifier(d Detector) *Classifier {
	cache, _ := lru.New[string, string](cacheSize)
	return &Classifier{detector: d, cache: cache}
}

// Classify returns the ISO 639-1 code for a word, or ok=false when the
// word is too short or the detector has no confident answer. Detector
// failures are swallowed, never propagated.
func (c *Classifier) Classify(word string) (string, bool) {
	if utf8.RuneCountInString(word) < minDetectableLength {
		return "", false
	}

	if code, ok := c.cache.Get(word); ok {
		return code, code != ""
	}

	code, ok := c.detector.Detect(word)
	if !ok {
		code = ""
	}
	c.cache.Add(word, code)

	return code, code != ""
}
