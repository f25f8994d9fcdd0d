// Package freq aggregates word frequencies and applies post-hoc
// frequency filters.
package freq

// Count tallies word occurrences into a frequency map.
func Count(words []string) map[string]int {
	counts := make(map[string]int, len(words)/2+1)
	for _, w := range words {
		counts[w]++
	}
	return counts
}

type kind int

const (
	kindNone kind = iota
	kindRange
	kindExact
)

// Spec selects which frequency filter applies to an aggregated map.
// Exactly one variant is active; the zero value is the pass-through
// filter.
type Spec struct {
	k      kind
	min    int
	max    int
	hasMax bool
	exact  map[int]struct{}
}

// None returns the pass-through filter.
func None() Spec {
	return Spec{}
}

// Range keeps entries whose count lies in [min, max], both inclusive.
func Range(min, max int) Spec {
	return Spec{k: kindRange, min: min, max: max, hasMax: true}
}

// RangeFrom keeps entries whose count is at least min, unbounded above.
func RangeFrom(min int) Spec {
	return Spec{k: kindRange, min: min}
}

// Exact keeps entries whose count equals one of the given values.
// Duplicate values are collapsed.
func Exact(values []int) Spec {
	set := make(map[int]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return Spec{k: kindExact, exact: set}
}

// IsNone reports whether the spec is the pass-through filter.
func (s Spec) IsNone() bool {
	return s.k == kindNone
}

// Apply filters a frequency map according to the spec. The pass-through
// variant returns the input map unchanged.
func (s Spec) Apply(counts map[string]int) map[string]int {
	switch s.k {
	case kindRange:
		kept := make(map[string]int)
		for word, count := range counts {
			if count < s.min {
				continue
			}
			if s.hasMax && count > s.max {
				continue
			}
			kept[word] = count
		}
		return kept
	case kindExact:
		kept := make(map[string]int)
		for word, count := range counts {
			if _, ok := s.exact[count]; ok {
				kept[word] = count
			}
		}
		return kept
	default:
		return counts
	}
}
