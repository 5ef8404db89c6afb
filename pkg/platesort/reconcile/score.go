package reconcile

import (
	"math"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// matchThreshold is the minimum score for a column to qualify for a field.
const matchThreshold = 70

// ambiguityThreshold is the runner-up score at which a warning is emitted.
const ambiguityThreshold = 85

// Score rates how well a candidate column name matches a search term on a
// 0-100 scale. Inputs are expected to be normalized already.
//
// A candidate containing the term as a substring scores 100. Otherwise a
// window the length of the shorter string is slid across the longer one and
// the best per-window sequence ratio wins; when the term is longer than the
// candidate a single whole-string ratio is used.
func Score(term, candidate string) int {
	if term == "" || candidate == "" {
		return 0
	}
	if strings.Contains(candidate, term) {
		return 100
	}

	t := []rune(term)
	c := []rune(candidate)
	if len(t) >= len(c) {
		return round100(ratio(term, candidate))
	}

	best := 0.0
	for i := 0; i+len(t) <= len(c); i++ {
		if r := ratio(term, string(c[i:i+len(t)])); r > best {
			best = r
		}
	}
	return round100(best)
}

// ratio is difflib's SequenceMatcher ratio over individual characters.
func ratio(a, b string) float64 {
	return difflib.NewMatcher(splitChars(a), splitChars(b)).Ratio()
}

func splitChars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func round100(r float64) int {
	return int(math.Round(r * 100))
}
