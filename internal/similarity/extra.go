// file: internal/similarity/extra.go
// version: 1.0.0
// guid: 9a86d295-2da6-4359-9444-69b3873d4dce

package similarity

import (
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
	sahilm "github.com/sahilm/fuzzy"
)

// Names of the optional metrics. They are not registered by default.
const (
	NameSubsequence = "subsequence"
	NameFuzzyFind   = "fuzzyFind"
)

// Subsequence scores b by how much of it is left over after a is found in it
// as a case-insensitive, in-order subsequence: 1 - distance/max(len(a), len(b)).
// It returns 0 when a is not a subsequence of b.
func Subsequence(a, b string) float64 {
	d := fuzzy.RankMatchFold(a, b)
	if d < 0 {
		return 0
	}
	return normalizedSimilarity(d, utf8.RuneCountInString(a), utf8.RuneCountInString(b))
}

// FuzzyFind returns the editor-style fuzzy finder score of pattern a against b.
// Consecutive and word-boundary matches score higher. A non-match scores 0 and
// an actual match can score below 0.
func FuzzyFind(a, b string) float64 {
	matches := sahilm.Find(a, []string{b})
	if len(matches) == 0 {
		return 0
	}
	return float64(matches[0].Score)
}

// Extras returns the optional metrics keyed by registry name.
func Extras() map[string]Metric {
	return map[string]Metric{
		NameSubsequence: MetricFunc(Subsequence),
		NameFuzzyFind:   MetricFunc(FuzzyFind),
	}
}
