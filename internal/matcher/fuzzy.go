// file: internal/matcher/fuzzy.go
// version: 2.0.0
// guid: a1b2c3d4-e5f6-7890-abcd-ef1234567890

package matcher

import (
	"fmt"
	"time"

	"github.com/jdfalk/spotlight/internal/metrics"
	"github.com/jdfalk/spotlight/internal/similarity"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Result holds a ranked haystack entry.
type Result struct {
	Value string  // original, unfolded haystack entry
	Index int     // index into the original slice
	Score float64 // active metric score, 0 when the needle was empty
}

// Search ranks haystack against needle with the active metric and returns at
// most limit entries, best first. See SearchScored for the full contract.
func (e *Engine) Search(needle string, haystack []string, limit int) ([]string, error) {
	results, err := e.SearchScored(needle, haystack, limit)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Value
	}
	return out, nil
}

// SearchScored scores every haystack entry against needle and returns the
// top limit results sorted by descending score. Equal scores keep their
// haystack order.
//
// A limit of 0 means no limit. An empty needle skips scoring and returns the
// first limit entries in haystack order. The haystack itself is never reordered.
func (e *Engine) SearchScored(needle string, haystack []string, limit int) ([]Result, error) {
	e.mu.RLock()
	metric, name, gen := e.active, e.activeName, e.generation
	ignoreCase, fold := e.ignoreCase, e.fold
	e.mu.RUnlock()

	if metric == nil {
		metrics.IncSearchFailure("no_active_metric")
		return nil, ErrNoActiveMetric
	}
	if limit < 0 {
		metrics.IncSearchFailure("invalid_limit")
		return nil, fmt.Errorf("%w: negative limit %d", ErrInvalidInput, limit)
	}
	if err := validateInputs(needle, haystack); err != nil {
		metrics.IncSearchFailure("invalid_input")
		return nil, err
	}
	if limit == 0 || limit > len(haystack) {
		limit = len(haystack)
	}
	metrics.IncSearch(name)

	if needle == "" {
		results := make([]Result, limit)
		for i := range results {
			results[i] = Result{Value: haystack[i], Index: i}
		}
		return results, nil
	}

	start := time.Now()
	if ignoreCase {
		if fold == nil {
			fold = cases.Lower(language.Und).String
		}
		needle = fold(needle)
	}

	results := make([]Result, len(haystack))
	for i, candidate := range haystack {
		target := candidate
		if ignoreCase {
			target = fold(candidate)
		}
		results[i] = Result{Value: candidate, Index: i, Score: e.score(metric, gen, needle, target)}
	}
	sortByScore(results)

	metrics.AddScored(name, len(haystack))
	metrics.ObserveSearchDuration(name, time.Since(start))
	return results[:limit], nil
}

func (e *Engine) score(m similarity.Metric, gen uint64, needle, candidate string) float64 {
	if e.scores == nil {
		return m.Score(needle, candidate)
	}
	key := scoreKey{generation: gen, needle: needle, candidate: candidate}
	if v, ok := e.scores.Get(key); ok {
		metrics.IncScoreCacheHit()
		return v
	}
	metrics.IncScoreCacheMiss()
	v := m.Score(needle, candidate)
	e.scores.Set(key, v)
	return v
}

func validateInputs(needle string, haystack []string) error {
	if err := similarity.Validate(needle); err != nil {
		return fmt.Errorf("needle: %w", err)
	}
	for i, candidate := range haystack {
		if err := similarity.Validate(candidate); err != nil {
			return fmt.Errorf("haystack[%d]: %w", i, err)
		}
	}
	return nil
}
