// file: internal/similarity/metric.go
// version: 1.0.0
// guid: f69618eb-3249-4aa7-9f2d-101f1c421134

package similarity

// Metric scores how similar two strings are. Higher is more similar.
// Implementations must be deterministic and free of side effects.
type Metric interface {
	Score(a, b string) float64
}

// MetricFunc adapts a function to Metric.
type MetricFunc func(a, b string) float64

func (f MetricFunc) Score(a, b string) float64 { return f(a, b) }

// Built-in metric names.
const (
	NameLCS           = "lcs"
	NameLevenshtein   = "levenshtein"
	NameSmithWaterman = "smithWaterman"
)

// Suite binds the built-in metrics to a choice of units and gap scorer.
// The zero value uses code points and DefaultGap.
type Suite struct {
	Units Units
	Gap   GapScorer
}

func (s Suite) LCS(a, b string) int {
	if s.Units == CodePoints {
		return LCSOf([]rune(a), []rune(b))
	}
	return LCSOf(s.Units.Split(a), s.Units.Split(b))
}

func (s Suite) Levenshtein(a, b string) float64 {
	if s.Units == CodePoints {
		return normalizedSimilarity(codePointDistance(a, b), s.Units.Len(a), s.Units.Len(b))
	}
	ta, tb := s.Units.Split(a), s.Units.Split(b)
	return normalizedSimilarity(EditDistanceOf(ta, tb), len(ta), len(tb))
}

func (s Suite) SmithWaterman(a, b string) float64 {
	return SmithWatermanOf(s.Units.Split(a), s.Units.Split(b), s.Gap)
}

// Builtins returns the three built-in metrics keyed by their registry names.
func (s Suite) Builtins() map[string]Metric {
	return map[string]Metric{
		NameLCS:           MetricFunc(func(a, b string) float64 { return float64(s.LCS(a, b)) }),
		NameLevenshtein:   MetricFunc(s.Levenshtein),
		NameSmithWaterman: MetricFunc(s.SmithWaterman),
	}
}
