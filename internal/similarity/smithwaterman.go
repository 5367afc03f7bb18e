// file: internal/similarity/smithwaterman.go
// version: 1.0.0
// guid: a90ec25d-dff0-44c8-8d69-5d79d28ba8a6

package similarity

// GapMarker stands in for the missing side of an insertion or deletion.
const GapMarker = "-"

// GapScorer scores the steps of a Smith-Waterman alignment.
type GapScorer interface {
	// Substitution scores a diagonal step.
	Substitution(match bool) float64
	// Indel scores an insertion or deletion; exactly one argument is GapMarker.
	Indel(a, b string) float64
}

// GapFuncs adapts plain functions to GapScorer. A nil field falls back to
// DefaultGap for that step.
type GapFuncs struct {
	Match func(match bool) float64
	Gap   func(a, b string) float64
}

func (g GapFuncs) Substitution(match bool) float64 {
	if g.Match == nil {
		return DefaultGap.Substitution(match)
	}
	return g.Match(match)
}

func (g GapFuncs) Indel(a, b string) float64 {
	if g.Gap == nil {
		return DefaultGap.Indel(a, b)
	}
	return g.Gap(a, b)
}

type defaultGap struct{}

func (defaultGap) Substitution(match bool) float64 {
	if match {
		return 2
	}
	return -1
}

func (defaultGap) Indel(string, string) float64 { return -1 }

// DefaultGap scores a match +2, a mismatch -1 and any gap -1.
var DefaultGap GapScorer = defaultGap{}

// SmithWatermanOf fills the local alignment table for a and b and returns the
// bottom-right cell. The table maximum is intentionally not reported.
func SmithWatermanOf(a, b []string, gap GapScorer) float64 {
	if gap == nil {
		gap = DefaultGap
	}
	m, n := len(a), len(b)
	h := make([][]float64, m+1)
	for i := range h {
		h[i] = make([]float64, n+1)
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			diag := h[i-1][j-1] + gap.Substitution(a[i-1] == b[j-1])
			up := h[i-1][j] + gap.Indel(a[i-1], GapMarker)
			left := h[i][j-1] + gap.Indel(GapMarker, b[j-1])
			h[i][j] = max(0, diag, up, left)
		}
	}
	return h[m][n]
}

// SmithWaterman scores a against b in code points. A nil gap uses DefaultGap.
func SmithWaterman(a, b string, gap GapScorer) float64 {
	return Suite{Gap: gap}.SmithWaterman(a, b)
}
