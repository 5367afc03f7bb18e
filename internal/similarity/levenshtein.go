// file: internal/similarity/levenshtein.go
// version: 1.0.0
// guid: 305bdac1-1b4f-4bd5-b946-fa946281dac2

package similarity

import "github.com/agnivade/levenshtein"

// EditDistanceOf computes the unit-cost edit distance between a and b.
func EditDistanceOf[T comparable](a, b []T) int {
	m, n := len(a), len(b)
	d := make([][]int, m+1)
	for i := range d {
		d[i] = make([]int, n+1)
		d[i][0] = i
	}
	for j := 0; j <= n; j++ {
		d[0][j] = j
	}

	for j := 1; j <= n; j++ {
		for i := 1; i <= m; i++ {
			if a[i-1] == b[j-1] {
				d[i][j] = d[i-1][j-1]
			} else {
				d[i][j] = 1 + min(d[i-1][j], d[i][j-1], d[i-1][j-1])
			}
		}
	}
	return d[m][n]
}

// Levenshtein returns 1 - distance/max(len(a), len(b)) in code points.
// Two empty strings are identical and score 1.
func Levenshtein(a, b string) float64 {
	return Suite{}.Levenshtein(a, b)
}

func normalizedSimilarity(distance, m, n int) float64 {
	longest := max(m, n)
	if longest == 0 {
		return 1
	}
	return 1 - float64(distance)/float64(longest)
}

// codePointDistance delegates to agnivade/levenshtein, which works on runes
// and yields the same distance as EditDistanceOf over []rune.
func codePointDistance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}
