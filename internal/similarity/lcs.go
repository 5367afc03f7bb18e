// file: internal/similarity/lcs.go
// version: 1.0.0
// guid: c73ce17b-a43f-4c5a-a23d-43710d0fefce

package similarity

// LCSOf returns the length of the longest common subsequence of a and b.
func LCSOf[T comparable](a, b []T) int {
	m, n := len(a), len(b)
	c := make([][]int, m+1)
	for i := range c {
		c[i] = make([]int, n+1)
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				c[i][j] = c[i-1][j-1] + 1
			} else {
				c[i][j] = max(c[i][j-1], c[i-1][j])
			}
		}
	}
	return c[m][n]
}

// LCS returns the longest common subsequence length of a and b in code points.
func LCS(a, b string) int {
	return Suite{}.LCS(a, b)
}
