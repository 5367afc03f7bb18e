// file: internal/similarity/units.go
// version: 1.0.0
// guid: 3aeae6df-e2d4-4606-bfb8-fb919af51341

package similarity

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// ErrInvalidInput is returned when a metric argument is not usable text.
var ErrInvalidInput = errors.New("invalid input")

// Units selects what a metric treats as one element of a string.
type Units int

const (
	// CodePoints compares strings rune by rune.
	CodePoints Units = iota
	// Graphemes compares user-perceived characters (extended grapheme clusters).
	Graphemes
)

func (u Units) String() string {
	switch u {
	case CodePoints:
		return "codepoints"
	case Graphemes:
		return "graphemes"
	default:
		return "unknown"
	}
}

// ParseUnits maps a config value to Units. Empty selects CodePoints.
func ParseUnits(s string) (Units, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "codepoints", "runes":
		return CodePoints, nil
	case "graphemes":
		return Graphemes, nil
	default:
		return CodePoints, fmt.Errorf("%w: unknown units %q", ErrInvalidInput, s)
	}
}

// Split breaks s into its units.
func (u Units) Split(s string) []string {
	if u == Graphemes {
		out := make([]string, 0, uniseg.GraphemeClusterCount(s))
		g := uniseg.NewGraphemes(s)
		for g.Next() {
			out = append(out, g.Str())
		}
		return out
	}
	out := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Len counts the units in s.
func (u Units) Len(s string) int {
	if u == Graphemes {
		return uniseg.GraphemeClusterCount(s)
	}
	return utf8.RuneCountInString(s)
}

// Validate reports ErrInvalidInput for any value that is not valid UTF-8.
func Validate(values ...string) error {
	for i, v := range values {
		if !utf8.ValidString(v) {
			return fmt.Errorf("%w: argument %d is not valid UTF-8", ErrInvalidInput, i)
		}
	}
	return nil
}
