package quiz

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// closeDistance is the maximum levenshtein distance (after normalization)
// at which a wrong text answer is still flagged as a near miss.
const closeDistance = 2

// Normalize prepares free text for comparison: trimmed, case-folded, and
// with internal whitespace runs collapsed to single spaces.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// textEqual reports whether two strings match after normalization.
func textEqual(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// nearMiss reports whether a wrong text answer was close to the canonical
// one. Presentation-only: it never upgrades a verdict to correct.
func nearMiss(got, want string) bool {
	ng, nw := Normalize(got), Normalize(want)
	if ng == nw || ng == "" {
		return false
	}
	return levenshtein.ComputeDistance(ng, nw) <= closeDistance
}
