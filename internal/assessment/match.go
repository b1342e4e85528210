package assessment

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes characters and drops combining marks, so that
// "café" and "cafe" normalize identically.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

const punctuation = `.,;:!?'"()[]{}`

// Normalize lowercases, removes diacritics and punctuation, and collapses
// whitespace. Both sides of a written-answer comparison go through it.
func Normalize(s string) string {
	s = strings.ToLower(s)
	if stripped, _, err := transform.String(stripMarks, s); err == nil {
		s = stripped
	}
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// MatchAnswer reports whether a typed answer is close enough to the
// expected one. After normalization the strings must be identical, or
// within an edit distance of 20% of the expected answer's length
// (at least 1), which forgives minor typos.
func MatchAnswer(given, want string) bool {
	g := Normalize(given)
	w := Normalize(want)
	if g == w {
		return true
	}
	threshold := max(1, len([]rune(w))/5)
	return levenshtein(g, w) <= threshold
}

// levenshtein computes the classic edit distance with unit costs for
// substitution, insertion and deletion.
func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j-1]+cost, curr[j-1]+1, prev[j]+1)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
