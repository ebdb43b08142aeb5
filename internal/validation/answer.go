package validation

import (
	"strings"
	"unicode"
)

// similarityThreshold is the largest edit distance, relative to the longer
// answer, that still counts as a match.
const similarityThreshold = 0.2

var articles = []string{"the ", "a ", "an "}

// NormalizeAnswer lowercases an answer, drops a leading article and
// punctuation, and collapses whitespace.
func NormalizeAnswer(answer string) string {
	answer = strings.ToLower(strings.TrimSpace(answer))
	for _, article := range articles {
		if strings.HasPrefix(answer, article) {
			answer = strings.TrimPrefix(answer, article)
			break
		}
	}

	stripped := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return -1
		}
		return r
	}, answer)

	return strings.Join(strings.Fields(stripped), " ")
}

// IsSimilarAnswer reports whether guess is close enough to answer
func IsSimilarAnswer(guess, answer string) bool {
	g := NormalizeAnswer(guess)
	a := NormalizeAnswer(answer)

	if g == "" || a == "" {
		return g == a
	}
	if g == a {
		return true
	}

	// A guess that contains the full answer ("leonardo da vinci" for
	// "da vinci") is accepted.
	if strings.Contains(g, a) {
		return true
	}

	gr, ar := []rune(g), []rune(a)
	distance := levenshtein(gr, ar)
	return float64(distance)/float64(max(len(gr), len(ar))) < similarityThreshold
}

func levenshtein(s, t []rune) int {
	if len(s) == 0 {
		return len(t)
	}
	if len(t) == 0 {
		return len(s)
	}

	prev := make([]int, len(t)+1)
	curr := make([]int, len(t)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s); i++ {
		curr[0] = i
		for j := 1; j <= len(t); j++ {
			cost := 1
			if s[i-1] == t[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(t)]
}
