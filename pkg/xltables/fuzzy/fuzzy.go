// Package fuzzy scores string similarity and resolves names against a vocabulary.
package fuzzy

import (
	"strings"

	fuzzywuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// DefaultThreshold is the score a match must exceed to be accepted.
const DefaultThreshold = 85

// Matcher finds the corpus entry most similar to a candidate.
// Scores range from 0 to 100. An empty corpus yields ("", 0).
type Matcher interface {
	Match(candidate string, corpus []string) (best string, score int)
}

// WRatio is a Matcher using fuzzywuzzy's weighted ratio: the best of the
// plain, partial and token-based ratios, scaled by how different the two
// lengths are. Non-ASCII letters are kept.
type WRatio struct{}

// Match returns the corpus entry with the highest Score. Ties go to the
// earliest entry.
func (WRatio) Match(candidate string, corpus []string) (string, int) {
	if len(corpus) == 0 || blank(candidate) {
		return "", 0
	}
	best, err := fuzzywuzzy.ExtractOne(candidate, corpus, Score)
	if err != nil {
		return "", 0
	}
	return best.Match, best.Score
}

// Score returns the weighted similarity of a and b in [0, 100].
// Strings without letters or digits score 0.
func Score(a, b string) int {
	if blank(a) || blank(b) {
		return 0
	}
	return fuzzywuzzy.UWRatio(a, b)
}

// blank reports whether s has nothing left after cleansing.
func blank(s string) bool {
	return strings.TrimSpace(fuzzywuzzy.Cleanse(s, false)) == ""
}
