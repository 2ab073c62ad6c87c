package fuzzy

import (
	"strings"

	"golang.org/x/text/cases"
)

// Resolver maps free-form names onto a set of known names.
type Resolver struct {
	Matcher   Matcher
	Threshold int
}

// NewResolver returns a Resolver using WRatio and DefaultThreshold.
func NewResolver() *Resolver {
	return &Resolver{Matcher: WRatio{}, Threshold: DefaultThreshold}
}

// Canonicalize returns the vocabulary entry matching name above the
// threshold, or the trimmed name itself when nothing qualifies.
func (r *Resolver) Canonicalize(name string, vocabulary []string) string {
	name = strings.TrimSpace(name)
	if len(vocabulary) == 0 {
		return name
	}
	best, score := r.Matcher.Match(name, vocabulary)
	if score > r.Threshold {
		return best
	}
	return name
}

// Accepts reports whether name matches any vocabulary entry above the threshold.
func (r *Resolver) Accepts(name string, vocabulary []string) bool {
	if len(vocabulary) == 0 {
		return false
	}
	_, score := r.Matcher.Match(name, vocabulary)
	return score > r.Threshold
}

// Resolve returns every entry of names that matches query. Case-insensitive
// exact matches come first, followed by fuzzy matches above the threshold,
// each group in the order of names.
func (r *Resolver) Resolve(query string, names []string) []string {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))

	var exact, fuzzy []string
	for _, name := range names {
		if fold.String(name) == q {
			exact = append(exact, name)
			continue
		}
		if _, score := r.Matcher.Match(query, []string{name}); score > r.Threshold {
			fuzzy = append(fuzzy, name)
		}
	}
	return append(exact, fuzzy...)
}
