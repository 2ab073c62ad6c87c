package parser

import (
	"strings"
	"unicode"

	"github.com/ukaji3/xltables/pkg/xltables/fuzzy"
)

// Classifier decides which cells open a table and what the table is called.
type Classifier struct {
	// Vocabulary lists the known table names.
	Vocabulary []string
	// Resolver scores cells against Vocabulary.
	Resolver *fuzzy.Resolver
}

// LooksLikeHeading reports whether cell can be a table heading: either
// upper-case text, or a close match for a known table name.
func (c Classifier) LooksLikeHeading(cell string) bool {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return false
	}
	if IsUpperHeading(cell) {
		return true
	}
	return c.Resolver != nil && c.Resolver.Accepts(cell, c.Vocabulary)
}

// Canonicalize maps heading text to its canonical table name.
func (c Classifier) Canonicalize(heading string) string {
	if c.Resolver == nil {
		return strings.TrimSpace(heading)
	}
	return c.Resolver.Canonicalize(heading, c.Vocabulary)
}

// IsUpperHeading reports whether s has at least one upper-case letter and no
// lower-case letters. Digits, spaces and punctuation are allowed.
func IsUpperHeading(s string) bool {
	hasUpper := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			return false
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}
	return hasUpper
}

// RowHasNumericValue reports whether any non-empty cell in row parses as a number.
func RowHasNumericValue(row []string) bool {
	for _, cell := range row {
		if _, ok := ParseNumber(cell); ok {
			return true
		}
	}
	return false
}

// IsAlphabetic reports whether text contains at least one letter.
func IsAlphabetic(text string) bool {
	return strings.IndexFunc(text, unicode.IsLetter) >= 0
}
