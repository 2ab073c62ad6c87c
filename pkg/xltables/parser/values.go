package parser

import (
	"strconv"
	"strings"
)

// NormalizeValue trims a data cell and rewrites fractions strictly between
// 0 and 1 as percentages: "0.5" becomes "50%", "0.075" becomes "7.5%".
// Anything else is returned trimmed but otherwise unchanged.
func NormalizeValue(s string) string {
	s = strings.TrimSpace(s)
	f, ok := ParseNumber(s)
	if !ok || !(f > 0 && f < 1) {
		return s
	}
	return FormatPercent(f * 100)
}

// FormatPercent renders p with at most two decimals, dropping trailing zeros
// and a trailing decimal point, followed by "%".
func FormatPercent(p float64) string {
	out := strconv.FormatFloat(p, 'f', 2, 64)
	if strings.Contains(out, ".") {
		out = strings.TrimRight(out, "0")
		out = strings.TrimSuffix(out, ".")
	}
	return out + "%"
}
