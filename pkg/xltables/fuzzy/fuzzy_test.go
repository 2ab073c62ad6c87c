package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"revenue", "REVENUE", 100},
		{"Revenue Summary", "Summary Revenue", 95},
		{"Operating Expnses", "OPERATING EXPENSES", 97},
		{"Total revenue by region", "REVENUE", 90},
		{"", "REVENUE", 0},
		{"---", "REVENUE", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Score(tt.a, tt.b), "Score(%q, %q)", tt.a, tt.b)
	}
}

func TestScoreLengthRatioScale(t *testing.T) {
	// 40 runes against 5: length ratio exactly 8 keeps the 0.9 partial scale.
	assert.Equal(t, 90, Score("total", "total operating expenditure for the year"))
	// 41 runes against 5: above 8 the partial scale drops to 0.6.
	assert.Equal(t, 60, Score("total", "total operating expenditures for the year"))
}

func TestScoreBelowThreshold(t *testing.T) {
	assert.LessOrEqual(t, Score("profit", "REVENUE"), DefaultThreshold)
	assert.LessOrEqual(t, Score("Cash", "BALANCE SHEET"), DefaultThreshold)
}

func TestWRatioMatch(t *testing.T) {
	m := WRatio{}

	best, score := m.Match("REVENUE", nil)
	assert.Equal(t, "", best)
	assert.Equal(t, 0, score)

	best, score = m.Match("revenue", []string{"COSTS", "REVENUE", "Revenue"})
	assert.Equal(t, "REVENUE", best, "ties resolve to the earliest entry")
	assert.Equal(t, 100, score)
}

func TestResolverCanonicalize(t *testing.T) {
	r := NewResolver()
	vocab := []string{"SUMMARY REVENUE", "OPERATING EXPENSES"}

	assert.Equal(t, "SUMMARY REVENUE", r.Canonicalize(" Revenue Summary ", vocab))
	assert.Equal(t, "OPERATING EXPENSES", r.Canonicalize("Operating Expnses", vocab))
	assert.Equal(t, "Cash", r.Canonicalize("Cash", vocab))
	assert.Equal(t, "Cash", r.Canonicalize("  Cash ", nil))
}

func TestResolverAccepts(t *testing.T) {
	r := NewResolver()
	assert.True(t, r.Accepts("Operating Expnses", []string{"OPERATING EXPENSES"}))
	assert.False(t, r.Accepts("profit", []string{"REVENUE"}))
	assert.False(t, r.Accepts("REVENUE", nil))
}

func TestResolverResolve(t *testing.T) {
	r := NewResolver()

	assert.Equal(t, []string{"REVENUE"}, r.Resolve("revenue", []string{"COSTS", "REVENUE"}))
	assert.Equal(t,
		[]string{"Operating Expenses", "OPERATING EXPENSE"},
		r.Resolve("operating expenses", []string{"OPERATING EXPENSE", "Operating Expenses"}),
		"exact matches come before fuzzy ones")
	assert.Empty(t, r.Resolve("profit", []string{"REVENUE", "COSTS"}))
}
