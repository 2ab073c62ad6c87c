package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xltables/pkg/xltables/models"
)

func sampleTables() []models.Table {
	return []models.Table{
		{
			Name:        "REVENUE",
			RowHeadings: []string{"Products"},
			Content:     map[string][]string{"Products": {"50%", "3"}},
			Width:       2,
		},
		{
			Name:        "COSTS",
			RowHeadings: []string{"Rent"},
			Content:     map[string][]string{"Rent": {"10"}},
			Width:       1,
		},
		{
			Name:        "REVENUE",
			RowHeadings: []string{"Other"},
			Content:     map[string][]string{"Other": {"1"}},
			Width:       1,
		},
	}
}

func TestNewKeepsFirstOccurrence(t *testing.T) {
	c, err := New(sampleTables())
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"REVENUE", "COSTS"}, c.Names())

	revenue, ok := c.Table("REVENUE")
	require.True(t, ok)
	assert.Equal(t, []string{"Products"}, revenue.RowHeadings)

	_, ok = c.Table("revenue")
	assert.False(t, ok, "lookups are exact")
}

func TestCacheIsIsolatedFromCallers(t *testing.T) {
	input := sampleTables()
	c, err := New(input)
	require.NoError(t, err)

	input[0].Content["Products"][0] = "changed"
	input[0].RowHeadings[0] = "changed"

	got, _ := c.Table("REVENUE")
	assert.Equal(t, "50%", got.Content["Products"][0])
	assert.Equal(t, "Products", got.RowHeadings[0])

	got.Content["Products"] = nil
	names := c.Names()
	names[0] = "changed"

	again, _ := c.Table("REVENUE")
	assert.Equal(t, []string{"50%", "3"}, again.Content["Products"])
	assert.Equal(t, "REVENUE", c.Names()[0])
}

func TestTablesInInsertionOrder(t *testing.T) {
	c, err := New(sampleTables())
	require.NoError(t, err)

	tables := c.Tables()
	require.Len(t, tables, 2)
	assert.Equal(t, "REVENUE", tables[0].Name)
	assert.Equal(t, "COSTS", tables[1].Name)
}

func TestEmptyCache(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Names())
	assert.Empty(t, c.Tables())
}

func TestStoreSwap(t *testing.T) {
	first, err := New(sampleTables()[:1])
	require.NoError(t, err)
	second, err := New(sampleTables()[1:2])
	require.NoError(t, err)

	s := NewStore(first)
	assert.Same(t, first, s.Load())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := s.Load()
			assert.Equal(t, 1, c.Len())
		}()
	}
	old := s.Swap(second)
	wg.Wait()

	assert.Same(t, first, old)
	assert.Same(t, second, s.Load())
}
