// Package query answers table and row lookups over a cache of extracted tables.
package query

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ukaji3/xltables/pkg/xltables/cache"
	"github.com/ukaji3/xltables/pkg/xltables/fuzzy"
	"github.com/ukaji3/xltables/pkg/xltables/models"
	"github.com/ukaji3/xltables/pkg/xltables/parser"
	"golang.org/x/text/cases"
)

// ErrTableNotFound indicates no cached table matches the requested name.
var ErrTableNotFound = errors.New("table not found")

// ErrRowNotFound indicates the table has no row with the requested label.
var ErrRowNotFound = errors.New("row not found in the specified table")

// TableDetails lists the rows of a table.
type TableDetails struct {
	TableName string   `json:"table_name"`
	RowNames  []string `json:"row_names"`
}

// RowSum is the numeric total of one table row.
type RowSum struct {
	TableName string  `json:"table_name"`
	RowName   string  `json:"row_name"`
	Sum       float64 `json:"sum"`
}

// Service serves read-only queries. Each call reads the current cache from
// the store once, so it never observes a reload half way through.
type Service struct {
	store    *cache.Store
	resolver *fuzzy.Resolver
}

// NewService returns a Service over store. A nil resolver uses fuzzy.NewResolver.
func NewService(store *cache.Store, resolver *fuzzy.Resolver) *Service {
	if resolver == nil {
		resolver = fuzzy.NewResolver()
	}
	return &Service{store: store, resolver: resolver}
}

// ListTables returns all table names in cache insertion order.
func (s *Service) ListTables() []string {
	return s.store.Load().Names()
}

// GetTableDetails returns the canonical name and row labels of the table
// best matching name.
func (s *Service) GetTableDetails(name string) (TableDetails, error) {
	t, err := s.lookup(s.store.Load(), name)
	if err != nil {
		return TableDetails{}, err
	}
	return TableDetails{TableName: t.Name, RowNames: t.RowHeadings}, nil
}

// GetTable returns a copy of the table best matching name.
func (s *Service) GetTable(name string) (models.Table, error) {
	return s.lookup(s.store.Load(), name)
}

// RowSum adds up the values of one row. The row label is matched exactly,
// ignoring case and surrounding space.
func (s *Service) RowSum(tableName, rowName string) (RowSum, error) {
	t, err := s.lookup(s.store.Load(), tableName)
	if err != nil {
		return RowSum{}, err
	}

	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(rowName))
	for _, heading := range t.RowHeadings {
		if fold.String(strings.TrimSpace(heading)) != want {
			continue
		}
		return RowSum{
			TableName: t.Name,
			RowName:   heading,
			Sum:       SumValues(t.Content[heading]),
		}, nil
	}

	return RowSum{}, fmt.Errorf("%w: %q in %q", ErrRowNotFound, rowName, t.Name)
}

// lookup resolves name against the cached names and returns the first match.
func (s *Service) lookup(c *cache.Cache, name string) (models.Table, error) {
	matches := s.resolver.Resolve(name, c.Names())
	if len(matches) == 0 {
		return models.Table{}, fmt.Errorf("%w: %q", ErrTableNotFound, name)
	}
	t, ok := c.Table(matches[0])
	if !ok {
		return models.Table{}, fmt.Errorf("%w: %q", ErrTableNotFound, name)
	}
	return t, nil
}

// SumValues adds values as numbers. A value ending in "%" counts as its
// numeric prefix, so "50%" adds 50. Values that do not parse, or are not
// finite, add nothing.
func SumValues(values []string) float64 {
	total := 0.0
	for _, v := range values {
		v = strings.TrimSpace(v)
		if strings.HasSuffix(v, "%") {
			v = strings.TrimRight(v, "%")
		}
		f, ok := parser.ParseNumber(v)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		total += f
	}
	return total
}
