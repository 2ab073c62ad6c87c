// Package cache holds extracted tables for read-only querying.
package cache

import (
	"sync/atomic"

	"github.com/tiendc/go-deepcopy"
	"github.com/ukaji3/xltables/pkg/xltables/models"
)

// Cache maps canonical table names to tables. It is immutable once built and
// safe for concurrent readers.
type Cache struct {
	names  []string
	tables map[string]models.Table
}

// New builds a Cache from tables in scan order. When names repeat, the first
// table wins. The input is copied, so later changes to it are not visible.
func New(tables []models.Table) (*Cache, error) {
	var owned []models.Table
	if err := deepcopy.Copy(&owned, &tables); err != nil {
		return nil, err
	}

	c := &Cache{tables: make(map[string]models.Table, len(owned))}
	for _, t := range owned {
		if _, exists := c.tables[t.Name]; exists {
			continue
		}
		c.names = append(c.names, t.Name)
		c.tables[t.Name] = t
	}
	return c, nil
}

// Len returns the number of cached tables.
func (c *Cache) Len() int {
	return len(c.names)
}

// Names returns the table names in insertion order.
func (c *Cache) Names() []string {
	return append([]string(nil), c.names...)
}

// Table returns a copy of the table stored under name.
func (c *Cache) Table(name string) (models.Table, bool) {
	t, ok := c.tables[name]
	if !ok {
		return models.Table{}, false
	}
	var out models.Table
	if err := deepcopy.Copy(&out, &t); err != nil {
		return models.Table{}, false
	}
	return out, true
}

// Tables returns copies of all tables in insertion order.
func (c *Cache) Tables() []models.Table {
	out := make([]models.Table, 0, len(c.names))
	for _, name := range c.names {
		if t, ok := c.Table(name); ok {
			out = append(out, t)
		}
	}
	return out
}

// Store publishes a Cache to concurrent readers. Swapping in a new Cache is
// atomic, so a reader sees either the old or the new table set, never a mix.
type Store struct {
	current atomic.Pointer[Cache]
}

// NewStore returns a Store holding c.
func NewStore(c *Cache) *Store {
	s := &Store{}
	s.current.Store(c)
	return s
}

// Load returns the current Cache.
func (s *Store) Load() *Cache {
	return s.current.Load()
}

// Swap publishes c and returns the Cache it replaced.
func (s *Store) Swap(c *Cache) *Cache {
	return s.current.Swap(c)
}
