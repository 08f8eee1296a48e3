package engine

import "primdb/internal/sql"

// Cache memoizes select results per (table, predicate) key. It is owned
// by the session and passed by reference; there is no global state.
//
// Invalidation is deliberately coarse: any successful mutation clears the
// whole cache, all tables and all predicates. Per-table invalidation
// would be easy to add here but would change observable behavior.
type Cache struct {
	entries map[string][]sql.Row
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string][]sql.Row)}
}

// CacheKey builds the deterministic key for a table + predicate pair.
// "no predicate" is a distinct key from any real predicate.
func CacheKey(table string, p *sql.Predicate) string {
	if p == nil {
		return table + "|*"
	}
	return table + "|" + p.Key()
}

// GetOrCompute returns the stored result for key if present; otherwise it
// invokes compute, stores the result and returns it. A failed compute is
// not cached.
func (c *Cache) GetOrCompute(key string, compute func() ([]sql.Row, error)) ([]sql.Row, error) {
	if rows, ok := c.entries[key]; ok {
		return rows, nil
	}
	rows, err := compute()
	if err != nil {
		return nil, err
	}
	c.entries[key] = rows
	return rows, nil
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.entries = make(map[string][]sql.Row)
}

// Len reports the number of cached results.
func (c *Cache) Len() int {
	return len(c.entries)
}
