// Package memstore provides an in-memory persistence gateway, used by
// tests and throwaway sessions.
package memstore

import (
	"sync"

	"primdb/internal/schema"
	"primdb/internal/sql"
	"primdb/internal/storage"
)

type memGateway struct {
	mu   sync.RWMutex
	md   schema.Metadata
	rows map[string][]sql.Row
}

// New creates an empty in-memory gateway.
func New() storage.Gateway {
	return &memGateway{
		md:   make(schema.Metadata),
		rows: make(map[string][]sql.Row),
	}
}

// LoadMetadata returns a deep copy so callers cannot mutate stored state
// without going through SaveMetadata.
func (g *memGateway) LoadMetadata() (schema.Metadata, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(schema.Metadata, len(g.md))
	for name, s := range g.md {
		cp := make(schema.Schema, len(s))
		copy(cp, s)
		out[name] = cp
	}
	return out, nil
}

func (g *memGateway) SaveMetadata(md schema.Metadata) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	cp := make(schema.Metadata, len(md))
	for name, s := range md {
		sc := make(schema.Schema, len(s))
		copy(sc, s)
		cp[name] = sc
	}
	g.md = cp
	return nil
}

// LoadRows returns a deep copy of the stored rowset; a table that was
// never written loads as empty.
func (g *memGateway) LoadRows(table string) ([]sql.Row, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stored, ok := g.rows[table]
	if !ok {
		return nil, nil
	}
	return sql.CloneRows(stored), nil
}

func (g *memGateway) SaveRows(table string, rows []sql.Row) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.rows[table] = sql.CloneRows(rows)
	return nil
}

func (g *memGateway) DeleteRows(table string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.rows, table)
	return nil
}
