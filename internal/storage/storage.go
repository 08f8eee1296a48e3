// Package storage defines the persistence gateway contract. The engine
// loads current state through a Gateway before every command and writes
// mutated state back after it; the on-disk encoding belongs entirely to
// the gateway implementation.
package storage

import (
	"primdb/internal/schema"
	"primdb/internal/sql"
)

// Gateway is the load/save contract between the command engine and
// persistent state.
//
// Implementations must treat "not found" as "empty": a database or table
// that has never been written loads as empty metadata or an empty rowset,
// never as an error.
type Gateway interface {
	// LoadMetadata returns the table → schema mapping.
	LoadMetadata() (schema.Metadata, error)

	// SaveMetadata persists the table → schema mapping.
	SaveMetadata(md schema.Metadata) error

	// LoadRows returns the stored rowset of a table in insertion order.
	LoadRows(table string) ([]sql.Row, error)

	// SaveRows persists a table's rowset, replacing the previous one.
	SaveRows(table string, rows []sql.Row) error

	// DeleteRows removes a table's stored rowset entirely, used when the
	// table itself is dropped.
	DeleteRows(table string) error
}
