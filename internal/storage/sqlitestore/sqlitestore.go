// Package sqlitestore persists the database in a single SQLite file.
// Schemas and rows are stored as JSON text; SQLite only provides the
// durable container, the engine keeps full ownership of typing.
package sqlitestore

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"primdb/internal/schema"
	pdbsql "primdb/internal/sql"
	"primdb/internal/storage"
)

const ddl = `
CREATE TABLE IF NOT EXISTS meta (
  tbl     TEXT PRIMARY KEY,
  columns TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS tblrows (
  tbl  TEXT    NOT NULL,
  pos  INTEGER NOT NULL,
  data TEXT    NOT NULL,
  PRIMARY KEY (tbl, pos)
);
`

type sqliteGateway struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at path.
func New(path string) (storage.Gateway, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlitestore: open database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlitestore: init schema: %w", err)
	}
	return &sqliteGateway{db: db}, nil
}

// Close releases the underlying database handle.
func (g *sqliteGateway) Close() error {
	return g.db.Close()
}

func (g *sqliteGateway) LoadMetadata() (schema.Metadata, error) {
	rows, err := g.db.Query(`SELECT tbl, columns FROM meta`)
	if err != nil {
		return nil, fmt.Errorf("sqlitestore: load metadata: %w", err)
	}
	defer rows.Close()

	md := make(schema.Metadata)
	for rows.Next() {
		var name, cols string
		if err := rows.Scan(&name, &cols); err != nil {
			return nil, fmt.Errorf("sqlitestore: scan metadata: %w", err)
		}
		var s schema.Schema
		if err := json.Unmarshal([]byte(cols), &s); err != nil {
			return nil, fmt.Errorf("sqlitestore: decode schema for %s: %w", name, err)
		}
		md[name] = s
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlitestore: load metadata: %w", err)
	}
	return md, nil
}

func (g *sqliteGateway) SaveMetadata(md schema.Metadata) error {
	tx, err := g.db.Begin()
	if err != nil {
		return fmt.Errorf("sqlitestore: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM meta`); err != nil {
		return fmt.Errorf("sqlitestore: clear metadata: %w", err)
	}
	for name, s := range md {
		cols, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("sqlitestore: encode schema for %s: %w", name, err)
		}
		if _, err := tx.Exec(`INSERT INTO meta (tbl, columns) VALUES (?, ?)`, name, string(cols)); err != nil {
			return fmt.Errorf("sqlitestore: save schema for %s: %w", name, err)
		}
	}
	return tx.Commit()
}

func (g *sqliteGateway) LoadRows(table string) ([]pdbsql.Row, error) {
	rows, err := g.db.Query(`SELECT data FROM tblrows WHERE tbl = ? ORDER BY pos`, table)
	if err != nil {
		return nil, fmt.Errorf("sqlitestore: load rows for %s: %w", table, err)
	}
	defer rows.Close()

	var out []pdbsql.Row
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("sqlitestore: scan row: %w", err)
		}
		var r pdbsql.Row
		if err := json.Unmarshal([]byte(data), &r); err != nil {
			return nil, fmt.Errorf("sqlitestore: decode row for %s: %w", table, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlitestore: load rows for %s: %w", table, err)
	}
	return out, nil
}

func (g *sqliteGateway) SaveRows(table string, rows []pdbsql.Row) error {
	tx, err := g.db.Begin()
	if err != nil {
		return fmt.Errorf("sqlitestore: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tblrows WHERE tbl = ?`, table); err != nil {
		return fmt.Errorf("sqlitestore: clear rows for %s: %w", table, err)
	}
	for pos, r := range rows {
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("sqlitestore: encode row: %w", err)
		}
		if _, err := tx.Exec(`INSERT INTO tblrows (tbl, pos, data) VALUES (?, ?, ?)`, table, pos, string(data)); err != nil {
			return fmt.Errorf("sqlitestore: save row: %w", err)
		}
	}
	return tx.Commit()
}

func (g *sqliteGateway) DeleteRows(table string) error {
	if _, err := g.db.Exec(`DELETE FROM tblrows WHERE tbl = ?`, table); err != nil {
		return fmt.Errorf("sqlitestore: delete rows for %s: %w", table, err)
	}
	return nil
}
