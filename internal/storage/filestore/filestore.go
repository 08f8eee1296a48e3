// Package filestore persists the database as plain JSON files: one
// metadata file mapping table name to its ordered column list, and one
// row file per table.
//
// Layout:
//
//	<dir>/metadata.json
//	<dir>/tables/<table>.json
//
// A missing file is an empty database or an empty table, never an error.
package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"primdb/internal/schema"
	"primdb/internal/sql"
	"primdb/internal/storage"
)

const (
	metadataFile = "metadata.json"
	tablesDir    = "tables"
)

type fileGateway struct {
	dir string
}

// New creates a file gateway rooted at dir, creating the directory
// structure if needed.
func New(dir string) (storage.Gateway, error) {
	if err := os.MkdirAll(filepath.Join(dir, tablesDir), 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create dir: %w", err)
	}
	return &fileGateway{dir: dir}, nil
}

func (g *fileGateway) metadataPath() string {
	return filepath.Join(g.dir, metadataFile)
}

func (g *fileGateway) tablePath(table string) string {
	return filepath.Join(g.dir, tablesDir, table+".json")
}

func (g *fileGateway) LoadMetadata() (schema.Metadata, error) {
	data, err := os.ReadFile(g.metadataPath())
	if os.IsNotExist(err) {
		return make(schema.Metadata), nil
	}
	if err != nil {
		return nil, fmt.Errorf("filestore: read metadata: %w", err)
	}

	md := make(schema.Metadata)
	if err := json.Unmarshal(data, &md); err != nil {
		return nil, fmt.Errorf("filestore: decode metadata: %w", err)
	}
	return md, nil
}

func (g *fileGateway) SaveMetadata(md schema.Metadata) error {
	data, err := json.MarshalIndent(md, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore: encode metadata: %w", err)
	}
	return g.writeFile(g.metadataPath(), data)
}

func (g *fileGateway) LoadRows(table string) ([]sql.Row, error) {
	data, err := os.ReadFile(g.tablePath(table))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("filestore: read table %s: %w", table, err)
	}

	var rows []sql.Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("filestore: decode table %s: %w", table, err)
	}
	return rows, nil
}

func (g *fileGateway) SaveRows(table string, rows []sql.Row) error {
	if rows == nil {
		rows = []sql.Row{}
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore: encode table %s: %w", table, err)
	}
	return g.writeFile(g.tablePath(table), data)
}

func (g *fileGateway) DeleteRows(table string) error {
	err := os.Remove(g.tablePath(table))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("filestore: remove table %s: %w", table, err)
	}
	return nil
}

// writeFile writes via a temp file + rename so a crash mid-write never
// leaves a half-written JSON document behind.
func (g *fileGateway) writeFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("filestore: write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("filestore: rename %s: %w", filepath.Base(path), err)
	}
	return nil
}
