// Package schema owns table definitions: the metadata mapping, the ID-first
// column invariant and the col:type spec grammar of create_table.
package schema

import (
	"sort"
	"strings"

	"primdb/internal/dberr"
	"primdb/internal/sql"
)

// IDColumn is the implicit primary column present in every table.
const IDColumn = "ID"

// ColumnDef describes one column of a table.
type ColumnDef struct {
	Name string
	Type sql.DataType
}

// Schema is the ordered column list of a table. The first column is
// always {ID, int}; every other name is unique and not "ID".
type Schema []ColumnDef

// Metadata maps table name to Schema. One instance per database, mutated
// only through CreateTable and DropTable.
type Metadata map[string]Schema

// Find returns the definition of the named column.
func (s Schema) Find(name string) (ColumnDef, bool) {
	for _, c := range s {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnDef{}, false
}

// UserColumns returns the schema's columns excluding ID, in schema order.
func (s Schema) UserColumns() []ColumnDef {
	out := make([]ColumnDef, 0, len(s))
	for _, c := range s {
		if c.Name != IDColumn {
			out = append(out, c)
		}
	}
	return out
}

// ColumnNames returns all column names in schema order.
func (s Schema) ColumnNames() []string {
	out := make([]string, len(s))
	for i, c := range s {
		out[i] = c.Name
	}
	return out
}

// Summary renders the schema for display, e.g. "ID:int, name:str, age:int".
func (s Schema) Summary() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.Name + ":" + c.Type.String()
	}
	return strings.Join(parts, ", ")
}

// parseColumnSpec parses one "name:type" spec.
func parseColumnSpec(spec string) (ColumnDef, error) {
	name, typeTok, found := strings.Cut(spec, ":")
	if !found {
		return ColumnDef{}, dberr.Schema("invalid column spec %q, expected <name>:<type>", spec)
	}
	name = strings.TrimSpace(name)
	typeTok = strings.TrimSpace(typeTok)
	if name == "" || typeTok == "" {
		return ColumnDef{}, dberr.Schema("invalid column spec %q, expected <name>:<type>", spec)
	}
	dt, err := sql.ParseDataType(typeTok)
	if err != nil {
		return ColumnDef{}, err
	}
	return ColumnDef{Name: name, Type: dt}, nil
}

// CreateTable validates the column specs and registers a new table in the
// metadata. If no ID column is declared, {ID, int} is prepended; an
// explicit ID must be of type int and is relocated to the front, keeping
// the relative order of all other columns.
func CreateTable(md Metadata, name string, specs []string) (Schema, error) {
	if _, exists := md[name]; exists {
		return nil, dberr.Conflict("table %q already exists", name)
	}

	cols := make([]ColumnDef, 0, len(specs)+1)
	seen := make(map[string]bool, len(specs)+1)
	for _, spec := range specs {
		col, err := parseColumnSpec(spec)
		if err != nil {
			return nil, err
		}
		if seen[col.Name] {
			return nil, dberr.Schema("duplicate column %q", col.Name)
		}
		seen[col.Name] = true
		cols = append(cols, col)
	}

	if id, ok := findColumn(cols, IDColumn); ok {
		if id.Type != sql.TypeInt {
			return nil, dberr.Schema("column %s must have type int", IDColumn)
		}
		cols = moveIDFirst(cols)
	} else {
		cols = append([]ColumnDef{{Name: IDColumn, Type: sql.TypeInt}}, cols...)
	}

	s := Schema(cols)
	md[name] = s
	return s, nil
}

// DropTable removes a table from the metadata.
func DropTable(md Metadata, name string) error {
	if _, exists := md[name]; !exists {
		return dberr.NotFound("table %q does not exist", name)
	}
	delete(md, name)
	return nil
}

// ListTables returns all table names in lexicographic order. An empty
// database yields an empty, non-error result.
func ListTables(md Metadata) []string {
	names := make([]string, 0, len(md))
	for name := range md {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the schema of a table, or a NotFoundError.
func Lookup(md Metadata, name string) (Schema, error) {
	s, ok := md[name]
	if !ok {
		return nil, dberr.NotFound("table %q does not exist", name)
	}
	return s, nil
}

func findColumn(cols []ColumnDef, name string) (ColumnDef, bool) {
	for _, c := range cols {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnDef{}, false
}

func moveIDFirst(cols []ColumnDef) []ColumnDef {
	out := make([]ColumnDef, 0, len(cols))
	for _, c := range cols {
		if c.Name == IDColumn {
			out = append(out, c)
		}
	}
	for _, c := range cols {
		if c.Name != IDColumn {
			out = append(out, c)
		}
	}
	return out
}
