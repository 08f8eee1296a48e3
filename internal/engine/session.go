// Package engine executes parsed commands against a persistence gateway:
// it validates operands against the table's schema, runs the record
// operations and keeps the query cache coherent.
package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"primdb/internal/dberr"
	"primdb/internal/schema"
	"primdb/internal/sql"
	"primdb/internal/storage"
)

// ConfirmFunc asks the user to confirm a destructive action before it
// runs. Returning false cancels the command and leaves all state,
// including the cache, untouched.
type ConfirmFunc func(action string) bool

// Result is the outcome of one successfully executed command.
type Result struct {
	Message string
	Columns []string // set for select results
	Rows    []sql.Row
}

// Session dispatches commands. Every command loads current state from the
// gateway, acts on it and writes mutated state back; only the cache lives
// across commands.
type Session struct {
	gw      storage.Gateway
	cache   *Cache
	confirm ConfirmFunc
	log     *logrus.Logger
}

// NewSession creates a session over the given gateway. A nil confirm
// auto-approves destructive operations; a nil logger discards output.
func NewSession(gw storage.Gateway, confirm ConfirmFunc, log *logrus.Logger) *Session {
	if confirm == nil {
		confirm = func(string) bool { return true }
	}
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Session{
		gw:      gw,
		cache:   NewCache(),
		confirm: confirm,
		log:     log,
	}
}

// Cache exposes the session's query cache, mainly for tests.
func (s *Session) Cache() *Cache {
	return s.cache
}

// Execute runs one parsed statement. Errors are classified per the dberr
// taxonomy; a panic inside execution is recovered and reported as an
// internal error so one bad command can never take the session down.
func (s *Session) Execute(stmt sql.Statement) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithField("panic", r).Error("command execution panicked")
			res, err = nil, dberr.Internal("unexpected failure: %v", r)
		}
	}()

	switch t := stmt.(type) {
	case *sql.CreateTableStmt:
		return s.execCreateTable(t)
	case *sql.DropTableStmt:
		return s.execDropTable(t)
	case *sql.ListTablesStmt:
		return s.execListTables()
	case *sql.InfoStmt:
		return s.execInfo(t)
	case *sql.InsertStmt:
		return s.execInsert(t)
	case *sql.SelectStmt:
		return s.execSelect(t)
	case *sql.UpdateStmt:
		return s.execUpdate(t)
	case *sql.DeleteStmt:
		return s.execDelete(t)
	default:
		return nil, dberr.Internal("unhandled statement type %T", stmt)
	}
}

func (s *Session) execCreateTable(stmt *sql.CreateTableStmt) (*Result, error) {
	md, err := s.gw.LoadMetadata()
	if err != nil {
		return nil, err
	}
	sc, err := schema.CreateTable(md, stmt.TableName, stmt.ColumnSpecs)
	if err != nil {
		return nil, err
	}
	if err := s.gw.SaveMetadata(md); err != nil {
		return nil, err
	}
	return &Result{
		Message: fmt.Sprintf("Table %q created with columns: %s", stmt.TableName, sc.Summary()),
	}, nil
}

func (s *Session) execDropTable(stmt *sql.DropTableStmt) (*Result, error) {
	md, err := s.gw.LoadMetadata()
	if err != nil {
		return nil, err
	}
	if _, err := schema.Lookup(md, stmt.TableName); err != nil {
		return nil, err
	}
	if !s.confirm(fmt.Sprintf("drop table %q", stmt.TableName)) {
		return &Result{Message: "Operation cancelled"}, nil
	}
	if err := schema.DropTable(md, stmt.TableName); err != nil {
		return nil, err
	}
	if err := s.gw.SaveMetadata(md); err != nil {
		return nil, err
	}
	if err := s.gw.DeleteRows(stmt.TableName); err != nil {
		return nil, err
	}
	s.cache.Clear()
	return &Result{Message: fmt.Sprintf("Table %q dropped", stmt.TableName)}, nil
}

func (s *Session) execListTables() (*Result, error) {
	md, err := s.gw.LoadMetadata()
	if err != nil {
		return nil, err
	}
	names := schema.ListTables(md)
	if len(names) == 0 {
		return &Result{Message: "(no tables)"}, nil
	}
	return &Result{Message: "- " + strings.Join(names, "\n- ")}, nil
}

func (s *Session) execInfo(stmt *sql.InfoStmt) (*Result, error) {
	md, err := s.gw.LoadMetadata()
	if err != nil {
		return nil, err
	}
	sc, err := schema.Lookup(md, stmt.TableName)
	if err != nil {
		return nil, err
	}
	rows, err := s.gw.LoadRows(stmt.TableName)
	if err != nil {
		return nil, err
	}
	return &Result{
		Message: fmt.Sprintf("Table %q: %s (%d rows)", stmt.TableName, sc.Summary(), len(rows)),
	}, nil
}

func (s *Session) execInsert(stmt *sql.InsertStmt) (*Result, error) {
	md, err := s.gw.LoadMetadata()
	if err != nil {
		return nil, err
	}
	sc, err := schema.Lookup(md, stmt.TableName)
	if err != nil {
		return nil, err
	}
	rows, err := s.gw.LoadRows(stmt.TableName)
	if err != nil {
		return nil, err
	}
	rows, id, err := InsertRow(sc, rows, stmt.RawValues)
	if err != nil {
		return nil, err
	}
	if err := s.gw.SaveRows(stmt.TableName, rows); err != nil {
		return nil, err
	}
	s.cache.Clear()
	return &Result{Message: fmt.Sprintf("Inserted row with ID %d into %q", id, stmt.TableName)}, nil
}

func (s *Session) execSelect(stmt *sql.SelectStmt) (*Result, error) {
	md, err := s.gw.LoadMetadata()
	if err != nil {
		return nil, err
	}
	sc, err := schema.Lookup(md, stmt.TableName)
	if err != nil {
		return nil, err
	}
	pred, err := coerceClause(sc, stmt.Where)
	if err != nil {
		return nil, err
	}

	key := CacheKey(stmt.TableName, pred)
	rows, err := s.cache.GetOrCompute(key, func() ([]sql.Row, error) {
		stored, err := s.gw.LoadRows(stmt.TableName)
		if err != nil {
			return nil, err
		}
		return Filter(stored, pred), nil
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Message: fmt.Sprintf("%d row(s)", len(rows)),
		Columns: sc.ColumnNames(),
		Rows:    rows,
	}, nil
}

func (s *Session) execUpdate(stmt *sql.UpdateStmt) (*Result, error) {
	md, err := s.gw.LoadMetadata()
	if err != nil {
		return nil, err
	}
	sc, err := schema.Lookup(md, stmt.TableName)
	if err != nil {
		return nil, err
	}
	set, err := coerceAssignment(sc, stmt.Set)
	if err != nil {
		return nil, err
	}
	pred, err := coerceClause(sc, &stmt.Where)
	if err != nil {
		return nil, err
	}
	rows, err := s.gw.LoadRows(stmt.TableName)
	if err != nil {
		return nil, err
	}

	matched := UpdateRows(rows, set, *pred)
	if len(matched) == 0 {
		return &Result{Message: "no matching records"}, nil
	}
	if err := s.gw.SaveRows(stmt.TableName, rows); err != nil {
		return nil, err
	}
	s.cache.Clear()
	return &Result{Message: fmt.Sprintf("Updated %d row(s): %s", len(matched), formatIDs(matched))}, nil
}

func (s *Session) execDelete(stmt *sql.DeleteStmt) (*Result, error) {
	md, err := s.gw.LoadMetadata()
	if err != nil {
		return nil, err
	}
	sc, err := schema.Lookup(md, stmt.TableName)
	if err != nil {
		return nil, err
	}
	pred, err := coerceClause(sc, &stmt.Where)
	if err != nil {
		return nil, err
	}
	if !s.confirm(fmt.Sprintf("delete from %q where %s = %s", stmt.TableName, pred.Column, stmt.Where.Raw)) {
		return &Result{Message: "Operation cancelled"}, nil
	}
	rows, err := s.gw.LoadRows(stmt.TableName)
	if err != nil {
		return nil, err
	}

	kept, removed := DeleteRows(rows, *pred)
	if len(removed) == 0 {
		return &Result{Message: "no matching records"}, nil
	}
	if err := s.gw.SaveRows(stmt.TableName, kept); err != nil {
		return nil, err
	}
	s.cache.Clear()
	return &Result{Message: fmt.Sprintf("Deleted %d row(s): %s", len(removed), formatIDs(removed))}, nil
}

// coerceClause types a raw where-clause against the schema. A nil clause
// stays nil (select without where).
func coerceClause(sc schema.Schema, c *sql.RawClause) (*sql.Predicate, error) {
	if c == nil {
		return nil, nil
	}
	col, ok := sc.Find(c.Column)
	if !ok {
		return nil, dberr.NotFound("column %q does not exist", c.Column)
	}
	v, err := sql.Coerce(c.Raw, col.Type)
	if err != nil {
		return nil, dberr.Type("column %q: %s", c.Column, dberr.Msg(err))
	}
	return &sql.Predicate{Column: c.Column, Value: v}, nil
}

func coerceAssignment(sc schema.Schema, c sql.RawClause) (sql.Assignment, error) {
	col, ok := sc.Find(c.Column)
	if !ok {
		return sql.Assignment{}, dberr.NotFound("column %q does not exist", c.Column)
	}
	v, err := sql.Coerce(c.Raw, col.Type)
	if err != nil {
		return sql.Assignment{}, dberr.Type("column %q: %s", c.Column, dberr.Msg(err))
	}
	return sql.Assignment{Column: c.Column, Value: v}, nil
}

func formatIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}
