package sql

// Statement is the common interface for all parsed commands. The set of
// variants is closed; the dispatcher switches over them exhaustively and
// "unknown command" is the parser's only fallthrough.
type Statement interface {
	stmtNode()
}

// RawClause is an untyped column/value pair as written on the command
// line. Coercion to a typed Predicate or Assignment happens later, once
// the table's schema is known.
type RawClause struct {
	Column string
	Raw    string
}

// CreateTableStmt represents: create_table <table> <col:type> ...
// Column specs stay raw; the schema registry validates them.
type CreateTableStmt struct {
	TableName   string
	ColumnSpecs []string
}

// DropTableStmt represents: drop_table <table>
type DropTableStmt struct {
	TableName string
}

// ListTablesStmt represents: list_tables
type ListTablesStmt struct{}

// InfoStmt represents: info <table>
type InfoStmt struct {
	TableName string
}

// InsertStmt represents: insert into <table> values (<v1>, <v2>, ...)
type InsertStmt struct {
	TableName string
	RawValues []string
}

// SelectStmt represents: select from <table> [where <col> = <value>]
type SelectStmt struct {
	TableName string
	Where     *RawClause // nil when no where-clause
}

// UpdateStmt represents: update <table> set <col> = <v> where <col> = <v>
type UpdateStmt struct {
	TableName string
	Set       RawClause
	Where     RawClause
}

// DeleteStmt represents: delete from <table> where <col> = <value>
type DeleteStmt struct {
	TableName string
	Where     RawClause
}

// HelpStmt represents: help
type HelpStmt struct{}

// ExitStmt represents: exit
type ExitStmt struct{}

func (*CreateTableStmt) stmtNode() {}
func (*DropTableStmt) stmtNode()   {}
func (*ListTablesStmt) stmtNode()  {}
func (*InfoStmt) stmtNode()        {}
func (*InsertStmt) stmtNode()      {}
func (*SelectStmt) stmtNode()      {}
func (*UpdateStmt) stmtNode()      {}
func (*DeleteStmt) stmtNode()      {}
func (*HelpStmt) stmtNode()        {}
func (*ExitStmt) stmtNode()        {}
