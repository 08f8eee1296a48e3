package sql

import "primdb/internal/dberr"

// parseDelete parses:
//
//	delete from <table> where <col> = <value>
//
// The where-clause is mandatory: a whole-table delete must be spelled out
// row by row or done with drop_table.
func parseDelete(tokens []string) (Statement, error) {
	if len(tokens) < 5 || tokens[1] != "from" {
		return nil, dberr.Parse("usage: delete from <table> where <col> = <value>")
	}
	tableName := tokens[2]

	if tokens[3] != "where" {
		return nil, dberr.Parse("delete: expected 'where', got %q", tokens[3])
	}
	col, raw, err := ParseAssignment(tokens[4:])
	if err != nil {
		return nil, err
	}

	return &DeleteStmt{
		TableName: tableName,
		Where:     RawClause{Column: col, Raw: raw},
	}, nil
}
