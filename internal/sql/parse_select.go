package sql

import "primdb/internal/dberr"

// parseSelect parses:
//
//	select from <table>
//	select from <table> where <col> = <value>
func parseSelect(tokens []string) (Statement, error) {
	if len(tokens) < 3 || tokens[1] != "from" {
		return nil, dberr.Parse("usage: select from <table> [where <col> = <value>]")
	}
	tableName := tokens[2]

	if len(tokens) == 3 {
		return &SelectStmt{TableName: tableName}, nil
	}

	if tokens[3] != "where" {
		return nil, dberr.Parse("select: expected 'where', got %q", tokens[3])
	}
	col, raw, err := ParseAssignment(tokens[4:])
	if err != nil {
		return nil, err
	}

	return &SelectStmt{
		TableName: tableName,
		Where:     &RawClause{Column: col, Raw: raw},
	}, nil
}
