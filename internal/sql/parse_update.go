package sql

import "primdb/internal/dberr"

// parseUpdate parses:
//
//	update <table> set <col> = <value> where <col> = <value>
//
// Both the set-clause and the where-clause cover exactly one column.
func parseUpdate(tokens []string) (Statement, error) {
	if len(tokens) < 6 || tokens[2] != "set" {
		return nil, dberr.Parse("usage: update <table> set <col> = <value> where <col> = <value>")
	}
	tableName := tokens[1]

	// Everything between 'set' and 'where' is the assignment.
	whereIdx := -1
	for i := 3; i < len(tokens); i++ {
		if tokens[i] == "where" {
			whereIdx = i
			break
		}
	}
	if whereIdx == -1 {
		return nil, dberr.Parse("update: missing where clause")
	}

	setCol, setRaw, err := ParseAssignment(tokens[3:whereIdx])
	if err != nil {
		return nil, err
	}
	whereCol, whereRaw, err := ParseAssignment(tokens[whereIdx+1:])
	if err != nil {
		return nil, err
	}

	return &UpdateStmt{
		TableName: tableName,
		Set:       RawClause{Column: setCol, Raw: setRaw},
		Where:     RawClause{Column: whereCol, Raw: whereRaw},
	}, nil
}
