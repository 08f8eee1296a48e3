package sql

import (
	"strings"

	"primdb/internal/dberr"
)

// parseInsert parses:
//
//	insert into <table> values (<v1>, <v2>, ...)
//
// The value list is located in the raw line rather than rebuilt from
// tokens: generic tokenization would strip or mis-split quoted string
// literals inside the parentheses.
func parseInsert(line string, tokens []string) (Statement, error) {
	if len(tokens) < 4 || tokens[1] != "into" {
		return nil, dberr.Parse("usage: insert into <table> values (<v1>, <v2>, ...)")
	}
	tableName := tokens[2]
	if tokens[3] != "values" {
		return nil, dberr.Parse("insert: expected 'values' after table name")
	}

	idx := strings.Index(strings.ToLower(line), "values")
	if idx == -1 {
		return nil, dberr.Parse("insert: missing values list")
	}
	listPart := strings.TrimSpace(line[idx+len("values"):])
	if listPart == "" {
		return nil, dberr.Parse("insert: missing values list")
	}

	raws, err := SplitValueList(listPart)
	if err != nil {
		return nil, err
	}

	return &InsertStmt{
		TableName: tableName,
		RawValues: raws,
	}, nil
}
