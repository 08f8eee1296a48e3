package sql

import (
	"strings"

	"primdb/internal/dberr"
)

// Parse parses a single command line into a Statement. Keywords are
// case-sensitive and whitespace-delimited, except for the insert value
// list which is extracted from the raw line to preserve embedded quoting.
func Parse(line string) (Statement, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, dberr.Parse("empty command")
	}

	tokens, err := Tokenize(trimmed)
	if err != nil {
		return nil, err
	}

	switch tokens[0] {
	case "create_table":
		return parseCreateTable(tokens)
	case "drop_table":
		if len(tokens) != 2 {
			return nil, dberr.Parse("usage: drop_table <table>")
		}
		return &DropTableStmt{TableName: tokens[1]}, nil
	case "list_tables":
		if len(tokens) != 1 {
			return nil, dberr.Parse("usage: list_tables")
		}
		return &ListTablesStmt{}, nil
	case "info":
		if len(tokens) != 2 {
			return nil, dberr.Parse("usage: info <table>")
		}
		return &InfoStmt{TableName: tokens[1]}, nil
	case "insert":
		return parseInsert(trimmed, tokens)
	case "select":
		return parseSelect(tokens)
	case "update":
		return parseUpdate(tokens)
	case "delete":
		return parseDelete(tokens)
	case "help":
		return &HelpStmt{}, nil
	case "exit":
		return &ExitStmt{}, nil
	default:
		return nil, dberr.Parse("unknown command %q, type help for usage", tokens[0])
	}
}

func parseCreateTable(tokens []string) (Statement, error) {
	if len(tokens) < 3 {
		return nil, dberr.Parse("usage: create_table <table> <col:type> [<col:type> ...]")
	}
	return &CreateTableStmt{
		TableName:   tokens[1],
		ColumnSpecs: tokens[2:],
	}, nil
}
