package sql

import (
	"strconv"
	"strings"

	"primdb/internal/dberr"
)

// Coerce converts a raw command token into a typed Value according to the
// declared column type. It is the single source of truth for typed
// interpretation: insert, where-clauses and set-clauses all go through it.
//
//   - str:  the token must be quoted ('...' or "..."); the value is the
//     interior without escape processing
//   - int:  strict base-10 signed integer
//   - bool: true or false, case-insensitive
func Coerce(raw string, t DataType) (Value, error) {
	switch t {
	case TypeStr:
		if len(raw) < 2 {
			return Value{}, dberr.Type("%q is not a quoted string", raw)
		}
		first, last := raw[0], raw[len(raw)-1]
		if first != last || (first != '\'' && first != '"') {
			return Value{}, dberr.Type("%q is not a quoted string", raw)
		}
		return NewStr(raw[1 : len(raw)-1]), nil

	case TypeInt:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, dberr.Type("%q is not an integer", raw)
		}
		return NewInt(i), nil

	case TypeBool:
		switch strings.ToLower(raw) {
		case "true":
			return NewBool(true), nil
		case "false":
			return NewBool(false), nil
		default:
			return Value{}, dberr.Type("%q is not a boolean", raw)
		}

	default:
		return Value{}, dberr.Type("unknown column type %v", t)
	}
}
