package sql

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"primdb/internal/dberr"
)

// DataType represents the declared type of a column. The set is closed:
// commands may only declare int, str or bool columns.
type DataType int

const (
	TypeInt DataType = iota
	TypeStr
	TypeBool
)

// String returns the type token as it appears in create_table specs.
func (t DataType) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeStr:
		return "str"
	case TypeBool:
		return "bool"
	default:
		return fmt.Sprintf("DataType(%d)", int(t))
	}
}

// ParseDataType maps a column type token to a DataType.
func ParseDataType(tok string) (DataType, error) {
	switch tok {
	case "int":
		return TypeInt, nil
	case "str":
		return TypeStr, nil
	case "bool":
		return TypeBool, nil
	default:
		return 0, dberr.Schema("unsupported column type %q", tok)
	}
}

// Value represents a single cell. Only the field matching Type should be
// read; the other fields stay at their zero values.
type Value struct {
	Type DataType

	I64 int64  // for TypeInt
	S   string // for TypeStr
	B   bool   // for TypeBool
}

// NewInt wraps an int64 in a Value.
func NewInt(i int64) Value { return Value{Type: TypeInt, I64: i} }

// NewStr wraps a string in a Value.
func NewStr(s string) Value { return Value{Type: TypeStr, S: s} }

// NewBool wraps a bool in a Value.
func NewBool(b bool) Value { return Value{Type: TypeBool, B: b} }

// Equal compares two values with exact type-aware equality. Values of
// different types are never equal.
func (v Value) Equal(o Value) bool {
	if v.Type != o.Type {
		return false
	}
	switch v.Type {
	case TypeInt:
		return v.I64 == o.I64
	case TypeStr:
		return v.S == o.S
	case TypeBool:
		return v.B == o.B
	default:
		return false
	}
}

// String renders the value the way it is displayed in results.
func (v Value) String() string {
	switch v.Type {
	case TypeInt:
		return strconv.FormatInt(v.I64, 10)
	case TypeStr:
		return v.S
	case TypeBool:
		return strconv.FormatBool(v.B)
	default:
		return ""
	}
}

// MarshalJSON encodes the value as a native JSON scalar. The three column
// types map onto disjoint JSON token types, so no type tag is needed.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Type {
	case TypeInt:
		return json.Marshal(v.I64)
	case TypeStr:
		return json.Marshal(v.S)
	case TypeBool:
		return json.Marshal(v.B)
	default:
		return nil, fmt.Errorf("cannot marshal value of type %v", v.Type)
	}
}

// UnmarshalJSON recovers the value type from the JSON token type.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case json.Number:
		i, err := strconv.ParseInt(x.String(), 10, 64)
		if err != nil {
			return fmt.Errorf("non-integer number %q", x.String())
		}
		*v = NewInt(i)
	case string:
		*v = NewStr(x)
	case bool:
		*v = NewBool(x)
	default:
		return fmt.Errorf("unsupported JSON value %v", raw)
	}
	return nil
}

// Row represents one record: column name → typed value. A well-formed row
// contains exactly the columns of its table's schema.
type Row map[string]Value

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// CloneRows deep-copies a rowset.
func CloneRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = r.Clone()
	}
	return out
}

// Predicate is a single column-equals-value filter. Compound predicates
// are not supported.
type Predicate struct {
	Column string
	Value  Value
}

// Key renders the predicate deterministically for cache keys. The value
// type is part of the key so 1 and "1" never collide.
func (p Predicate) Key() string {
	return p.Column + "=" + p.Value.Type.String() + ":" + p.Value.String()
}

// Assignment is a single column-assignment applied by update.
type Assignment struct {
	Column string
	Value  Value
}
