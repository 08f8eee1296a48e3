package engine

import (
	"reflect"
	"testing"

	"primdb/internal/dberr"
	"primdb/internal/schema"
	"primdb/internal/sql"
)

func usersSchema() schema.Schema {
	return schema.Schema{
		{Name: "ID", Type: sql.TypeInt},
		{Name: "name", Type: sql.TypeStr},
		{Name: "age", Type: sql.TypeInt},
	}
}

func TestInsertRow_SequentialIDs(t *testing.T) {
	s := usersSchema()

	rows, id, err := InsertRow(s, nil, []string{`"Alice"`, "30"})
	if err != nil {
		t.Fatalf("InsertRow failed: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected ID 1, got %d", id)
	}

	rows, id, err = InsertRow(s, rows, []string{`"Bob"`, "25"})
	if err != nil {
		t.Fatalf("InsertRow failed: %v", err)
	}
	if id != 2 {
		t.Fatalf("expected ID 2, got %d", id)
	}

	want := sql.Row{"ID": sql.NewInt(2), "name": sql.NewStr("Bob"), "age": sql.NewInt(25)}
	if !reflect.DeepEqual(rows[1], want) {
		t.Fatalf("expected %v, got %v", want, rows[1])
	}
}

func TestInsertRow_ArityMismatch(t *testing.T) {
	_, _, err := InsertRow(usersSchema(), nil, []string{`"Alice"`})
	if !dberr.IsKind(err, dberr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestInsertRow_CoercionAborts(t *testing.T) {
	_, _, err := InsertRow(usersSchema(), nil, []string{`"Alice"`, `"thirty"`})
	if !dberr.IsKind(err, dberr.KindType) {
		t.Fatalf("expected type error, got %v", err)
	}
}

func TestNextID_NeverReusesGaps(t *testing.T) {
	rows := []sql.Row{
		{"ID": sql.NewInt(1)},
		{"ID": sql.NewInt(5)},
		{"ID": sql.NewInt(3)},
	}
	if got := NextID(rows); got != 6 {
		t.Fatalf("expected 6, got %d", got)
	}
}

func TestNextID_IgnoresCorruptIDs(t *testing.T) {
	rows := []sql.Row{
		{"ID": sql.NewInt(2)},
		{"ID": sql.NewStr("oops")}, // corrupt, ignored not repaired
		{"name": sql.NewStr("no id")},
	}
	if got := NextID(rows); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestNextID_EmptyTable(t *testing.T) {
	if got := NextID(nil); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestFilter_NoPredicate(t *testing.T) {
	rows := []sql.Row{{"ID": sql.NewInt(1)}, {"ID": sql.NewInt(2)}}
	got := Filter(rows, nil)
	if len(got) != 2 {
		t.Fatalf("expected full rowset, got %d rows", len(got))
	}
}

func TestFilter_ExactTypedEquality(t *testing.T) {
	rows := []sql.Row{
		{"ID": sql.NewInt(1), "age": sql.NewInt(30)},
		{"ID": sql.NewInt(2), "age": sql.NewInt(25)},
	}

	got := Filter(rows, &sql.Predicate{Column: "age", Value: sql.NewInt(30)})
	if len(got) != 1 || got[0]["ID"].I64 != 1 {
		t.Fatalf("unexpected match: %v", got)
	}

	// Same digits but string-typed: no match.
	got = Filter(rows, &sql.Predicate{Column: "age", Value: sql.NewStr("30")})
	if len(got) != 0 {
		t.Fatalf("cross-type equality must not match, got %v", got)
	}

	// Unknown column: no match.
	got = Filter(rows, &sql.Predicate{Column: "city", Value: sql.NewStr("x")})
	if len(got) != 0 {
		t.Fatalf("unknown column must not match, got %v", got)
	}
}

func TestUpdateRows_MatchedIDs(t *testing.T) {
	rows := []sql.Row{
		{"ID": sql.NewInt(1), "name": sql.NewStr("Alice"), "age": sql.NewInt(30)},
		{"ID": sql.NewInt(2), "name": sql.NewStr("Bob"), "age": sql.NewInt(25)},
	}

	matched := UpdateRows(rows,
		sql.Assignment{Column: "age", Value: sql.NewInt(31)},
		sql.Predicate{Column: "name", Value: sql.NewStr("Alice")})

	if !reflect.DeepEqual(matched, []int64{1}) {
		t.Fatalf("expected matched IDs [1], got %v", matched)
	}
	if rows[0]["age"].I64 != 31 {
		t.Fatalf("Alice not updated: %v", rows[0])
	}
	if rows[1]["age"].I64 != 25 || rows[1]["name"].S != "Bob" {
		t.Fatalf("non-matching row changed: %v", rows[1])
	}
}

func TestUpdateRows_NoMatch(t *testing.T) {
	rows := []sql.Row{
		{"ID": sql.NewInt(1), "name": sql.NewStr("Alice")},
	}
	before := rows[0].Clone()

	matched := UpdateRows(rows,
		sql.Assignment{Column: "name", Value: sql.NewStr("X")},
		sql.Predicate{Column: "name", Value: sql.NewStr("Carol")})

	if len(matched) != 0 {
		t.Fatalf("expected no matches, got %v", matched)
	}
	if !reflect.DeepEqual(rows[0], before) {
		t.Fatalf("row changed on zero-match update: %v", rows[0])
	}
}

func TestDeleteRows_Partition(t *testing.T) {
	rows := []sql.Row{
		{"ID": sql.NewInt(1), "name": sql.NewStr("Alice")},
		{"ID": sql.NewInt(2), "name": sql.NewStr("Bob")},
	}

	kept, removed := DeleteRows(rows, sql.Predicate{Column: "ID", Value: sql.NewInt(2)})
	if !reflect.DeepEqual(removed, []int64{2}) {
		t.Fatalf("expected removed IDs [2], got %v", removed)
	}
	if len(kept) != 1 || kept[0]["ID"].I64 != 1 {
		t.Fatalf("unexpected kept rows: %v", kept)
	}
}

func TestDeleteRows_NoMatch(t *testing.T) {
	rows := []sql.Row{{"ID": sql.NewInt(1)}}
	kept, removed := DeleteRows(rows, sql.Predicate{Column: "ID", Value: sql.NewInt(9)})
	if len(removed) != 0 || len(kept) != 1 {
		t.Fatalf("expected untouched rowset, got kept=%v removed=%v", kept, removed)
	}
}
