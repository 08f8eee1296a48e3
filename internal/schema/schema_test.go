package schema

import (
	"reflect"
	"testing"

	"primdb/internal/dberr"
	"primdb/internal/sql"
)

func TestCreateTable_AutoID(t *testing.T) {
	md := make(Metadata)

	s, err := CreateTable(md, "users", []string{"name:str", "age:int"})
	if err != nil {
		t.Fatalf("CreateTable failed: %v", err)
	}

	want := Schema{
		{Name: "ID", Type: sql.TypeInt},
		{Name: "name", Type: sql.TypeStr},
		{Name: "age", Type: sql.TypeInt},
	}
	if !reflect.DeepEqual(s, want) {
		t.Fatalf("expected %v, got %v", want, s)
	}
	if _, ok := md["users"]; !ok {
		t.Fatal("table not registered in metadata")
	}
}

func TestCreateTable_ExplicitIDRelocated(t *testing.T) {
	md := make(Metadata)

	s, err := CreateTable(md, "t", []string{"a:str", "ID:int", "b:bool"})
	if err != nil {
		t.Fatalf("CreateTable failed: %v", err)
	}

	names := s.ColumnNames()
	want := []string{"ID", "a", "b"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("expected order %v, got %v", want, names)
	}
}

func TestCreateTable_IDMustBeInt(t *testing.T) {
	md := make(Metadata)

	_, err := CreateTable(md, "t", []string{"ID:str"})
	if err == nil {
		t.Fatal("expected error for non-int ID")
	}
	if !dberr.IsKind(err, dberr.KindSchema) {
		t.Fatalf("expected schema error, got %v", err)
	}
	if _, ok := md["t"]; ok {
		t.Fatal("failed create must not register the table")
	}
}

func TestCreateTable_BadSpecs(t *testing.T) {
	cases := [][]string{
		{"name"},          // no type
		{":int"},          // empty name
		{"name:"},         // empty type
		{"name:float"},    // type outside the closed set
		{"a:int", "a:str"}, // duplicate column
	}
	for _, specs := range cases {
		md := make(Metadata)
		if _, err := CreateTable(md, "t", specs); err == nil {
			t.Errorf("expected error for specs %v", specs)
		}
	}
}

func TestCreateTable_Conflict(t *testing.T) {
	md := make(Metadata)
	if _, err := CreateTable(md, "t", []string{"a:int"}); err != nil {
		t.Fatalf("CreateTable failed: %v", err)
	}

	_, err := CreateTable(md, "t", []string{"b:int"})
	if !dberr.IsKind(err, dberr.KindConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestDropTable(t *testing.T) {
	md := make(Metadata)
	if _, err := CreateTable(md, "t", []string{"a:int"}); err != nil {
		t.Fatalf("CreateTable failed: %v", err)
	}

	if err := DropTable(md, "t"); err != nil {
		t.Fatalf("DropTable failed: %v", err)
	}
	if err := DropTable(md, "t"); !dberr.IsKind(err, dberr.KindNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestListTables_Sorted(t *testing.T) {
	md := make(Metadata)
	for _, name := range []string{"zebra", "apple", "mango"} {
		if _, err := CreateTable(md, name, []string{"a:int"}); err != nil {
			t.Fatalf("CreateTable %s failed: %v", name, err)
		}
	}

	got := ListTables(md)
	want := []string{"apple", "mango", "zebra"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestListTables_Empty(t *testing.T) {
	if got := ListTables(make(Metadata)); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func TestSchema_Helpers(t *testing.T) {
	s := Schema{
		{Name: "ID", Type: sql.TypeInt},
		{Name: "name", Type: sql.TypeStr},
	}

	if s.Summary() != "ID:int, name:str" {
		t.Fatalf("unexpected summary %q", s.Summary())
	}

	user := s.UserColumns()
	if len(user) != 1 || user[0].Name != "name" {
		t.Fatalf("unexpected user columns: %v", user)
	}

	if _, ok := s.Find("age"); ok {
		t.Fatal("Find returned a missing column")
	}
}
