package memstore

import (
	"testing"

	"primdb/internal/schema"
	"primdb/internal/sql"
)

func TestMemstore_EmptyLoads(t *testing.T) {
	g := New()

	md, err := g.LoadMetadata()
	if err != nil {
		t.Fatalf("LoadMetadata failed: %v", err)
	}
	if len(md) != 0 {
		t.Fatalf("expected empty metadata, got %v", md)
	}

	rows, err := g.LoadRows("nope")
	if err != nil {
		t.Fatalf("LoadRows failed: %v", err)
	}
	if rows != nil {
		t.Fatalf("expected nil rows for unknown table, got %v", rows)
	}
}

func TestMemstore_RoundTrip(t *testing.T) {
	g := New()

	md := schema.Metadata{
		"users": {{Name: "ID", Type: sql.TypeInt}, {Name: "name", Type: sql.TypeStr}},
	}
	if err := g.SaveMetadata(md); err != nil {
		t.Fatalf("SaveMetadata failed: %v", err)
	}

	loaded, err := g.LoadMetadata()
	if err != nil {
		t.Fatalf("LoadMetadata failed: %v", err)
	}
	if loaded["users"][1].Name != "name" {
		t.Fatalf("unexpected metadata: %v", loaded)
	}

	rows := []sql.Row{{"ID": sql.NewInt(1), "name": sql.NewStr("Alice")}}
	if err := g.SaveRows("users", rows); err != nil {
		t.Fatalf("SaveRows failed: %v", err)
	}
	got, err := g.LoadRows("users")
	if err != nil {
		t.Fatalf("LoadRows failed: %v", err)
	}
	if len(got) != 1 || got[0]["name"].S != "Alice" {
		t.Fatalf("unexpected rows: %v", got)
	}
}

func TestMemstore_LoadedCopiesAreIsolated(t *testing.T) {
	g := New()
	if err := g.SaveRows("users", []sql.Row{{"ID": sql.NewInt(1)}}); err != nil {
		t.Fatalf("SaveRows failed: %v", err)
	}

	first, _ := g.LoadRows("users")
	first[0]["ID"] = sql.NewInt(99)

	second, _ := g.LoadRows("users")
	if second[0]["ID"].I64 != 1 {
		t.Fatal("mutating a loaded copy leaked into the store")
	}
}

func TestMemstore_DeleteRows(t *testing.T) {
	g := New()
	if err := g.SaveRows("users", []sql.Row{{"ID": sql.NewInt(1)}}); err != nil {
		t.Fatalf("SaveRows failed: %v", err)
	}
	if err := g.DeleteRows("users"); err != nil {
		t.Fatalf("DeleteRows failed: %v", err)
	}
	rows, _ := g.LoadRows("users")
	if rows != nil {
		t.Fatalf("expected empty rows after delete, got %v", rows)
	}
	// Deleting an absent table is not an error.
	if err := g.DeleteRows("ghosts"); err != nil {
		t.Fatalf("DeleteRows(ghosts) failed: %v", err)
	}
}
