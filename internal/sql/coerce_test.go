package sql

import (
	"testing"

	"primdb/internal/dberr"
)

func TestCoerce_Str(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{`"Alice"`, "Alice"},
		{`'Bob'`, "Bob"},
		{`""`, ""},
		{`"it's"`, "it's"},
	}
	for _, c := range cases {
		v, err := Coerce(c.raw, TypeStr)
		if err != nil {
			t.Errorf("Coerce(%q) failed: %v", c.raw, err)
			continue
		}
		if v.Type != TypeStr || v.S != c.want {
			t.Errorf("Coerce(%q): expected %q, got %+v", c.raw, c.want, v)
		}
	}
}

func TestCoerce_StrRejectsUnquoted(t *testing.T) {
	for _, raw := range []string{`Alice`, `"Alice'`, `"`, ``, `30`} {
		if _, err := Coerce(raw, TypeStr); err == nil {
			t.Errorf("expected error for %q", raw)
		} else if !dberr.IsKind(err, dberr.KindType) {
			t.Errorf("expected type error for %q, got %v", raw, err)
		}
	}
}

func TestCoerce_Int(t *testing.T) {
	v, err := Coerce("-42", TypeInt)
	if err != nil {
		t.Fatalf("Coerce failed: %v", err)
	}
	if v.Type != TypeInt || v.I64 != -42 {
		t.Fatalf("expected -42, got %+v", v)
	}
}

func TestCoerce_IntStrict(t *testing.T) {
	for _, raw := range []string{"3.14", "1e3", "42abc", `"42"`, "", "0x10"} {
		if _, err := Coerce(raw, TypeInt); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}

func TestCoerce_Bool(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{"False", false},
		{"false", false},
	}
	for _, c := range cases {
		v, err := Coerce(c.raw, TypeBool)
		if err != nil {
			t.Errorf("Coerce(%q) failed: %v", c.raw, err)
			continue
		}
		if v.Type != TypeBool || v.B != c.want {
			t.Errorf("Coerce(%q): expected %v, got %+v", c.raw, c.want, v)
		}
	}
}

func TestCoerce_BoolRejectsOther(t *testing.T) {
	for _, raw := range []string{"1", "yes", `"true"`, ""} {
		if _, err := Coerce(raw, TypeBool); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}
