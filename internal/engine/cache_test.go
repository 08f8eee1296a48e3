package engine

import (
	"errors"
	"testing"

	"primdb/internal/sql"
)

func TestCache_GetOrCompute(t *testing.T) {
	c := NewCache()
	calls := 0
	compute := func() ([]sql.Row, error) {
		calls++
		return []sql.Row{{"ID": sql.NewInt(1)}}, nil
	}

	first, err := c.GetOrCompute("k", compute)
	if err != nil {
		t.Fatalf("GetOrCompute failed: %v", err)
	}
	second, err := c.GetOrCompute("k", compute)
	if err != nil {
		t.Fatalf("GetOrCompute failed: %v", err)
	}

	if calls != 1 {
		t.Fatalf("expected a single compute call, got %d", calls)
	}
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("unexpected results: %v / %v", first, second)
	}
}

func TestCache_FailedComputeNotCached(t *testing.T) {
	c := NewCache()
	boom := errors.New("boom")

	if _, err := c.GetOrCompute("k", func() ([]sql.Row, error) { return nil, boom }); err != boom {
		t.Fatalf("expected compute error, got %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("failed compute must not be cached, len=%d", c.Len())
	}
}

func TestCache_Clear(t *testing.T) {
	c := NewCache()
	_, _ = c.GetOrCompute("a", func() ([]sql.Row, error) { return nil, nil })
	_, _ = c.GetOrCompute("b", func() ([]sql.Row, error) { return nil, nil })

	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("expected empty cache after Clear, len=%d", c.Len())
	}
}

func TestCacheKey_Distinct(t *testing.T) {
	noPred := CacheKey("users", nil)
	intPred := CacheKey("users", &sql.Predicate{Column: "age", Value: sql.NewInt(1)})
	strPred := CacheKey("users", &sql.Predicate{Column: "age", Value: sql.NewStr("1")})
	otherTable := CacheKey("orders", &sql.Predicate{Column: "age", Value: sql.NewInt(1)})

	keys := map[string]bool{noPred: true, intPred: true, strPred: true, otherTable: true}
	if len(keys) != 4 {
		t.Fatalf("cache keys collide: %q %q %q %q", noPred, intPred, strPred, otherTable)
	}
}
