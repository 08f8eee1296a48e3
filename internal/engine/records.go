package engine

import (
	"primdb/internal/dberr"
	"primdb/internal/schema"
	"primdb/internal/sql"
)

// InsertRow validates raw values against the schema, coerces them and
// appends a new row with a freshly assigned ID. It returns the updated
// rowset and the new ID. The first coercion failure aborts the whole
// insert; no partial row is ever committed.
func InsertRow(s schema.Schema, rows []sql.Row, rawValues []string) ([]sql.Row, int64, error) {
	userCols := s.UserColumns()
	if len(rawValues) != len(userCols) {
		return nil, 0, dberr.Validation("table expects %d values (%s), got %d",
			len(userCols), schema.Schema(userCols).Summary(), len(rawValues))
	}

	row := make(sql.Row, len(s))
	for i, col := range userCols {
		v, err := sql.Coerce(rawValues[i], col.Type)
		if err != nil {
			return nil, 0, dberr.Type("column %q: %s", col.Name, dberr.Msg(err))
		}
		row[col.Name] = v
	}

	id := NextID(rows)
	row[schema.IDColumn] = sql.NewInt(id)

	return append(rows, row), id, nil
}

// NextID computes the ID for the next insert: 1 for an empty table,
// max(existing IDs)+1 otherwise. IDs are never reused after deletes.
// Rows whose ID field is missing or not an integer are ignored for the
// computation, not repaired.
func NextID(rows []sql.Row) int64 {
	var max int64
	for _, r := range rows {
		id, ok := r[schema.IDColumn]
		if !ok || id.Type != sql.TypeInt {
			continue
		}
		if id.I64 > max {
			max = id.I64
		}
	}
	return max + 1
}

// Filter returns the rows matching the predicate, or the full rowset when
// the predicate is nil. Matching is exact type-aware equality; the
// predicate value is already typed, no coercion happens here. Callers
// must not mutate the returned rows.
func Filter(rows []sql.Row, p *sql.Predicate) []sql.Row {
	if p == nil {
		return rows
	}
	var out []sql.Row
	for _, r := range rows {
		if matches(r, *p) {
			out = append(out, r)
		}
	}
	return out
}

// UpdateRows assigns set.Value to set.Column on every row matching the
// predicate, mutating rows in place, and returns the IDs of the matched
// rows. An empty result is "no matching records", not an error. A matched
// row with a missing or non-integer ID is still updated but skipped in
// the ID collection.
func UpdateRows(rows []sql.Row, set sql.Assignment, p sql.Predicate) []int64 {
	var matched []int64
	for _, r := range rows {
		if !matches(r, p) {
			continue
		}
		r[set.Column] = set.Value
		if id, ok := r[schema.IDColumn]; ok && id.Type == sql.TypeInt {
			matched = append(matched, id.I64)
		}
	}
	return matched
}

// DeleteRows partitions the rowset by the predicate and returns the kept
// rows plus the IDs of the removed ones, with the same no-match
// convention as UpdateRows.
func DeleteRows(rows []sql.Row, p sql.Predicate) ([]sql.Row, []int64) {
	var (
		kept    []sql.Row
		removed []int64
	)
	for _, r := range rows {
		if matches(r, p) {
			if id, ok := r[schema.IDColumn]; ok && id.Type == sql.TypeInt {
				removed = append(removed, id.I64)
			}
			continue
		}
		kept = append(kept, r)
	}
	return kept, removed
}

func matches(r sql.Row, p sql.Predicate) bool {
	v, ok := r[p.Column]
	return ok && v.Equal(p.Value)
}
