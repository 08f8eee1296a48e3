package schema

import (
	"encoding/json"

	"primdb/internal/sql"
)

// columnJSON is the wire form of a ColumnDef as stored by the gateways.
type columnJSON struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// MarshalJSON stores the column type as its spec token ("int", "str",
// "bool") so persisted metadata stays readable and stable.
func (c ColumnDef) MarshalJSON() ([]byte, error) {
	return json.Marshal(columnJSON{Name: c.Name, Type: c.Type.String()})
}

// UnmarshalJSON rejects unknown type tokens, so a corrupted metadata
// record surfaces as a SchemaError instead of a zero-valued column.
func (c *ColumnDef) UnmarshalJSON(data []byte) error {
	var w columnJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	dt, err := sql.ParseDataType(w.Type)
	if err != nil {
		return err
	}
	c.Name = w.Name
	c.Type = dt
	return nil
}
