package table

import (
	"github.com/jose-oyuko/josedb/dberr"
	"github.com/jose-oyuko/josedb/value"
)

// InsertRow appends a new row, validating it against every constrained
// column before any mutation takes place. If a unique column's value
// already exists in another row, nothing is inserted and the row id of the
// new row is never allocated.
func (t *Table) InsertRow(values []value.Value) (int64, error) {
	if len(values) != len(t.Columns) {
		return 0, &dberr.SchemaMismatchError{Table: t.Name, Expected: len(t.Columns), Got: len(values)}
	}

	for col, idx := range t.indexes {
		pos := t.colPos[col]
		if idx.Has(values[pos]) {
			return 0, &dberr.UniqueViolationError{Table: t.Name, Column: col, Value: values[pos].String()}
		}
	}

	rowID := int64(len(t.rows))
	stored := make([]value.Value, len(values))
	copy(stored, values)
	t.rows = append(t.rows, stored)

	for col, idx := range t.indexes {
		pos := t.colPos[col]
		// Has already confirmed no collision; Insert cannot fail here.
		_ = idx.Insert(values[pos], rowID)
	}

	return rowID, nil
}
