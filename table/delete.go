package table

// Delete removes every row matching all of preds conjunctively (an empty
// preds list deletes every row) and returns the number of rows removed.
// Survivors keep their relative order: deleting row i shifts every row
// after it down by one position, the same as removing an element from the
// middle of a plain slice. Matches are processed from the highest id down
// so that shifting the rows above one deleted id never disturbs the
// position of an id still waiting to be deleted.
func (t *Table) Delete(preds []Predicate) (int, error) {
	matches, err := t.matchingRowIDs(preds)
	if err != nil {
		return 0, err
	}
	for i := len(matches) - 1; i >= 0; i-- {
		t.deleteRow(matches[i])
	}
	return len(matches), nil
}

// deleteRow removes the row at id, shifting every row above it down one
// position and fixing up each shifted row's index entries to its new id.
func (t *Table) deleteRow(id int64) {
	row := t.rows[id]
	for col, idx := range t.indexes {
		pos := t.colPos[col]
		idx.Remove(row[pos], id)
	}
	last := int64(len(t.rows) - 1)
	for i := id + 1; i <= last; i++ {
		t.rows[i-1] = t.rows[i]
		t.reindexShiftedRow(i, i-1)
	}
	t.rows = t.rows[:last]
}

// reindexShiftedRow updates every constrained column's Index for the row
// that moved from oldID down to newID.
func (t *Table) reindexShiftedRow(oldID, newID int64) {
	row := t.rows[newID]
	for col, idx := range t.indexes {
		pos := t.colPos[col]
		idx.Remove(row[pos], oldID)
		_ = idx.Insert(row[pos], newID)
	}
}
