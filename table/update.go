package table

import (
	"github.com/jose-oyuko/josedb/dberr"
	"github.com/jose-oyuko/josedb/value"
)

// Assignment is a single column = value pair within a SET clause.
type Assignment struct {
	Column string
	Value  value.Value
}

// Update applies assignments to every row matching all of preds
// conjunctively (an empty preds list matches every row), and returns the
// number of rows changed. The full matching set is validated against every
// constrained column before any row is mutated, so a uniqueness violation
// anywhere in the batch leaves the table untouched.
func (t *Table) Update(preds []Predicate, assignments []Assignment) (int, error) {
	assignments, err := t.normalizeAssignments(assignments)
	if err != nil {
		return 0, err
	}
	for _, a := range assignments {
		if _, ok := t.colPos[a.Column]; !ok {
			return 0, &dberr.UnknownColumnError{Table: t.Name, Column: a.Column}
		}
	}

	matches, err := t.matchingRowIDs(preds)
	if err != nil {
		return 0, err
	}
	if len(matches) == 0 {
		return 0, nil
	}

	if err := t.validateUpdate(matches, assignments); err != nil {
		return 0, err
	}

	for _, id := range matches {
		row := t.rows[id]
		for _, a := range assignments {
			pos := t.colPos[a.Column]
			if idx, constrained := t.indexes[a.Column]; constrained {
				idx.Remove(row[pos], id)
				// validateUpdate already confirmed this insert cannot fail.
				_ = idx.Insert(a.Value, id)
			}
			row[pos] = a.Value
		}
	}
	return len(matches), nil
}

// matchingRowIDs returns the ids of every row satisfying preds, in
// ascending order.
func (t *Table) matchingRowIDs(preds []Predicate) ([]int64, error) {
	preds, err := t.normalizePredicates(preds)
	if err != nil {
		return nil, err
	}
	candidates, err := t.candidateRowIDs(preds)
	if err != nil {
		return nil, err
	}
	out := make([]int64, 0, len(candidates))
	for _, id := range candidates {
		if rowMatches(t.rows[id], t.colPos, preds) {
			out = append(out, id)
		}
	}
	return out, nil
}

// validateUpdate simulates applying assignments to every row in matches and
// checks the result would not collide with any row outside the matching
// set (or within it, for constrained columns where two matched rows would
// end up sharing a value).
func (t *Table) validateUpdate(matches []int64, assignments []Assignment) error {
	matchSet := make(map[int64]bool, len(matches))
	for _, id := range matches {
		matchSet[id] = true
	}

	for col, idx := range t.indexes {
		newValue := value.Null
		changed := false
		for _, a := range assignments {
			if a.Column == col {
				newValue, changed = a.Value, true
			}
		}
		if !changed {
			continue
		}
		if !newValue.IsNull() && idx.Has(newValue) {
			for _, owner := range idx.Lookup(newValue) {
				if !matchSet[owner] {
					return &dberr.UniqueViolationError{Table: t.Name, Column: col, Value: newValue.String()}
				}
			}
		}
		if !newValue.IsNull() && len(matches) > 1 {
			// every matched row would take on the same new value
			return &dberr.UniqueViolationError{Table: t.Name, Column: col, Value: newValue.String()}
		}
	}
	return nil
}
