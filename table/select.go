package table

import (
	"github.com/jose-oyuko/josedb/dberr"
	"github.com/jose-oyuko/josedb/value"
)

// Predicate is a single equality test against a column: column = value.
// WHERE clauses are conjunctions (AND) of Predicates; the engine supports
// no other operator and no disjunction or parenthesization.
type Predicate struct {
	Column string
	Value  value.Value
}

// ResultRow is an ordered list of (column name, value) pairs, preserving
// the projection order requested by the caller rather than the table's
// declared column order.
type ResultRow []ResultCell

// ResultCell is a single named value within a ResultRow.
type ResultCell struct {
	Column string
	Value  value.Value
}

// Select returns every row matching all of preds (conjunctively), projected
// to columns. An empty columns list projects every declared column in
// table order. Matching a Null column against a Null predicate value
// succeeds, per the engine's preserved equality semantics.
func (t *Table) Select(preds []Predicate, columns []string) ([]ResultRow, error) {
	preds, err := t.normalizePredicates(preds)
	if err != nil {
		return nil, err
	}

	positions, err := t.resolveProjection(columns)
	if err != nil {
		return nil, err
	}

	candidates, err := t.candidateRowIDs(preds)
	if err != nil {
		return nil, err
	}

	out := make([]ResultRow, 0, len(candidates))
	for _, id := range candidates {
		row := t.rows[id]
		if !rowMatches(row, t.colPos, preds) {
			continue
		}
		out = append(out, projectRow(row, positions, t.colPos))
	}
	return out, nil
}

// resolveProjection validates the requested column list (or builds the
// full column list if none was requested) and returns their positions.
func (t *Table) resolveProjection(columns []string) ([]string, error) {
	if len(columns) == 0 {
		all := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			all[i] = c.Name
		}
		return all, nil
	}
	out := make([]string, len(columns))
	for i, c := range columns {
		bare, err := t.resolveOwnColumn(c)
		if err != nil {
			return nil, err
		}
		if _, ok := t.colPos[bare]; !ok {
			return nil, &dberr.UnknownColumnError{Table: t.Name, Column: bare}
		}
		out[i] = bare
	}
	return out, nil
}

// candidateRowIDs narrows the search to the smallest Index lookup among the
// predicate columns that carry an Index, returning sorted ids. Without any
// indexed predicate it scans every row.
func (t *Table) candidateRowIDs(preds []Predicate) ([]int64, error) {
	var best []int64
	bestSize := -1

	for _, p := range preds {
		if _, ok := t.colPos[p.Column]; !ok {
			return nil, &dberr.UnknownColumnError{Table: t.Name, Column: p.Column}
		}
		if p.Value.IsNull() {
			// Null is never indexed; an index lookup would wrongly report
			// zero candidates even though Null = Null matches.
			continue
		}
		idx, ok := t.indexes[p.Column]
		if !ok {
			continue
		}
		ids := idx.Lookup(p.Value)
		if bestSize == -1 || len(ids) < bestSize {
			best, bestSize = ids, len(ids)
		}
	}
	if bestSize != -1 {
		return best, nil
	}

	all := make([]int64, len(t.rows))
	for i := range t.rows {
		all[i] = int64(i)
	}
	return all, nil
}

// rowMatches tests every predicate against row, conjunctively.
func rowMatches(row []value.Value, colPos map[string]int, preds []Predicate) bool {
	for _, p := range preds {
		if !row[colPos[p.Column]].Equal(p.Value) {
			return false
		}
	}
	return true
}

// projectRow builds a ResultRow over the given ordered column names.
func projectRow(row []value.Value, columns []string, colPos map[string]int) ResultRow {
	out := make(ResultRow, len(columns))
	for i, c := range columns {
		out[i] = ResultCell{Column: c, Value: row[colPos[c]]}
	}
	return out
}
