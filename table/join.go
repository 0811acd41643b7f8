package table

import (
	"strings"

	"github.com/jose-oyuko/josedb/dberr"
	"github.com/jose-oyuko/josedb/value"
)

// InnerJoin matches rows of t (the left table) against other (the right
// table) where t's leftColumn equals other's rightColumn, returning the
// concatenation of each matching pair projected to columns. Columns may be
// qualified as "table.name" to disambiguate a name present in both tables;
// an unqualified name present in both is ambiguous and fails. A row whose
// join column is Null matches nothing.
func (t *Table) InnerJoin(leftColumn string, other *Table, rightColumn string, preds []Predicate, columns []ColumnRef) ([]ResultRow, error) {
	leftPos, ok := t.colPos[leftColumn]
	if !ok {
		return nil, &dberr.UnknownColumnError{Table: t.Name, Column: leftColumn}
	}
	rightPos, ok := other.colPos[rightColumn]
	if !ok {
		return nil, &dberr.UnknownColumnError{Table: other.Name, Column: rightColumn}
	}

	resolved, err := resolveJoinColumns(t, other, columns)
	if err != nil {
		return nil, err
	}

	rightByKey := other.indexes[rightColumn]
	out := make([]ResultRow, 0)

	for li := range t.rows {
		leftRow := t.rows[li]
		if leftRow[leftPos].IsNull() {
			continue
		}
		var rightIDs []int64
		if rightByKey != nil {
			rightIDs = rightByKey.Lookup(leftRow[leftPos])
		} else {
			rightIDs = other.scanMatchingValue(rightPos, leftRow[leftPos])
		}
		for _, ri := range rightIDs {
			rightRow := other.rows[ri]
			matched, err := joinRowMatches(leftRow, t, rightRow, other, preds)
			if err != nil {
				return nil, err
			}
			if !matched {
				continue
			}
			out = append(out, projectJoinRow(leftRow, t, rightRow, other, resolved))
		}
	}
	return out, nil
}

// ColumnRef names a column to project from a joined pair, optionally
// qualified with its owning table name.
type ColumnRef struct {
	Table  string // "" if unqualified
	Column string
}

// resolvedJoinColumn records which side a ColumnRef was resolved against.
type resolvedJoinColumn struct {
	ref       ColumnRef
	fromLeft  bool
	outputCol string
}

func resolveJoinColumns(left, right *Table, columns []ColumnRef) ([]resolvedJoinColumn, error) {
	if len(columns) == 0 {
		out := make([]resolvedJoinColumn, 0, len(left.Columns)+len(right.Columns))
		for _, c := range left.Columns {
			out = append(out, resolvedJoinColumn{ref: ColumnRef{Table: left.Name, Column: c.Name}, fromLeft: true, outputCol: left.Name + "." + c.Name})
		}
		for _, c := range right.Columns {
			out = append(out, resolvedJoinColumn{ref: ColumnRef{Table: right.Name, Column: c.Name}, fromLeft: false, outputCol: right.Name + "." + c.Name})
		}
		return out, nil
	}

	out := make([]resolvedJoinColumn, 0, len(columns))
	for _, ref := range columns {
		r, err := resolveOneJoinColumn(left, right, ref)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func resolveOneJoinColumn(left, right *Table, ref ColumnRef) (resolvedJoinColumn, error) {
	if ref.Table != "" {
		switch ref.Table {
		case left.Name:
			if _, ok := left.colPos[ref.Column]; !ok {
				return resolvedJoinColumn{}, &dberr.UnknownColumnError{Table: left.Name, Column: ref.Column}
			}
			return resolvedJoinColumn{ref: ref, fromLeft: true, outputCol: ref.Column}, nil
		case right.Name:
			if _, ok := right.colPos[ref.Column]; !ok {
				return resolvedJoinColumn{}, &dberr.UnknownColumnError{Table: right.Name, Column: ref.Column}
			}
			return resolvedJoinColumn{ref: ref, fromLeft: false, outputCol: ref.Column}, nil
		default:
			return resolvedJoinColumn{}, &dberr.UnknownTableError{Table: ref.Table}
		}
	}

	_, inLeft := left.colPos[ref.Column]
	_, inRight := right.colPos[ref.Column]
	switch {
	case inLeft && inRight:
		return resolvedJoinColumn{}, &dberr.AmbiguousColumnError{Column: ref.Column, LeftTable: left.Name, RightTable: right.Name}
	case inLeft:
		return resolvedJoinColumn{ref: ref, fromLeft: true, outputCol: ref.Column}, nil
	case inRight:
		return resolvedJoinColumn{ref: ref, fromLeft: false, outputCol: ref.Column}, nil
	default:
		return resolvedJoinColumn{}, &dberr.UnknownColumnError{Table: left.Name + "/" + right.Name, Column: ref.Column}
	}
}

// scanMatchingValue linearly finds every row id in t whose column at pos
// equals v, used when the join column carries no Index.
func (t *Table) scanMatchingValue(pos int, v value.Value) []int64 {
	var out []int64
	for i, row := range t.rows {
		if row[pos].Equal(v) {
			out = append(out, int64(i))
		}
	}
	return out
}

// joinRowMatches applies preds against the combined left/right row. A
// predicate column may be qualified as "table.column"; unqualified names
// resolve against whichever side declares them, failing Ambiguous if both
// do.
func joinRowMatches(left []value.Value, leftTable *Table, right []value.Value, rightTable *Table, preds []Predicate) (bool, error) {
	for _, p := range preds {
		v, err := resolveJoinPredicateValue(left, leftTable, right, rightTable, p.Column)
		if err != nil {
			return false, err
		}
		if !v.Equal(p.Value) {
			return false, nil
		}
	}
	return true, nil
}

func resolveJoinPredicateValue(left []value.Value, leftTable *Table, right []value.Value, rightTable *Table, column string) (value.Value, error) {
	if dot := strings.IndexByte(column, '.'); dot >= 0 {
		tbl, col := column[:dot], column[dot+1:]
		switch tbl {
		case leftTable.Name:
			pos, ok := leftTable.colPos[col]
			if !ok {
				return value.Null, &dberr.UnknownColumnError{Table: leftTable.Name, Column: col}
			}
			return left[pos], nil
		case rightTable.Name:
			pos, ok := rightTable.colPos[col]
			if !ok {
				return value.Null, &dberr.UnknownColumnError{Table: rightTable.Name, Column: col}
			}
			return right[pos], nil
		default:
			return value.Null, &dberr.UnknownTableError{Table: tbl}
		}
	}

	lp, inLeft := leftTable.colPos[column]
	rp, inRight := rightTable.colPos[column]
	switch {
	case inLeft && inRight:
		return value.Null, &dberr.AmbiguousColumnError{Column: column, LeftTable: leftTable.Name, RightTable: rightTable.Name}
	case inLeft:
		return left[lp], nil
	case inRight:
		return right[rp], nil
	default:
		return value.Null, &dberr.UnknownColumnError{Table: leftTable.Name + "/" + rightTable.Name, Column: column}
	}
}

func projectJoinRow(left []value.Value, leftTable *Table, right []value.Value, rightTable *Table, resolved []resolvedJoinColumn) ResultRow {
	out := make(ResultRow, len(resolved))
	for i, r := range resolved {
		if r.fromLeft {
			out[i] = ResultCell{Column: r.outputCol, Value: left[leftTable.colPos[r.ref.Column]]}
		} else {
			out[i] = ResultCell{Column: r.outputCol, Value: right[rightTable.colPos[r.ref.Column]]}
		}
	}
	return out
}
