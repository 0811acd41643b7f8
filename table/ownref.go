package table

import (
	"strings"

	"github.com/jose-oyuko/josedb/dberr"
)

// resolveOwnColumn accepts a column reference that may be qualified as
// "tablename.column" and validates the qualifier against this table's own
// name, returning the bare column name. An unqualified reference passes
// through unchanged. This lets a WHERE or SET clause self-qualify its
// columns ("UPDATE users SET users.name = ...") the same way a JOIN's ON
// and WHERE clauses may.
func (t *Table) resolveOwnColumn(column string) (string, error) {
	dot := strings.IndexByte(column, '.')
	if dot < 0 {
		return column, nil
	}
	tbl, col := column[:dot], column[dot+1:]
	if tbl != t.Name {
		return "", &dberr.UnknownTableError{Table: tbl}
	}
	return col, nil
}

// normalizePredicates resolves every predicate's column reference against
// t's own name, returning a copy with bare column names.
func (t *Table) normalizePredicates(preds []Predicate) ([]Predicate, error) {
	if len(preds) == 0 {
		return preds, nil
	}
	out := make([]Predicate, len(preds))
	for i, p := range preds {
		col, err := t.resolveOwnColumn(p.Column)
		if err != nil {
			return nil, err
		}
		out[i] = Predicate{Column: col, Value: p.Value}
	}
	return out, nil
}

// normalizeAssignments resolves every assignment's column reference against
// t's own name, returning a copy with bare column names.
func (t *Table) normalizeAssignments(assignments []Assignment) ([]Assignment, error) {
	out := make([]Assignment, len(assignments))
	for i, a := range assignments {
		col, err := t.resolveOwnColumn(a.Column)
		if err != nil {
			return nil, err
		}
		out[i] = Assignment{Column: col, Value: a.Value}
	}
	return out, nil
}
