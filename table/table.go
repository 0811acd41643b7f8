package table

import (
	"github.com/jose-oyuko/josedb/dberr"
	"github.com/jose-oyuko/josedb/index"
	"github.com/jose-oyuko/josedb/schema"
	"github.com/jose-oyuko/josedb/value"
)

// Table is a named, schema-bearing, row-oriented collection.
type Table struct {
	Name          string
	Columns       []schema.Column
	PrimaryKey    string // "" if none declared
	UniqueColumns []string

	rows    [][]value.Value
	indexes map[string]*index.Index // constrained column -> index
	colPos  map[string]int          // column name -> position
}

// New constructs an empty table, initializing an Index for the primary key
// and for every additional unique column. Fails if a column name repeats,
// or if the primary key or a unique column doesn't name a declared column.
func New(name string, columns []schema.Column, primaryKey string, uniqueColumns []string) (*Table, error) {
	colPos := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := colPos[c.Name]; dup {
			return nil, &dberr.ParseError{Text: c.Name, Reason: "duplicate column name"}
		}
		colPos[c.Name] = i
	}

	if primaryKey != "" {
		if _, ok := colPos[primaryKey]; !ok {
			return nil, &dberr.UnknownColumnError{Table: name, Column: primaryKey}
		}
	}

	uniqueSet := make(map[string]bool, len(uniqueColumns))
	for _, c := range uniqueColumns {
		if _, ok := colPos[c]; !ok {
			return nil, &dberr.UnknownColumnError{Table: name, Column: c}
		}
		uniqueSet[c] = true
	}
	// Invariant 2: the primary key is always in effect among the unique
	// constrained columns, whether or not the caller also listed it.
	if primaryKey != "" {
		uniqueSet[primaryKey] = true
	}

	t := &Table{
		Name:          name,
		Columns:       columns,
		PrimaryKey:    primaryKey,
		UniqueColumns: uniqueColumns,
		rows:          nil,
		indexes:       make(map[string]*index.Index, len(uniqueSet)),
		colPos:        colPos,
	}
	for col := range uniqueSet {
		t.indexes[col] = index.New(name, col, true)
	}
	return t, nil
}

// ColumnPosition returns the position of the named column, and whether it
// exists.
func (t *Table) ColumnPosition(name string) (int, bool) {
	p, ok := t.colPos[name]
	return p, ok
}

// RowCount returns the number of live rows.
func (t *Table) RowCount() int { return len(t.rows) }

// IsConstrained reports whether the named column carries a primary-key or
// UNIQUE constraint (and therefore has an Index).
func (t *Table) IsConstrained(name string) bool {
	_, ok := t.indexes[name]
	return ok
}

// AllRows returns a defensive copy of every live row, in declared column
// order, for callers that need raw values rather than a ResultRow (namely
// persistence).
func (t *Table) AllRows() [][]value.Value {
	out := make([][]value.Value, len(t.rows))
	for i, row := range t.rows {
		cp := make([]value.Value, len(row))
		copy(cp, row)
		out[i] = cp
	}
	return out
}
