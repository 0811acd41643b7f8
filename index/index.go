package index

import (
	"sort"

	"github.com/jose-oyuko/josedb/dberr"
	"github.com/jose-oyuko/josedb/value"
)

// Index is a hash-based multimap from a column value to the row ids holding
// it, optionally constrained to at most one row per non-Null value.
type Index struct {
	Column string
	Unique bool
	Table  string // owning table name, used for UniqueViolation messages
	data   map[string][]int64
}

// New creates an empty index on the given column.
func New(table, column string, unique bool) *Index {
	return &Index{
		Column: column,
		Unique: unique,
		Table:  table,
		data:   make(map[string][]int64),
	}
}

// Insert adds (v, rowID). Null values are never inserted. Returns
// UniqueViolation if the index is unique and v already maps to a row.
func (idx *Index) Insert(v value.Value, rowID int64) error {
	if v.IsNull() {
		return nil
	}
	key := v.HashKey()
	if idx.Unique {
		if ids, found := idx.data[key]; found && len(ids) > 0 {
			return &dberr.UniqueViolationError{Table: idx.Table, Column: idx.Column, Value: v.String()}
		}
	}
	idx.data[key] = append(idx.data[key], rowID)
	return nil
}

// Remove deletes the (v, rowID) entry, pruning the key if it becomes empty.
func (idx *Index) Remove(v value.Value, rowID int64) {
	if v.IsNull() {
		return
	}
	key := v.HashKey()
	ids, found := idx.data[key]
	if !found {
		return
	}
	out := ids[:0]
	for _, id := range ids {
		if id != rowID {
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		delete(idx.data, key)
	} else {
		idx.data[key] = out
	}
}

// Lookup returns the row ids mapped from v, ascending, or nil if v is Null
// or has no entries.
func (idx *Index) Lookup(v value.Value) []int64 {
	if v.IsNull() {
		return nil
	}
	ids := idx.data[v.HashKey()]
	if len(ids) == 0 {
		return nil
	}
	out := make([]int64, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Has reports whether v already has at least one entry (used by Insert-style
// pre-checks that need a boolean rather than the id list).
func (idx *Index) Has(v value.Value) bool {
	if v.IsNull() {
		return false
	}
	ids, found := idx.data[v.HashKey()]
	return found && len(ids) > 0
}

// Rebuild discards all prior state and reinserts the given (value, rowID)
// pairs in order, failing UniqueViolation if the input itself violates
// uniqueness.
func (idx *Index) Rebuild(entries []Entry) error {
	idx.data = make(map[string][]int64)
	for _, e := range entries {
		if err := idx.Insert(e.Value, e.RowID); err != nil {
			return err
		}
	}
	return nil
}

// Entry is a single (value, rowID) pair, used by Rebuild.
type Entry struct {
	Value value.Value
	RowID int64
}
