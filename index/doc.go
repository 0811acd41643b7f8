// Package index provides hash-based indexing for fast column value lookups.
//
// An Index is a multimap from a column value to the set of row ids holding
// that value, optionally constrained to at most one row per value (the
// Unique flag, set for primary-key and UNIQUE columns). Null values are
// never inserted — lookups on Null always return the empty set, and Null
// never participates in uniqueness.
//
// Usage example:
//
//	idx := index.New("users", "id", true)
//	if err := idx.Insert(value.Integer(1), 0); err != nil {
//		// UniqueViolation
//	}
//	rowIDs := idx.Lookup(value.Integer(1)) // [0]
//	idx.Remove(value.Integer(1), 0)
package index
