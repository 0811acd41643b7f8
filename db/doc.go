// Package db owns the name-to-Table registry for one database instance and
// its persistence to a single JSON snapshot file.
//
// A Database holds no locks and assumes a single caller, per the engine's
// cooperative single-threaded model. Indexes are never persisted; a load
// rebuilds them by replaying every row through Table.InsertRow.
package db
