// Package table implements the storage, constraint enforcement, and
// equality-filtered read/write operations for a single named table.
//
// A Table owns its Columns, its row vector, and an Index for every
// primary-key or UNIQUE column. Row ids are positions in the row vector;
// they are not stable across Delete. Delete removes a row by shifting
// every row above it down one position, the same as removing an element
// from the middle of a plain slice, so survivors keep their relative
// order.
package table
