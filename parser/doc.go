// Package parser converts a query's text into a Command the executor can
// run against a db.Database. Each statement kind — CREATE TABLE,
// DROP TABLE, INSERT, SELECT (optionally with a JOIN), UPDATE, DELETE —
// has its own small regexp-driven parsing function, dispatched on the
// statement's leading keyword.
//
// The grammar supports AND-chained WHERE predicates, a column projection
// list, multiple SET assignments, and "table.column" qualification in any
// column-reference position — beyond single-predicate SQL, but still just
// equality tests with no OR, no parentheses, and no subqueries.
package parser
