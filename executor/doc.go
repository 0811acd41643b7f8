// Package executor dispatches a parsed Command against a db.Database,
// formats results, and auto-persists the database after every mutating
// statement that completed without error. It also exposes the
// introspection operations (list_table_names, describe) named by the
// embedding interface, and caches parsed Commands by their raw query text
// so a hot statement reused across calls (a shell history repeat, a web
// handler hit repeatedly) skips re-parsing.
package executor
