package db

import (
	"sort"

	"github.com/jose-oyuko/josedb/dberr"
	"github.com/jose-oyuko/josedb/schema"
	"github.com/jose-oyuko/josedb/table"
)

// Database is a named collection of Tables.
type Database struct {
	tables map[string]*table.Table
	path   string // "" for an in-memory-only database
}

// New creates an empty database with no backing file.
func New() *Database {
	return &Database{tables: make(map[string]*table.Table)}
}

// CreateTable registers a new table, failing TableExists if the name is
// already taken.
func (d *Database) CreateTable(name string, columns []schema.Column, primaryKey string, uniqueColumns []string) error {
	if _, exists := d.tables[name]; exists {
		return &dberr.TableExistsError{Table: name}
	}
	t, err := table.New(name, columns, primaryKey, uniqueColumns)
	if err != nil {
		return err
	}
	d.tables[name] = t
	return nil
}

// DropTable removes a table and its indexes. Indexes are never persisted
// so there is nothing else to clean up.
func (d *Database) DropTable(name string) error {
	if _, ok := d.tables[name]; !ok {
		return &dberr.UnknownTableError{Table: name}
	}
	delete(d.tables, name)
	return nil
}

// GetTable returns the named table, or UnknownTable.
func (d *Database) GetTable(name string) (*table.Table, error) {
	t, ok := d.tables[name]
	if !ok {
		return nil, &dberr.UnknownTableError{Table: name}
	}
	return t, nil
}

// ListTableNames returns every table name, sorted for deterministic output.
func (d *Database) ListTableNames() []string {
	out := make([]string, 0, len(d.tables))
	for name := range d.tables {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Path returns the configured persistence path, or "" if none.
func (d *Database) Path() string { return d.path }
