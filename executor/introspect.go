package executor

import "github.com/jose-oyuko/josedb/schema"

// ListTables returns every table name, sorted.
func (e *Executor) ListTables() []string {
	return e.db.ListTableNames()
}

// TableDescription is the result of describing a table: its columns (with
// declared types), primary key, and unique columns.
type TableDescription struct {
	Name          string
	Columns       []schema.Column
	PrimaryKey    string
	UniqueColumns []string
	RowCount      int
}

// Describe returns the schema and row count of the named table.
func (e *Executor) Describe(name string) (TableDescription, error) {
	t, err := e.db.GetTable(name)
	if err != nil {
		return TableDescription{}, err
	}
	return TableDescription{
		Name:          t.Name,
		Columns:       t.Columns,
		PrimaryKey:    t.PrimaryKey,
		UniqueColumns: t.UniqueColumns,
		RowCount:      t.RowCount(),
	}, nil
}
