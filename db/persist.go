package db

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jose-oyuko/josedb/dberr"
	"github.com/jose-oyuko/josedb/schema"
	"github.com/jose-oyuko/josedb/table"
	"github.com/jose-oyuko/josedb/value"
)

// snapshot is the on-disk document shape: { "tables": { name: tableDoc } }.
type snapshot struct {
	Tables map[string]tableDoc `json:"tables"`
}

// tableDoc mirrors the persistence format's table record. Columns are
// encoded as ["name", "TYPE"] pairs via columnPair's custom marshaling.
type tableDoc struct {
	Columns    []columnPair    `json:"columns"`
	PrimaryKey *string         `json:"primary_key"`
	UniqueCols []string        `json:"unique_columns"`
	Rows       [][]interface{} `json:"rows"`
}

type columnPair struct {
	Name string
	Type schema.ColumnType
}

func (c columnPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{c.Name, string(c.Type)})
}

func (c *columnPair) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	c.Name, c.Type = pair[0], schema.ColumnType(pair[1])
	return nil
}

// Open creates a Database, loading it from path if the file exists and is
// non-empty. A missing file is treated as an empty Database bound to path
// for future saves, matching the embedding interface's open(path|none).
func Open(path string) (*Database, error) {
	d := New()
	d.path = path
	if path == "" {
		return d, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return d, nil
		}
		return nil, &dberr.IOError{Op: "stat", Err: err}
	}
	if info.Size() == 0 {
		return d, nil
	}
	if err := d.loadFromFile(path); err != nil {
		return nil, err
	}
	return d, nil
}

// SaveToFile serializes the entire Database to path, writing to a sibling
// temporary file and renaming into place so a concurrent reader never sees
// a truncated write.
func (d *Database) SaveToFile(path string) error {
	snap := snapshot{Tables: make(map[string]tableDoc, len(d.tables))}
	for name, t := range d.tables {
		snap.Tables[name] = encodeTable(t)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return &dberr.IOError{Op: "marshal", Err: err}
	}

	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return &dberr.IOError{Op: "write", Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &dberr.IOError{Op: "rename", Err: err}
	}
	return nil
}

// Save persists to the Database's configured path; a no-op if none was
// configured.
func (d *Database) Save() error {
	if d.path == "" {
		return nil
	}
	return d.SaveToFile(d.path)
}

func encodeTable(t *table.Table) tableDoc {
	cols := make([]columnPair, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = columnPair{Name: c.Name, Type: c.Type}
	}
	var pk *string
	if t.PrimaryKey != "" {
		pk = &t.PrimaryKey
	}
	rows := t.AllRows()
	encRows := make([][]interface{}, len(rows))
	for i, row := range rows {
		enc := make([]interface{}, len(row))
		for j, v := range row {
			enc[j] = v.GoValue()
		}
		encRows[i] = enc
	}
	return tableDoc{
		Columns:    cols,
		PrimaryKey: pk,
		UniqueCols: t.UniqueColumns,
		Rows:       encRows,
	}
}

// loadFromFile replaces d's tables with the ones decoded from path,
// rebuilding every Index by replaying rows through InsertRow.
func (d *Database) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &dberr.IOError{Op: "read", Err: err}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return &dberr.CorruptDatabaseError{Path: path, Reason: "not a valid JSON object"}
	}
	tablesRaw, ok := raw["tables"]
	if !ok {
		return &dberr.CorruptDatabaseError{Path: path, Reason: "missing 'tables' field"}
	}
	for field := range raw {
		if field != "tables" {
			return &dberr.CorruptDatabaseError{Path: path, Reason: "unknown top-level field: " + field}
		}
	}

	var docs map[string]tableDoc
	if err := json.Unmarshal(tablesRaw, &docs); err != nil {
		return &dberr.CorruptDatabaseError{Path: path, Reason: "malformed table record"}
	}

	tables := make(map[string]*table.Table, len(docs))
	for name, doc := range docs {
		t, err := decodeTable(path, name, doc)
		if err != nil {
			return err
		}
		tables[name] = t
	}

	d.tables = tables
	return nil
}

func decodeTable(path, name string, doc tableDoc) (*table.Table, error) {
	cols := make([]schema.Column, len(doc.Columns))
	for i, c := range doc.Columns {
		cols[i] = schema.Column{Name: c.Name, Type: c.Type}
	}
	primaryKey := ""
	if doc.PrimaryKey != nil {
		primaryKey = *doc.PrimaryKey
	}

	t, err := table.New(name, cols, primaryKey, doc.UniqueCols)
	if err != nil {
		return nil, &dberr.CorruptDatabaseError{Path: path, Reason: "table " + name + ": " + err.Error()}
	}

	kinds := make([]value.Kind, len(cols))
	for i, c := range cols {
		kinds[i] = c.Type.Kind()
	}

	for _, rawRow := range doc.Rows {
		if len(rawRow) != len(cols) {
			return nil, &dberr.CorruptDatabaseError{Path: path, Reason: "table " + name + ": row arity does not match declared columns"}
		}
		row := make([]value.Value, len(rawRow))
		for i, raw := range rawRow {
			row[i] = value.FromGoValue(raw, kinds[i])
		}
		if _, err := t.InsertRow(row); err != nil {
			return nil, &dberr.CorruptDatabaseError{Path: path, Reason: "table " + name + ": replay failed: " + err.Error()}
		}
	}
	return t, nil
}
