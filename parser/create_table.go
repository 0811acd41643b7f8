package parser

import (
	"regexp"
	"strings"

	"github.com/jose-oyuko/josedb/dberr"
	"github.com/jose-oyuko/josedb/schema"
)

var createTableRe = regexp.MustCompile(`(?is)^CREATE TABLE\s+(\w+)\s*\((.*)\)\s*$`)

// parseCreateTable parses:
//
//	CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT UNIQUE, active BOOLEAN)
func parseCreateTable(sql string) (*Command, error) {
	m := createTableRe.FindStringSubmatch(sql)
	if m == nil {
		return nil, &dberr.ParseError{Text: sql, Reason: "invalid CREATE TABLE syntax"}
	}

	tableName, body := m[1], m[2]
	var columns []schema.Column
	var primaryKey string
	var uniqueColumns []string

	for _, colDef := range splitTopLevel(body, ',') {
		parts := strings.Fields(colDef)
		if len(parts) < 2 {
			return nil, &dberr.ParseError{Text: colDef, Reason: "invalid column definition"}
		}

		col := schema.Column{Name: parts[0], Type: schema.ColumnType(strings.ToUpper(parts[1]))}
		columns = append(columns, col)

		for i := 2; i < len(parts); i++ {
			switch strings.ToUpper(parts[i]) {
			case "PRIMARY":
				if i+1 < len(parts) && strings.ToUpper(parts[i+1]) == "KEY" {
					primaryKey = col.Name
					i++
				}
			case "UNIQUE":
				uniqueColumns = append(uniqueColumns, col.Name)
			}
		}
	}

	return &Command{
		Kind:          KindCreateTable,
		TableName:     tableName,
		Columns:       columns,
		PrimaryKey:    primaryKey,
		UniqueColumns: uniqueColumns,
	}, nil
}
