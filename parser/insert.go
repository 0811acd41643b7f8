package parser

import (
	"regexp"

	"github.com/jose-oyuko/josedb/dberr"
	"github.com/jose-oyuko/josedb/value"
)

var insertRe = regexp.MustCompile(`(?is)^INSERT INTO\s+(\w+)\s+VALUES\s*\((.*)\)\s*$`)

// parseInsert parses: INSERT INTO users VALUES (1, 'Ada', true)
func parseInsert(sql string) (*Command, error) {
	m := insertRe.FindStringSubmatch(sql)
	if m == nil {
		return nil, &dberr.ParseError{Text: sql, Reason: "invalid INSERT syntax"}
	}

	tableName, body := m[1], m[2]
	literals := splitTopLevel(body, ',')
	values := make([]value.Value, len(literals))
	for i, lit := range literals {
		values[i] = parseLiteral(lit)
	}

	return &Command{Kind: KindInsert, TableName: tableName, Values: values}, nil
}
