package parser

import (
	"regexp"

	"github.com/jose-oyuko/josedb/dberr"
)

var updateRe = regexp.MustCompile(`(?is)^UPDATE\s+(\w+)\s+SET\s+(.+?)(?:\s+WHERE\s+(.+))?\s*$`)

// parseUpdate parses:
//
//	UPDATE users SET name = 'Bob', active = false WHERE id = 1
//	UPDATE users SET active = false
func parseUpdate(sql string) (*Command, error) {
	m := updateRe.FindStringSubmatch(sql)
	if m == nil {
		return nil, &dberr.ParseError{Text: sql, Reason: "invalid UPDATE syntax"}
	}

	tableName, setStr, whereStr := m[1], m[2], m[3]

	assignments, err := parseAssignments(setStr)
	if err != nil {
		return nil, err
	}
	preds, err := parsePredicates(whereStr)
	if err != nil {
		return nil, err
	}

	return &Command{Kind: KindUpdate, TableName: tableName, Set: assignments, Where: preds}, nil
}
