package parser

import (
	"regexp"

	"github.com/jose-oyuko/josedb/dberr"
)

var deleteRe = regexp.MustCompile(`(?is)^DELETE FROM\s+(\w+)(?:\s+WHERE\s+(.+))?\s*$`)

// parseDelete parses:
//
//	DELETE FROM users WHERE id = 1
//	DELETE FROM users
func parseDelete(sql string) (*Command, error) {
	m := deleteRe.FindStringSubmatch(sql)
	if m == nil {
		return nil, &dberr.ParseError{Text: sql, Reason: "invalid DELETE syntax"}
	}

	preds, err := parsePredicates(m[2])
	if err != nil {
		return nil, err
	}
	return &Command{Kind: KindDelete, TableName: m[1], Where: preds}, nil
}
