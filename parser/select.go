package parser

import (
	"regexp"
	"strings"

	"github.com/jose-oyuko/josedb/dberr"
)

var selectRe = regexp.MustCompile(`(?is)^SELECT\s+(.+?)\s+FROM\s+(\w+)` +
	`(?:\s+JOIN\s+(\w+)\s+ON\s+([\w.]+)\s*=\s*([\w.]+))?` +
	`(?:\s+WHERE\s+(.+))?\s*$`)

// parseSelect parses:
//
//	SELECT * FROM users
//	SELECT name, email FROM users WHERE id = 1 AND active = true
//	SELECT users.name, orders.total FROM users JOIN orders ON users.id = orders.user_id WHERE orders.total = 9.5
func parseSelect(sql string) (*Command, error) {
	m := selectRe.FindStringSubmatch(sql)
	if m == nil {
		return nil, &dberr.ParseError{Text: sql, Reason: "invalid SELECT syntax"}
	}

	projectionStr, tableName, joinTable, leftCol, rightCol, whereStr := m[1], m[2], m[3], m[4], m[5], m[6]

	preds, err := parsePredicates(whereStr)
	if err != nil {
		return nil, err
	}

	cmd := &Command{
		Kind:       KindSelect,
		TableName:  tableName,
		Projection: parseColumnList(projectionStr),
		Where:      preds,
	}

	if joinTable != "" {
		leftTable, leftColumn, err := splitJoinColumn(leftCol, tableName)
		if err != nil {
			return nil, err
		}
		rightTable, rightColumn, err := splitJoinColumn(rightCol, joinTable)
		if err != nil {
			return nil, err
		}
		if leftTable != tableName || rightTable != joinTable {
			return nil, &dberr.ParseError{Text: sql, Reason: "JOIN ON condition must reference the joined tables"}
		}
		cmd.Join = &JoinClause{Table: joinTable, LeftColumn: leftColumn, RightColumn: rightColumn}
	}

	return cmd, nil
}

// splitJoinColumn splits a "table.column" reference used in a JOIN's ON
// clause, defaulting to want (the expected owning table) if unqualified.
func splitJoinColumn(ref, want string) (table, column string, err error) {
	if dot := strings.IndexByte(ref, '.'); dot >= 0 {
		return ref[:dot], ref[dot+1:], nil
	}
	return want, ref, nil
}
