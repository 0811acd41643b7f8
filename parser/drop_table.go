package parser

import (
	"regexp"

	"github.com/jose-oyuko/josedb/dberr"
)

var dropTableRe = regexp.MustCompile(`(?is)^DROP TABLE\s+(\w+)\s*$`)

// parseDropTable parses: DROP TABLE users
func parseDropTable(sql string) (*Command, error) {
	m := dropTableRe.FindStringSubmatch(sql)
	if m == nil {
		return nil, &dberr.ParseError{Text: sql, Reason: "invalid DROP TABLE syntax"}
	}
	return &Command{Kind: KindDropTable, TableName: m[1]}, nil
}
