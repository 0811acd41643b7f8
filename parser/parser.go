package parser

import (
	"strings"

	"github.com/jose-oyuko/josedb/dberr"
)

// Parser dispatches a query's text to the statement-specific parsing
// function for its leading keyword.
type Parser struct{}

// New creates a Parser. A Parser holds no state; a single instance is
// reused by the executor across every call.
func New() *Parser {
	return &Parser{}
}

// Parse converts one statement's text into a Command.
func (p *Parser) Parse(text string) (*Command, error) {
	sql := strings.TrimSpace(text)
	upper := strings.ToUpper(sql)

	switch {
	case strings.HasPrefix(upper, "CREATE TABLE"):
		return parseCreateTable(sql)
	case strings.HasPrefix(upper, "DROP TABLE"):
		return parseDropTable(sql)
	case strings.HasPrefix(upper, "INSERT INTO"):
		return parseInsert(sql)
	case strings.HasPrefix(upper, "SELECT"):
		return parseSelect(sql)
	case strings.HasPrefix(upper, "UPDATE"):
		return parseUpdate(sql)
	case strings.HasPrefix(upper, "DELETE FROM"):
		return parseDelete(sql)
	default:
		return nil, &dberr.ParseError{Text: sql, Reason: "unrecognized statement"}
	}
}
