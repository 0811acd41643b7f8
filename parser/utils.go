package parser

import (
	"strconv"
	"strings"

	"github.com/jose-oyuko/josedb/dberr"
	"github.com/jose-oyuko/josedb/table"
	"github.com/jose-oyuko/josedb/value"
)

// splitTopLevel splits s on every occurrence of sep that is not inside a
// single- or double-quoted string, trimming whitespace from each piece.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	var quote byte
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == sep:
			parts = append(parts, strings.TrimSpace(s[start:i]))
			start = i + 1
		}
	}
	parts = append(parts, strings.TrimSpace(s[start:]))
	return parts
}

// parseLiteral infers a Value's variant from its textual form: a quoted
// string is Text, NULL (case-insensitive) is Null, true/false is Boolean,
// a bare integer is Integer, a bare decimal or exponent form is Real, and
// anything else is treated as an unquoted Text literal.
func parseLiteral(raw string) value.Value {
	s := strings.TrimSpace(raw)

	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return value.Text(s[1 : len(s)-1])
		}
	}

	switch strings.ToUpper(s) {
	case "NULL":
		return value.Null
	case "TRUE":
		return value.Boolean(true)
	case "FALSE":
		return value.Boolean(false)
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return value.Integer(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return value.Real(f)
	}

	return value.Text(s)
}

// parseColRef parses a bare or "table.column" column reference.
func parseColRef(raw string) table.ColumnRef {
	s := strings.TrimSpace(raw)
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		return table.ColumnRef{Table: s[:dot], Column: s[dot+1:]}
	}
	return table.ColumnRef{Column: s}
}

// parseColumnList parses a comma-separated column list, or nil for "*".
func parseColumnList(raw string) []table.ColumnRef {
	s := strings.TrimSpace(raw)
	if s == "*" || s == "" {
		return nil
	}
	parts := splitTopLevel(s, ',')
	out := make([]table.ColumnRef, len(parts))
	for i, p := range parts {
		out[i] = parseColRef(p)
	}
	return out
}

// parsePredicates parses an AND-chained WHERE body ("a = 1 AND b = 'x'")
// into a conjunctive list of equality Predicates. An empty body yields nil
// (match-all).
func parsePredicates(body string) ([]table.Predicate, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, nil
	}
	clauses := splitOnKeyword(body, "AND")
	out := make([]table.Predicate, 0, len(clauses))
	for _, clause := range clauses {
		col, lit, err := splitEquality(clause)
		if err != nil {
			return nil, err
		}
		out = append(out, table.Predicate{Column: col, Value: parseLiteral(lit)})
	}
	return out, nil
}

// parseAssignments parses a comma-separated SET body ("a = 1, b = 'x'")
// into a list of Assignments.
func parseAssignments(body string) ([]table.Assignment, error) {
	parts := splitTopLevel(body, ',')
	out := make([]table.Assignment, 0, len(parts))
	for _, part := range parts {
		col, lit, err := splitEquality(part)
		if err != nil {
			return nil, err
		}
		out = append(out, table.Assignment{Column: col, Value: parseLiteral(lit)})
	}
	return out, nil
}

// splitEquality splits "column = literal" into its two sides.
func splitEquality(clause string) (column, literal string, err error) {
	eq := strings.IndexByte(clause, '=')
	if eq < 0 {
		return "", "", &dberr.ParseError{Text: clause, Reason: "expected column = value"}
	}
	return strings.TrimSpace(clause[:eq]), strings.TrimSpace(clause[eq+1:]), nil
}

// splitOnKeyword splits body on a whole-word, case-insensitive keyword
// (here always "AND"), respecting quoted strings.
func splitOnKeyword(body, keyword string) []string {
	var parts []string
	var quote byte
	upper := strings.ToUpper(body)
	start := 0
	i := 0
	for i < len(body) {
		c := body[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
			i++
		case c == '\'' || c == '"':
			quote = c
			i++
		case wordAt(upper, i, keyword):
			parts = append(parts, strings.TrimSpace(body[start:i]))
			i += len(keyword)
			start = i
		default:
			i++
		}
	}
	parts = append(parts, strings.TrimSpace(body[start:]))
	return parts
}

// wordAt reports whether upper has keyword starting at i as a whole word
// (bounded by non-identifier characters or string edges).
func wordAt(upper string, i int, keyword string) bool {
	if !strings.HasPrefix(upper[i:], keyword) {
		return false
	}
	if i > 0 && isIdentChar(upper[i-1]) {
		return false
	}
	end := i + len(keyword)
	if end < len(upper) && isIdentChar(upper[end]) {
		return false
	}
	return true
}

func isIdentChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
