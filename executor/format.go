package executor

import (
	"strings"

	"github.com/jose-oyuko/josedb/table"
)

// FormatRows renders ResultRows the way the shell displays them: one row
// per line, "col=value" pairs separated by spaces.
func FormatRows(rows []table.ResultRow) string {
	if len(rows) == 0 {
		return "(no rows)"
	}
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(cell.Column)
			b.WriteByte('=')
			b.WriteString(cell.Value.String())
		}
	}
	return b.String()
}
