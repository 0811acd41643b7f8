package schema

import "github.com/jose-oyuko/josedb/value"

// ColumnType is a column's declared type, one of INTEGER, REAL, TEXT, BOOLEAN.
type ColumnType string

const (
	TypeInteger ColumnType = "INTEGER"
	TypeReal    ColumnType = "REAL"
	TypeText    ColumnType = "TEXT"
	TypeBoolean ColumnType = "BOOLEAN"
)

// Kind maps a declared ColumnType to the value.Kind used to reconstruct a
// Value when replaying a persisted row.
func (t ColumnType) Kind() value.Kind {
	switch t {
	case TypeInteger:
		return value.KindInteger
	case TypeReal:
		return value.KindReal
	case TypeBoolean:
		return value.KindBoolean
	default:
		return value.KindText
	}
}

// Column is a (name, declared type) pair.
type Column struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}
