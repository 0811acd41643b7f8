package parser

import (
	"github.com/jose-oyuko/josedb/schema"
	"github.com/jose-oyuko/josedb/table"
	"github.com/jose-oyuko/josedb/value"
)

// Kind tags which statement a Command represents.
type Kind string

const (
	KindCreateTable Kind = "CREATE_TABLE"
	KindDropTable   Kind = "DROP_TABLE"
	KindInsert      Kind = "INSERT"
	KindSelect      Kind = "SELECT"
	KindUpdate      Kind = "UPDATE"
	KindDelete      Kind = "DELETE"
)

// Command is the structured result of parsing one statement. Only the
// fields relevant to Kind are populated.
type Command struct {
	Kind      Kind
	TableName string

	// CREATE TABLE
	Columns       []schema.Column
	PrimaryKey    string
	UniqueColumns []string

	// INSERT
	Values []value.Value

	// SELECT / UPDATE / DELETE
	Where []table.Predicate

	// SELECT
	Projection []table.ColumnRef
	Join       *JoinClause

	// UPDATE
	Set []table.Assignment
}

// JoinClause describes a SELECT's INNER JOIN: TableName JOIN Table ON
// LeftColumn = RightColumn, where LeftColumn belongs to TableName and
// RightColumn belongs to Table.
type JoinClause struct {
	Table       string
	LeftColumn  string
	RightColumn string
}
