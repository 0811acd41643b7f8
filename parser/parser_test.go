package parser

import (
	"testing"

	"github.com/jose-oyuko/josedb/value"
)

func TestParseCreateTable(t *testing.T) {
	p := New()
	cmd, err := p.Parse("CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT UNIQUE, active BOOLEAN)")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Kind != KindCreateTable || cmd.TableName != "users" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
	if len(cmd.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(cmd.Columns))
	}
	if cmd.PrimaryKey != "id" {
		t.Fatalf("expected primary key id, got %q", cmd.PrimaryKey)
	}
	if len(cmd.UniqueColumns) != 1 || cmd.UniqueColumns[0] != "name" {
		t.Fatalf("expected unique column name, got %v", cmd.UniqueColumns)
	}
}

func TestParseDropTable(t *testing.T) {
	cmd, err := New().Parse("DROP TABLE users")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Kind != KindDropTable || cmd.TableName != "users" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestParseInsert(t *testing.T) {
	cmd, err := New().Parse("INSERT INTO users VALUES (1, 'Ada', true, NULL, 9.5)")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []value.Value{value.Integer(1), value.Text("Ada"), value.Boolean(true), value.Null, value.Real(9.5)}
	if len(cmd.Values) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(cmd.Values))
	}
	for i := range want {
		if !cmd.Values[i].Equal(want[i]) {
			t.Fatalf("value %d: expected %v, got %v", i, want[i], cmd.Values[i])
		}
	}
}

func TestParseSelectWithProjectionAndMultiPredicate(t *testing.T) {
	cmd, err := New().Parse("SELECT name, email FROM users WHERE id = 1 AND active = true")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Kind != KindSelect || cmd.TableName != "users" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
	if len(cmd.Projection) != 2 || cmd.Projection[0].Column != "name" || cmd.Projection[1].Column != "email" {
		t.Fatalf("unexpected projection: %v", cmd.Projection)
	}
	if len(cmd.Where) != 2 {
		t.Fatalf("expected 2 predicates, got %d", len(cmd.Where))
	}
}

func TestParseSelectStar(t *testing.T) {
	cmd, err := New().Parse("SELECT * FROM users")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Projection != nil {
		t.Fatalf("expected nil projection for *, got %v", cmd.Projection)
	}
	if len(cmd.Where) != 0 {
		t.Fatalf("expected no predicates, got %v", cmd.Where)
	}
}

func TestParseSelectWithSelfQualifiedColumns(t *testing.T) {
	cmd, err := New().Parse("SELECT users.name FROM users WHERE users.id = 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Join != nil {
		t.Fatalf("expected no join clause, got %+v", cmd.Join)
	}
	if len(cmd.Projection) != 1 || cmd.Projection[0].Table != "users" || cmd.Projection[0].Column != "name" {
		t.Fatalf("unexpected projection: %v", cmd.Projection)
	}
	if len(cmd.Where) != 1 || cmd.Where[0].Column != "users.id" {
		t.Fatalf("expected self-qualified predicate column preserved as users.id, got %v", cmd.Where)
	}
}

func TestParseSelectJoin(t *testing.T) {
	cmd, err := New().Parse("SELECT users.name, orders.total FROM users JOIN orders ON users.id = orders.user_id WHERE orders.total = 9.5")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Join == nil {
		t.Fatal("expected a Join clause")
	}
	if cmd.Join.Table != "orders" || cmd.Join.LeftColumn != "id" || cmd.Join.RightColumn != "user_id" {
		t.Fatalf("unexpected join clause: %+v", cmd.Join)
	}
	if len(cmd.Projection) != 2 || cmd.Projection[0].Table != "users" || cmd.Projection[1].Table != "orders" {
		t.Fatalf("unexpected projection: %v", cmd.Projection)
	}
}

func TestParseUpdateMultiAssignmentNoWhere(t *testing.T) {
	cmd, err := New().Parse("UPDATE users SET name = 'Bob', active = false")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(cmd.Set) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(cmd.Set))
	}
	if len(cmd.Where) != 0 {
		t.Fatalf("expected match-all (no WHERE), got %v", cmd.Where)
	}
}

func TestParseDeleteNoWhereMatchesAll(t *testing.T) {
	cmd, err := New().Parse("DELETE FROM users")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(cmd.Where) != 0 {
		t.Fatalf("expected match-all (no WHERE), got %v", cmd.Where)
	}
}

func TestParseRejectsUnrecognized(t *testing.T) {
	if _, err := New().Parse("FROBNICATE users"); err == nil {
		t.Fatal("expected error for unrecognized statement")
	}
}

func TestParseLiteralWithEmbeddedAnd(t *testing.T) {
	cmd, err := New().Parse("SELECT * FROM notes WHERE body = 'salt AND pepper'")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(cmd.Where) != 1 || cmd.Where[0].Value.Text() != "salt AND pepper" {
		t.Fatalf("expected quoted AND to be preserved as one predicate, got %v", cmd.Where)
	}
}
