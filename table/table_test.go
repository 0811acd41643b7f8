package table

import (
	"errors"
	"testing"

	"github.com/jose-oyuko/josedb/dberr"
	"github.com/jose-oyuko/josedb/schema"
	"github.com/jose-oyuko/josedb/value"
)

func usersTable(t *testing.T) *Table {
	t.Helper()
	cols := []schema.Column{
		{Name: "id", Type: schema.TypeInteger},
		{Name: "name", Type: schema.TypeText},
		{Name: "email", Type: schema.TypeText},
	}
	tbl, err := New("users", cols, "id", []string{"email"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tbl
}

func TestNewRejectsUnknownPrimaryKey(t *testing.T) {
	cols := []schema.Column{{Name: "id", Type: schema.TypeInteger}}
	if _, err := New("t", cols, "missing", nil); err == nil {
		t.Fatal("expected error for unknown primary key")
	}
}

func TestNewRejectsDuplicateColumn(t *testing.T) {
	cols := []schema.Column{{Name: "id", Type: schema.TypeInteger}, {Name: "id", Type: schema.TypeText}}
	if _, err := New("t", cols, "", nil); err == nil {
		t.Fatal("expected error for duplicate column")
	}
}

func TestInsertAndSelect(t *testing.T) {
	tbl := usersTable(t)
	if _, err := tbl.InsertRow([]value.Value{value.Integer(1), value.Text("Ada"), value.Text("ada@x.com")}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := tbl.InsertRow([]value.Value{value.Integer(2), value.Text("Grace"), value.Text("grace@x.com")}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	rows, err := tbl.Select([]Predicate{{Column: "id", Value: value.Integer(1)}}, nil)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0][1].Value.Text() != "Ada" {
		t.Fatalf("expected Ada, got %v", rows[0][1].Value)
	}
}

func TestSelectAcceptsSelfQualifiedColumns(t *testing.T) {
	tbl := usersTable(t)
	if _, err := tbl.InsertRow([]value.Value{value.Integer(1), value.Text("Ada"), value.Text("ada@x.com")}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	rows, err := tbl.Select([]Predicate{{Column: "users.id", Value: value.Integer(1)}}, []string{"users.name"})
	if err != nil {
		t.Fatalf("select with self-qualified predicate and projection: %v", err)
	}
	if len(rows) != 1 || rows[0][0].Column != "name" || rows[0][0].Value.Text() != "Ada" {
		t.Fatalf("expected one row projecting name=Ada, got %v", rows)
	}
}

func TestSelectRejectsWrongTableQualifier(t *testing.T) {
	tbl := usersTable(t)
	_, err := tbl.Select([]Predicate{{Column: "orders.id", Value: value.Integer(1)}}, nil)
	var ut *dberr.UnknownTableError
	if !errors.As(err, &ut) {
		t.Fatalf("expected UnknownTableError, got %v", err)
	}
}

func TestUpdateAcceptsSelfQualifiedColumns(t *testing.T) {
	tbl := usersTable(t)
	if _, err := tbl.InsertRow([]value.Value{value.Integer(1), value.Text("Ada"), value.Text("ada@x.com")}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	n, err := tbl.Update(
		[]Predicate{{Column: "users.id", Value: value.Integer(1)}},
		[]Assignment{{Column: "users.name", Value: value.Text("Lovelace")}},
	)
	if err != nil {
		t.Fatalf("update with self-qualified columns: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row updated, got %d", n)
	}

	rows, _ := tbl.Select([]Predicate{{Column: "id", Value: value.Integer(1)}}, []string{"name"})
	if len(rows) != 1 || rows[0][0].Value.Text() != "Lovelace" {
		t.Fatalf("expected name updated to Lovelace, got %v", rows)
	}
}

func TestDeleteAcceptsSelfQualifiedColumns(t *testing.T) {
	tbl := usersTable(t)
	if _, err := tbl.InsertRow([]value.Value{value.Integer(1), value.Text("Ada"), value.Text("ada@x.com")}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	n, err := tbl.Delete([]Predicate{{Column: "users.id", Value: value.Integer(1)}})
	if err != nil {
		t.Fatalf("delete with self-qualified predicate: %v", err)
	}
	if n != 1 || tbl.RowCount() != 0 {
		t.Fatalf("expected row deleted, got n=%d count=%d", n, tbl.RowCount())
	}
}

func TestInsertSchemaMismatch(t *testing.T) {
	tbl := usersTable(t)
	_, err := tbl.InsertRow([]value.Value{value.Integer(1)})
	var sm *dberr.SchemaMismatchError
	if !errors.As(err, &sm) {
		t.Fatalf("expected SchemaMismatchError, got %v", err)
	}
}

func TestInsertUniqueViolation(t *testing.T) {
	tbl := usersTable(t)
	if _, err := tbl.InsertRow([]value.Value{value.Integer(1), value.Text("Ada"), value.Text("a@x.com")}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	_, err := tbl.InsertRow([]value.Value{value.Integer(1), value.Text("Eve"), value.Text("e@x.com")})
	var uv *dberr.UniqueViolationError
	if !errors.As(err, &uv) {
		t.Fatalf("expected UniqueViolationError, got %v", err)
	}
	if tbl.RowCount() != 1 {
		t.Fatalf("expected failed insert to leave table untouched, got %d rows", tbl.RowCount())
	}
}

func TestUpdateChangesIndex(t *testing.T) {
	tbl := usersTable(t)
	tbl.InsertRow([]value.Value{value.Integer(1), value.Text("Ada"), value.Text("a@x.com")})

	n, err := tbl.Update([]Predicate{{Column: "id", Value: value.Integer(1)}}, []Assignment{{Column: "email", Value: value.Text("ada2@x.com")}})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row updated, got %d", n)
	}

	rows, _ := tbl.Select([]Predicate{{Column: "email", Value: value.Text("ada2@x.com")}}, nil)
	if len(rows) != 1 {
		t.Fatalf("expected updated row to be findable by new email, got %d", len(rows))
	}
	rows, _ = tbl.Select([]Predicate{{Column: "email", Value: value.Text("a@x.com")}}, nil)
	if len(rows) != 0 {
		t.Fatalf("expected old email to no longer match, got %d", len(rows))
	}
}

func TestUpdateUniqueViolationLeavesTableUntouched(t *testing.T) {
	tbl := usersTable(t)
	tbl.InsertRow([]value.Value{value.Integer(1), value.Text("Ada"), value.Text("a@x.com")})
	tbl.InsertRow([]value.Value{value.Integer(2), value.Text("Grace"), value.Text("g@x.com")})

	_, err := tbl.Update([]Predicate{{Column: "id", Value: value.Integer(2)}}, []Assignment{{Column: "email", Value: value.Text("a@x.com")}})
	var uv *dberr.UniqueViolationError
	if !errors.As(err, &uv) {
		t.Fatalf("expected UniqueViolationError, got %v", err)
	}
	rows, _ := tbl.Select([]Predicate{{Column: "id", Value: value.Integer(2)}}, nil)
	if rows[0][2].Value.Text() != "g@x.com" {
		t.Fatal("row 2's email should be unchanged after a failed update")
	}
}

func TestDeleteThenReinsert(t *testing.T) {
	tbl := usersTable(t)
	tbl.InsertRow([]value.Value{value.Integer(1), value.Text("Ada"), value.Text("a@x.com")})
	tbl.InsertRow([]value.Value{value.Integer(2), value.Text("Grace"), value.Text("g@x.com")})
	tbl.InsertRow([]value.Value{value.Integer(3), value.Text("Eve"), value.Text("e@x.com")})

	n, err := tbl.Delete([]Predicate{{Column: "id", Value: value.Integer(2)}})
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row deleted, got %d", n)
	}
	if tbl.RowCount() != 2 {
		t.Fatalf("expected 2 rows remaining, got %d", tbl.RowCount())
	}

	// A value that collided before the delete must be insertable again.
	if _, err := tbl.InsertRow([]value.Value{value.Integer(2), value.Text("New"), value.Text("g@x.com")}); err != nil {
		t.Fatalf("expected reinsert of freed email to succeed, got %v", err)
	}

	rows, _ := tbl.Select([]Predicate{{Column: "id", Value: value.Integer(3)}}, nil)
	if len(rows) != 1 || rows[0][1].Value.Text() != "Eve" {
		t.Fatalf("expected Eve still findable after unrelated delete, got %v", rows)
	}
}

func TestDeletePreservesSurvivorOrder(t *testing.T) {
	tbl := usersTable(t)
	names := []string{"Ada", "Grace", "Eve", "Hedy", "Barbara"}
	for i, name := range names {
		tbl.InsertRow([]value.Value{value.Integer(int64(i + 1)), value.Text(name), value.Text(name + "@x.com")})
	}

	// Delete two non-adjacent rows (Grace=2, Hedy=4) in two calls and check
	// the survivors come back in their original relative order.
	n, err := tbl.Delete([]Predicate{{Column: "name", Value: value.Text("Grace")}})
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row deleted, got %d", n)
	}
	n, err = tbl.Delete([]Predicate{{Column: "name", Value: value.Text("Hedy")}})
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row deleted, got %d", n)
	}

	rows, err := tbl.Select(nil, []string{"name"})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	want := []string{"Ada", "Eve", "Barbara"}
	if len(rows) != len(want) {
		t.Fatalf("expected %d survivors, got %d: %v", len(want), len(rows), rows)
	}
	for i, w := range want {
		if rows[i][0].Value.Text() != w {
			t.Fatalf("expected survivor order %v, got %v", want, rows)
		}
	}

	// The freed ids and indexes must still work correctly for find/reinsert.
	if _, err := tbl.InsertRow([]value.Value{value.Integer(2), value.Text("Mary"), value.Text("Grace@x.com")}); err != nil {
		t.Fatalf("expected reinsert of freed email to succeed, got %v", err)
	}
}

func TestDeleteAllMatchesEmptyPredicate(t *testing.T) {
	tbl := usersTable(t)
	tbl.InsertRow([]value.Value{value.Integer(1), value.Text("Ada"), value.Text("a@x.com")})
	tbl.InsertRow([]value.Value{value.Integer(2), value.Text("Grace"), value.Text("g@x.com")})

	n, err := tbl.Delete(nil)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 2 || tbl.RowCount() != 0 {
		t.Fatalf("expected all rows deleted, got n=%d count=%d", n, tbl.RowCount())
	}
}

func ordersTable(t *testing.T) *Table {
	t.Helper()
	cols := []schema.Column{
		{Name: "id", Type: schema.TypeInteger},
		{Name: "user_id", Type: schema.TypeInteger},
		{Name: "total", Type: schema.TypeReal},
	}
	tbl, err := New("orders", cols, "id", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tbl
}

func TestInnerJoin(t *testing.T) {
	users := usersTable(t)
	users.InsertRow([]value.Value{value.Integer(1), value.Text("Ada"), value.Text("a@x.com")})
	users.InsertRow([]value.Value{value.Integer(2), value.Text("Grace"), value.Text("g@x.com")})

	orders := ordersTable(t)
	orders.InsertRow([]value.Value{value.Integer(100), value.Integer(1), value.Real(9.5)})
	orders.InsertRow([]value.Value{value.Integer(101), value.Integer(2), value.Real(3.0)})
	orders.InsertRow([]value.Value{value.Integer(102), value.Integer(1), value.Real(1.25)})

	rows, err := users.InnerJoin("id", orders, "user_id", nil, []ColumnRef{
		{Table: "users", Column: "name"},
		{Table: "orders", Column: "total"},
	})
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 joined rows, got %d", len(rows))
	}
	for _, r := range rows {
		if r[0].Column != "name" || r[1].Column != "total" {
			t.Fatalf("unexpected projection order: %v", r)
		}
	}
}

func TestInnerJoinWildcardProjectionQualifiesColumns(t *testing.T) {
	users := usersTable(t)
	users.InsertRow([]value.Value{value.Integer(1), value.Text("Ada"), value.Text("a@x.com")})

	orders := ordersTable(t)
	orders.InsertRow([]value.Value{value.Integer(100), value.Integer(1), value.Real(9.5)})

	rows, err := users.InnerJoin("id", orders, "user_id", nil, nil)
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 joined row, got %d", len(rows))
	}

	row := rows[0]
	if len(row) != 6 {
		t.Fatalf("expected 6 projected cells (3 users + 3 orders), got %d", len(row))
	}

	seen := map[string]bool{}
	for _, cell := range row {
		if seen[cell.Column] {
			t.Fatalf("duplicate output column %q in wildcard join projection: %v", cell.Column, row)
		}
		seen[cell.Column] = true
	}

	for _, want := range []string{"users.id", "users.name", "users.email", "orders.id", "orders.user_id", "orders.total"} {
		if !seen[want] {
			t.Fatalf("expected qualified output column %q in wildcard join projection, got %v", want, row)
		}
	}
}

func TestInnerJoinAmbiguousColumn(t *testing.T) {
	a := usersTable(t)
	cols := []schema.Column{{Name: "id", Type: schema.TypeInteger}, {Name: "name", Type: schema.TypeText}}
	b, _ := New("accounts", cols, "id", nil)

	_, err := a.InnerJoin("id", b, "id", nil, []ColumnRef{{Column: "name"}})
	var amb *dberr.AmbiguousColumnError
	if !errors.As(err, &amb) {
		t.Fatalf("expected AmbiguousColumnError, got %v", err)
	}
}
