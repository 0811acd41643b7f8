package main

import (
	"fmt"
	"sync"

	"github.com/jose-oyuko/josedb/db"
	"github.com/jose-oyuko/josedb/executor"
)

// app is the merchants/transactions demo application. Every call into
// exec is serialized through mu, acknowledging that the underlying
// engine assumes a single caller at a time; the HTTP layer is the only
// thing in this program that is actually concurrent.
type app struct {
	mu   sync.Mutex
	exec *executor.Executor
	feed *changeFeed
}

func newApp(database *db.Database) *app {
	return &app{
		exec: executor.New(database, nil),
		feed: newChangeFeed(),
	}
}

// seed creates the merchants and transactions tables and a handful of
// starter rows if they don't already exist.
func (a *app) seed() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := a.exec.Describe("merchants"); err == nil {
		return nil // already seeded from a prior run's persisted file
	}

	statements := []string{
		"CREATE TABLE merchants (id INTEGER PRIMARY KEY, name TEXT UNIQUE, commission INTEGER)",
		"CREATE TABLE transactions (id INTEGER PRIMARY KEY, merchant_id INTEGER, amount INTEGER, customer TEXT, status TEXT)",
		"INSERT INTO merchants VALUES (1, 'Java House', 3)",
		"INSERT INTO merchants VALUES (2, 'Artcaffe', 5)",
		"INSERT INTO transactions VALUES (101, 1, 500, 'John Doe', 'COMPLETED')",
		"INSERT INTO transactions VALUES (102, 2, 1200, 'Jane Smith', 'COMPLETED')",
	}
	for _, stmt := range statements {
		if _, err := a.exec.Execute(stmt); err != nil {
			return fmt.Errorf("seeding: %w", err)
		}
	}
	return nil
}

// execute runs stmt under the app's mutex, broadcasting a change event to
// every websocket subscriber if it was a mutation that succeeded.
func (a *app) execute(stmt string, isMutation bool) (executor.Result, error) {
	a.mu.Lock()
	res, err := a.exec.Execute(stmt)
	a.mu.Unlock()

	if err == nil && isMutation {
		a.feed.broadcast(res.Message)
	}
	return res, err
}
