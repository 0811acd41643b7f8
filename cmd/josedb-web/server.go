package main

import (
	"fmt"
	"net/http"

	"github.com/jose-oyuko/josedb/db"
)

func runServer(addr, dbPath string) error {
	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	a := newApp(database)
	if err := a.seed(); err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/dashboard", a.handleDashboard)
	mux.HandleFunc("/merchants", a.handleMerchants)
	mux.HandleFunc("/transactions", a.handleTransactions)
	mux.HandleFunc("/ws", a.feed.handle)

	fmt.Printf("josedb-web listening on %s (db: %s)\n", addr, dbPath)
	return http.ListenAndServe(addr, mux)
}
