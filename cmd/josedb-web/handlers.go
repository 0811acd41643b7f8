package main

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func (a *app) handleMerchants(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		a.respondSelect(w, "SELECT * FROM merchants")
	case http.MethodPost:
		a.handleCreateMerchant(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (a *app) handleCreateMerchant(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name       string `json:"name"`
		Commission int    `json:"commission"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	nextID := a.nextID("merchants")
	stmt := fmt.Sprintf("INSERT INTO merchants VALUES (%d, '%s', %d)", nextID, body.Name, body.Commission)
	res, err := a.execute(stmt, true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"message": res.Message, "id": nextID})
}

func (a *app) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		a.respondSelect(w, "SELECT * FROM transactions")
	case http.MethodPost:
		a.handleCreateTransaction(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (a *app) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MerchantID int    `json:"merchant_id"`
		Amount     int    `json:"amount"`
		Customer   string `json:"customer"`
		Status     string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if body.Status == "" {
		body.Status = "PENDING"
	}

	nextID := a.nextID("transactions")
	stmt := fmt.Sprintf("INSERT INTO transactions VALUES (%d, %d, %d, '%s', '%s')",
		nextID, body.MerchantID, body.Amount, body.Customer, body.Status)
	res, err := a.execute(stmt, true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"message": res.Message, "id": nextID})
}

// handleDashboard returns the summary the demo's homepage would render:
// merchant count, transaction count, total transaction volume, and the
// joined merchant-name + transaction list.
func (a *app) handleDashboard(w http.ResponseWriter, r *http.Request) {
	merchants, err := a.execute("SELECT * FROM merchants", false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	joined, err := a.execute(
		"SELECT merchants.name, transactions.id, transactions.amount, transactions.customer, transactions.status "+
			"FROM merchants JOIN transactions ON merchants.id = transactions.merchant_id", false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var totalVolume int64
	for _, row := range joined.Rows {
		for _, cell := range row {
			if cell.Column == "amount" {
				totalVolume += cell.Value.Int()
			}
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"merchant_count":    len(merchants.Rows),
		"transaction_count": len(joined.Rows),
		"total_volume":      totalVolume,
		"transactions":      joined.Rows,
	})
}

func (a *app) respondSelect(w http.ResponseWriter, stmt string) {
	res, err := a.execute(stmt, false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, res.Rows)
}

// nextID does a simple max(id)+1 scan, the same "generate an id client
// side" strategy the demo's original form-based pages used, since the
// engine itself has no autoincrement.
func (a *app) nextID(tableName string) int64 {
	res, err := a.execute("SELECT * FROM "+tableName, false)
	if err != nil {
		return 1
	}
	var max int64
	for _, row := range res.Rows {
		for _, cell := range row {
			if cell.Column == "id" && cell.Value.Int() > max {
				max = cell.Value.Int()
			}
		}
	}
	return max + 1
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
