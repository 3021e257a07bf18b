package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"fintrack-server/src/db"
	sql "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/util"
)

const transactionsCacheKey = "transactions:all"

func ListTransactions(store TransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cached, found := db.Cache.Get(transactionsCacheKey); found {
			if transactions, ok := cached.([]models.Transaction); ok {
				writeJSON(w, http.StatusOK, map[string]interface{}{"transactions": transactions})
				return
			}
		}

		transactions, err := store.ListTransactions(r.Context())
		if err != nil {
			log.Printf("ERROR: Failed to list transactions: %v", err)
			writeError(w, storeErrorStatus(err), "failed to list transactions")
			return
		}
		if transactions == nil {
			transactions = []models.Transaction{}
		}

		db.SetTransactionCache(transactionsCacheKey, transactions)
		writeJSON(w, http.StatusOK, map[string]interface{}{"transactions": transactions})
	}
}

func CreateTransaction(store TransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Amount      float64 `json:"amount"`
			Date        string  `json:"date"`
			Description string  `json:"description"`
			Category    string  `json:"category"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create transaction request body: %v", err)
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}
		if req.Amount == 0 || !util.ValidateText(req.Description) || !util.ValidateText(req.Category) {
			writeError(w, http.StatusBadRequest, "missing fields")
			return
		}
		date, ok := util.ParseDate(req.Date)
		if !ok {
			writeError(w, http.StatusBadRequest, "missing fields")
			return
		}

		created, err := store.CreateTransaction(r.Context(), models.Transaction{
			Amount:      req.Amount,
			Date:        date,
			Description: req.Description,
			Category:    req.Category,
		})
		if err != nil {
			log.Printf("ERROR: Failed to create transaction: %v", err)
			writeError(w, storeErrorStatus(err), "failed to create transaction")
			return
		}

		db.ClearAllTransactionCaches()
		log.Printf("INFO: Created transaction id %d, category %s", created.ID, created.Category)
		writeJSON(w, http.StatusCreated, map[string]interface{}{"transaction": created})
	}
}

// UpdateTransaction is a whole-record replace: every field is required
// and the stored record takes exactly the values sent, nothing is
// preserved from the prior record.
func UpdateTransaction(store TransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID          int64   `json:"id"`
			Amount      float64 `json:"amount"`
			Date        string  `json:"date"`
			Description string  `json:"description"`
			Category    string  `json:"category"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update transaction request body: %v", err)
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}
		if req.ID == 0 || req.Amount == 0 || !util.ValidateText(req.Description) || !util.ValidateText(req.Category) {
			writeError(w, http.StatusBadRequest, "missing fields")
			return
		}
		date, ok := util.ParseDate(req.Date)
		if !ok {
			writeError(w, http.StatusBadRequest, "missing fields")
			return
		}

		updated, err := store.UpdateTransaction(r.Context(), models.Transaction{
			ID:          req.ID,
			Amount:      req.Amount,
			Date:        date,
			Description: req.Description,
			Category:    req.Category,
		})
		if errors.Is(err, sql.ErrNotFound) {
			writeError(w, http.StatusNotFound, "transaction not found")
			return
		}
		if err != nil {
			log.Printf("ERROR: Failed to update transaction id %d: %v", req.ID, err)
			writeError(w, storeErrorStatus(err), "failed to update transaction")
			return
		}

		db.ClearAllTransactionCaches()
		log.Printf("INFO: Updated transaction id %d", updated.ID)
		writeJSON(w, http.StatusOK, map[string]interface{}{"transaction": updated})
	}
}

func DeleteTransaction(store TransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := r.URL.Query().Get("id")
		if idStr == "" {
			writeError(w, http.StatusBadRequest, "missing id")
			return
		}
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			log.Printf("ERROR: Invalid transaction id param: %s", idStr)
			writeError(w, http.StatusBadRequest, "invalid id")
			return
		}

		err = store.DeleteTransaction(r.Context(), id)
		if errors.Is(err, sql.ErrNotFound) {
			writeError(w, http.StatusNotFound, "transaction not found")
			return
		}
		if err != nil {
			log.Printf("ERROR: Failed to delete transaction id %d: %v", id, err)
			writeError(w, storeErrorStatus(err), "failed to delete transaction")
			return
		}

		db.ClearAllTransactionCaches()
		log.Printf("INFO: Deleted transaction id %d", id)
		writeJSON(w, http.StatusOK, map[string]string{"message": "transaction deleted"})
	}
}
