package handlers

import (
	"log"
	"net/http"
	"time"

	"fintrack-server/src/insights"
)

// GetSummary serves every derived dashboard metric in one payload.
// The period query parameter scopes the budget-vs-actual comparison;
// it defaults to the current month.
func GetSummary(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := r.URL.Query().Get("period")
		if period == "" {
			period = insights.PeriodLabel(time.Now())
		}

		transactions, err := store.ListTransactions(r.Context())
		if err != nil {
			log.Printf("ERROR: Failed to list transactions for summary: %v", err)
			writeError(w, storeErrorStatus(err), "failed to build summary")
			return
		}
		budgets, err := store.ListBudgets(r.Context())
		if err != nil {
			log.Printf("ERROR: Failed to list budgets for summary: %v", err)
			writeError(w, storeErrorStatus(err), "failed to build summary")
			return
		}

		summary := insights.BuildSummary(transactions, budgets, period)
		writeJSON(w, http.StatusOK, map[string]interface{}{"summary": summary})
	}
}
