package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"fintrack-server/src/db"
	"fintrack-server/src/models"
	"fintrack-server/src/util"
)

const budgetsCacheKey = "budgets:all"

func ListBudgets(store BudgetStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cached, found := db.Cache.Get(budgetsCacheKey); found {
			if budgets, ok := cached.([]models.Budget); ok {
				writeJSON(w, http.StatusOK, map[string]interface{}{"budgets": budgets})
				return
			}
		}

		budgets, err := store.ListBudgets(r.Context())
		if err != nil {
			log.Printf("ERROR: Failed to list budgets: %v", err)
			writeError(w, storeErrorStatus(err), "failed to list budgets")
			return
		}
		if budgets == nil {
			budgets = []models.Budget{}
		}

		db.SetBudgetCache(budgetsCacheKey, budgets)
		writeJSON(w, http.StatusOK, map[string]interface{}{"budgets": budgets})
	}
}

// SetBudget creates or overwrites the budget for a (category, month)
// pair. Amount is a pointer so a budget of zero is accepted; only a
// missing amount is rejected.
func SetBudget(store BudgetStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Category string   `json:"category"`
			Amount   *float64 `json:"amount"`
			Month    string   `json:"month"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode set budget request body: %v", err)
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}
		if !util.ValidateText(req.Category) || !util.ValidateText(req.Month) || req.Amount == nil {
			writeError(w, http.StatusBadRequest, "missing fields")
			return
		}

		budget, err := store.UpsertBudget(r.Context(), models.Budget{
			Category: req.Category,
			Amount:   *req.Amount,
			Month:    req.Month,
		})
		if err != nil {
			log.Printf("ERROR: Failed to set budget for category %s, month %s: %v", req.Category, req.Month, err)
			writeError(w, storeErrorStatus(err), "failed to set budget")
			return
		}

		db.ClearAllBudgetCaches()
		log.Printf("INFO: Set budget id %d for category %s, month %s", budget.ID, budget.Category, budget.Month)
		writeJSON(w, http.StatusCreated, map[string]interface{}{"budget": budget})
	}
}
