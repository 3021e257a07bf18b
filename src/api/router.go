package api

import (
	"net/http"

	"fintrack-server/src/handlers"
	"fintrack-server/src/middleware"

	"github.com/go-chi/chi/v5"
)

func NewRouter(store handlers.Store, allowedOrigins []string, readOnly bool) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(allowedOrigins))
	r.Use(middleware.ReadOnlyMiddleware(readOnly))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		// Transactions
		r.Get("/transactions", handlers.ListTransactions(store))
		r.Post("/transactions", handlers.CreateTransaction(store))
		r.Put("/transactions", handlers.UpdateTransaction(store))
		r.Delete("/transactions", handlers.DeleteTransaction(store))

		// Budgets
		r.Get("/budgets", handlers.ListBudgets(store))
		r.Post("/budgets", handlers.SetBudget(store))

		// Dashboard
		r.Get("/summary", handlers.GetSummary(store))
	})

	return r
}
