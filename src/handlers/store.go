package handlers

import (
	"context"

	"fintrack-server/src/models"
)

// TransactionStore is what the transaction handlers need from the
// record store.
type TransactionStore interface {
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, txn models.Transaction) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, txn models.Transaction) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
}

// BudgetStore is what the budget handlers need from the record store.
type BudgetStore interface {
	ListBudgets(ctx context.Context) ([]models.Budget, error)
	UpsertBudget(ctx context.Context, budget models.Budget) (*models.Budget, error)
}

// Store is the full record store; the summary handler reads both
// collections.
type Store interface {
	TransactionStore
	BudgetStore
}
