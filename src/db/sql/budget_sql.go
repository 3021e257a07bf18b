package db

import (
	"context"

	"fintrack-server/src/models"
)

func (s *Store) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	query := `
		SELECT id, category, amount, month, created_at, updated_at
		FROM budgets
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		err := rows.Scan(&b.ID, &b.Category, &b.Amount, &b.Month, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// UpsertBudget sets the budget for a (category, month) pair in a single
// atomic round trip. Two concurrent sets for the same pair can never
// produce two records; the unique index arbitrates and the loser
// overwrites the amount instead.
func (s *Store) UpsertBudget(ctx context.Context, budget models.Budget) (*models.Budget, error) {
	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	query := `
		INSERT INTO budgets (category, amount, month)
		VALUES ($1, $2, $3)
		ON CONFLICT (category, month)
		DO UPDATE SET amount = EXCLUDED.amount, updated_at = NOW()
		RETURNING id, category, amount, month, created_at, updated_at
	`
	var b models.Budget
	err := s.db.QueryRow(ctx, query, budget.Category, budget.Amount, budget.Month).
		Scan(&b.ID, &b.Category, &b.Amount, &b.Month, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
