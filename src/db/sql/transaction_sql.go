package db

import (
	"context"
	"errors"

	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5"
)

func (s *Store) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	query := `
		SELECT id, amount, date, description, category, created_at, updated_at
		FROM transactions
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(&t.ID, &t.Amount, &t.Date, &t.Description, &t.Category, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func (s *Store) CreateTransaction(ctx context.Context, txn models.Transaction) (*models.Transaction, error) {
	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	query := `
		INSERT INTO transactions (amount, date, description, category)
		VALUES ($1, $2, $3, $4)
		RETURNING id, amount, date, description, category, created_at, updated_at
	`
	var t models.Transaction
	err := s.db.QueryRow(ctx, query, txn.Amount, txn.Date, txn.Description, txn.Category).
		Scan(&t.ID, &t.Amount, &t.Date, &t.Description, &t.Category, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTransaction replaces the whole record; callers must send every
// field. An id that matches no record maps to ErrNotFound. An update that
// changes nothing still matches a row and is an ordinary success.
func (s *Store) UpdateTransaction(ctx context.Context, txn models.Transaction) (*models.Transaction, error) {
	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	query := `
		UPDATE transactions
		SET amount = $1, date = $2, description = $3, category = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id, amount, date, description, category, created_at, updated_at
	`
	var t models.Transaction
	err := s.db.QueryRow(ctx, query, txn.Amount, txn.Date, txn.Description, txn.Category, txn.ID).
		Scan(&t.ID, &t.Amount, &t.Date, &t.Description, &t.Category, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id int64) error {
	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	query := `DELETE FROM transactions WHERE id = $1`
	cmd, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
