package db_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"fintrack-server/src/db"
	sql "fintrack-server/src/db/sql"
	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStore connects to the database named by DATABASE_URL. Tests are
// skipped when no database is configured.
func testStore(t *testing.T) (*sql.Store, *pgxpool.Pool) {
	t.Helper()
	_ = godotenv.Load()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set, skipping store tests")
	}

	pool, err := db.Connect(url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, db.EnsureSchema(context.Background(), pool))
	return sql.New(pool, 5*time.Second), pool
}

func TestTransactionLifecycle(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	created, err := store.CreateTransaction(ctx, models.Transaction{
		Amount:      42.5,
		Date:        time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC),
		Description: "store test groceries",
		Category:    "Food",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, 42.5, created.Amount)

	listed, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	var found bool
	for _, txn := range listed {
		if txn.ID == created.ID {
			found = true
			assert.Equal(t, "store test groceries", txn.Description)
		}
	}
	assert.True(t, found, "created transaction missing from list")

	updated, err := store.UpdateTransaction(ctx, models.Transaction{
		ID:          created.ID,
		Amount:      -10,
		Date:        time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
		Description: "store test refund",
		Category:    "Shopping",
	})
	require.NoError(t, err)
	assert.Equal(t, -10.0, updated.Amount)
	assert.Equal(t, "Shopping", updated.Category)

	// A no-op replace still matches the row and succeeds.
	_, err = store.UpdateTransaction(ctx, models.Transaction{
		ID:          created.ID,
		Amount:      -10,
		Date:        time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
		Description: "store test refund",
		Category:    "Shopping",
	})
	require.NoError(t, err)

	require.NoError(t, store.DeleteTransaction(ctx, created.ID))
	assert.True(t, errors.Is(store.DeleteTransaction(ctx, created.ID), sql.ErrNotFound))
}

func TestUpdateTransactionUnknownID(t *testing.T) {
	store, _ := testStore(t)

	_, err := store.UpdateTransaction(context.Background(), models.Transaction{
		ID:          -1,
		Amount:      5,
		Date:        time.Now(),
		Description: "missing",
		Category:    "Food",
	})
	assert.True(t, errors.Is(err, sql.ErrNotFound))
}

func TestUpsertBudgetKeepsOneRecordPerPair(t *testing.T) {
	store, pool := testStore(t)
	ctx := context.Background()

	// Unique pair per run so reruns never collide.
	month := fmt.Sprintf("Test-%d", time.Now().UnixNano())
	t.Cleanup(func() {
		pool.Exec(ctx, `DELETE FROM budgets WHERE month = $1`, month)
	})

	first, err := store.UpsertBudget(ctx, models.Budget{Category: "Food", Amount: 300, Month: month})
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := store.UpsertBudget(ctx, models.Budget{Category: "Food", Amount: 250, Month: month})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 250.0, second.Amount)

	var count int
	err = pool.QueryRow(ctx, `SELECT COUNT(*) FROM budgets WHERE category = $1 AND month = $2`, "Food", month).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
