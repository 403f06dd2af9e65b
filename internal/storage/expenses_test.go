package storage

import (
	"context"
	"testing"
	"time"

	"github.com/evseev/kopilka/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func testExpense(userID int64, amount float64, description, code string, at time.Time) model.Expense {
	return model.Expense{
		UserID:       userID,
		Amount:       amount,
		Description:  description,
		CategoryCode: code,
		CreatedAt:    at,
	}
}

func TestSaveExpense(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	expense := testExpense(42, 200, "кофе", "fun:fastfood", time.Now())
	require.NoError(t, store.SaveExpense(ctx, &expense))
	assert.NotZero(t, expense.ID)

	second := testExpense(42, 450, "магнит", "needs:food", time.Now())
	require.NoError(t, store.SaveExpense(ctx, &second))
	assert.Greater(t, second.ID, expense.ID)
}

func TestSaveExpenseValidation(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	now := time.Now()

	tests := []struct {
		name    string
		expense *model.Expense
	}{
		{name: "nil expense", expense: nil},
		{name: "missing user", expense: &model.Expense{Amount: 10, Description: "x", CategoryCode: "needs:food", CreatedAt: now}},
		{name: "zero amount", expense: &model.Expense{UserID: 1, Description: "x", CategoryCode: "needs:food", CreatedAt: now}},
		{name: "negative amount", expense: &model.Expense{UserID: 1, Amount: -5, Description: "x", CategoryCode: "needs:food", CreatedAt: now}},
		{name: "empty description", expense: &model.Expense{UserID: 1, Amount: 10, CategoryCode: "needs:food", CreatedAt: now}},
		{name: "empty category", expense: &model.Expense{UserID: 1, Amount: 10, Description: "x", CreatedAt: now}},
		{name: "zero time", expense: &model.Expense{UserID: 1, Amount: 10, Description: "x", CategoryCode: "needs:food"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, store.SaveExpense(ctx, tt.expense))
		})
	}
}

func TestGetMonthSummary(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	january := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	february := time.Date(2026, time.February, 2, 9, 0, 0, 0, time.UTC)

	seeds := []model.Expense{
		testExpense(1, 200, "кофе", "fun:fastfood", january),
		testExpense(1, 300, "бургер", "fun:fastfood", january),
		testExpense(1, 450, "магнит", "needs:food", january),
		testExpense(1, 999, "метро", "needs:transport", february),
		testExpense(2, 777, "такси", "needs:transport", january),
	}
	for i := range seeds {
		require.NoError(t, store.SaveExpense(ctx, &seeds[i]))
	}

	summary, err := store.GetMonthSummary(ctx, 1, time.January, 2026)
	require.NoError(t, err)
	assert.Len(t, summary, 2)
	assert.InDelta(t, 500, summary["fun:fastfood"], 1e-9)
	assert.InDelta(t, 450, summary["needs:food"], 1e-9)

	// Other users and other months are excluded.
	_, ok := summary["needs:transport"]
	assert.False(t, ok)

	empty, err := store.GetMonthSummary(ctx, 1, time.March, 2026)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetLastExpenses(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	base := time.Date(2026, time.May, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		expense := testExpense(7, float64(100+i), "трата", "needs:food", base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, store.SaveExpense(ctx, &expense))
	}

	last, err := store.GetLastExpenses(ctx, 7, 3)
	require.NoError(t, err)
	require.Len(t, last, 3)

	// Newest first.
	assert.InDelta(t, 104, last[0].Amount, 1e-9)
	assert.InDelta(t, 103, last[1].Amount, 1e-9)
	assert.InDelta(t, 102, last[2].Amount, 1e-9)

	none, err := store.GetLastExpenses(ctx, 999, 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdateExpenseCategory(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	expense := testExpense(1, 200, "мышь", "unknown:check_me", time.Now())
	require.NoError(t, store.SaveExpense(ctx, &expense))

	require.NoError(t, store.UpdateExpenseCategory(ctx, expense.ID, "wants:electronics"))

	all, err := store.GetAllExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "wants:electronics", all[0].CategoryCode)

	err = store.UpdateExpenseCategory(ctx, 12345, "needs:food")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExpenseNotFound)
}

func TestMigrateIdempotent(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	// Running migrations again is a no-op.
	require.NoError(t, store.Migrate(ctx))

	version, err := store.schemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}
