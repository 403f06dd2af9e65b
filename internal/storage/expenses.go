package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/evseev/kopilka/internal/model"
)

// SaveExpense appends one expense to the ledger and fills in its generated ID.
func (s *SQLiteStorage) SaveExpense(ctx context.Context, expense *model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateExpense(expense); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (user_id, amount, description, category_code, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		expense.UserID,
		expense.Amount,
		expense.Description,
		expense.CategoryCode,
		expense.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read expense id: %w", err)
	}
	expense.ID = id

	return nil
}

// GetMonthSummary returns total spend per category code for one user and
// calendar month.
func (s *SQLiteStorage) GetMonthSummary(ctx context.Context, userID int64, month time.Month, year int) (map[string]float64, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	rows, err := s.db.QueryContext(ctx, `
		SELECT category_code, SUM(amount)
		FROM expenses
		WHERE user_id = ? AND created_at >= ? AND created_at < ?
		GROUP BY category_code`,
		userID, start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query month summary: %w", err)
	}
	defer func() { _ = rows.Close() }()

	summary := make(map[string]float64)
	for rows.Next() {
		var code string
		var total float64
		if err := rows.Scan(&code, &total); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		summary[code] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate summary rows: %w", err)
	}

	return summary, nil
}

// GetLastExpenses returns the most recent expenses for a user, newest first.
func (s *SQLiteStorage) GetLastExpenses(ctx context.Context, userID int64, limit int) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, amount, description, category_code, created_at
		FROM expenses
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query last expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanExpenses(rows)
}

// GetAllExpenses returns every stored expense, oldest first.
func (s *SQLiteStorage) GetAllExpenses(ctx context.Context) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, amount, description, category_code, created_at
		FROM expenses
		ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanExpenses(rows)
}

// UpdateExpenseCategory rewrites the category of a single stored expense.
func (s *SQLiteStorage) UpdateExpenseCategory(ctx context.Context, expenseID int64, categoryCode string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(categoryCode, "categoryCode"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE expenses SET category_code = ? WHERE id = ?`,
		categoryCode, expenseID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("expense %d: %w", expenseID, ErrExpenseNotFound)
	}

	return nil
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanExpenses(rows rowScanner) ([]model.Expense, error) {
	var expenses []model.Expense
	for rows.Next() {
		var e model.Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Description, &e.CategoryCode, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense rows: %w", err)
	}
	return expenses, nil
}
