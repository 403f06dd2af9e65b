// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/evseev/kopilka/internal/model"
)

// Storage defines the contract for the expense ledger persistence layer.
type Storage interface {
	// SaveExpense appends one expense to the ledger and fills in its ID.
	SaveExpense(ctx context.Context, expense *model.Expense) error
	// GetMonthSummary returns total spend per category code for one user and
	// calendar month.
	GetMonthSummary(ctx context.Context, userID int64, month time.Month, year int) (map[string]float64, error)
	// GetLastExpenses returns the most recent expenses for a user, newest first.
	GetLastExpenses(ctx context.Context, userID int64, limit int) ([]model.Expense, error)
	// GetAllExpenses returns every stored expense, oldest first. Used by
	// back-testing and recategorization.
	GetAllExpenses(ctx context.Context) ([]model.Expense, error)
	// UpdateExpenseCategory rewrites the category of a single stored expense.
	UpdateExpenseCategory(ctx context.Context, expenseID int64, categoryCode string) error

	Migrate(ctx context.Context) error
	Close() error
}

// Classifier maps a free-text expense description to a budget category.
type Classifier interface {
	Classify(ctx context.Context, text string) (model.Classification, error)
}

// Limits reports month-to-date spend against per-category budgets.
type Limits interface {
	CategoryLimit(categoryCode string) float64
	MonthReport(ctx context.Context, userID int64, now time.Time) (MonthReport, error)
}

// CategoryStatus is one row of a month report.
type CategoryStatus struct {
	CategoryCode string
	Limit        float64
	Spent        float64
	Remaining    float64
	Percent      float64
}

// MonthReport aggregates spend against limits for one calendar month.
type MonthReport struct {
	Categories     []CategoryStatus
	Month          time.Month
	Year           int
	TotalLimit     float64
	TotalSpent     float64
	TotalRemaining float64
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
