package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/evseev/kopilka/internal/model"
)

// Validation errors.
var (
	ErrNilContext      = errors.New("context cannot be nil")
	ErrEmptyString     = errors.New("string parameter cannot be empty")
	ErrNilParameter    = errors.New("parameter cannot be nil")
	ErrInvalidExpense  = errors.New("invalid expense")
	ErrExpenseNotFound = errors.New("expense not found")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateExpense validates a single expense before persisting it.
func validateExpense(expense *model.Expense) error {
	if expense == nil {
		return fmt.Errorf("%w: expense", ErrNilParameter)
	}
	if expense.UserID == 0 {
		return fmt.Errorf("%w: user id is required", ErrInvalidExpense)
	}
	if expense.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidExpense)
	}
	if strings.TrimSpace(expense.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidExpense)
	}
	if strings.TrimSpace(expense.CategoryCode) == "" {
		return fmt.Errorf("%w: category code is required", ErrInvalidExpense)
	}
	if expense.CreatedAt.IsZero() {
		return fmt.Errorf("%w: created at is required", ErrInvalidExpense)
	}
	return nil
}
