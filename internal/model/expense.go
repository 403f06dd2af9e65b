package model

import "time"

// Expense represents a single user-submitted spend entry after parsing.
type Expense struct {
	CreatedAt    time.Time
	Description  string
	CategoryCode string
	ID           int64
	UserID       int64
	Amount       float64
}
