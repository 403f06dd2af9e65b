// Package limits tracks month-to-date spend against per-category budgets.
package limits

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/evseev/kopilka/internal/model"
	"github.com/evseev/kopilka/internal/service"
)

// Limit pairs a category code with its monthly budget. Limits are evaluated
// and rendered in slice order.
type Limit struct {
	CategoryCode string
	Monthly      float64
}

// DefaultLimits returns the built-in monthly budgets. Categories without a
// limit are tracked but not budgeted.
func DefaultLimits() []Limit {
	return []Limit{
		{CategoryCode: model.CategoryFood.Code(), Monthly: 12000},
		{CategoryCode: model.CategoryTransport.Code(), Monthly: 1000},
		{CategoryCode: model.CategoryElectronics.Code(), Monthly: 1000},
		{CategoryCode: model.CategoryFastfood.Code(), Monthly: 2000},
	}
}

// Service implements service.Limits over a storage backend.
type Service struct {
	storage service.Storage
	limits  []Limit
}

// NewService creates a limits service. A nil limits slice falls back to
// DefaultLimits.
func NewService(storage service.Storage, limits []Limit) *Service {
	if limits == nil {
		limits = DefaultLimits()
	}
	return &Service{
		storage: storage,
		limits:  limits,
	}
}

// CategoryLimit returns the monthly budget for a category code, or 0 when the
// category is not budgeted.
func (s *Service) CategoryLimit(categoryCode string) float64 {
	for _, limit := range s.limits {
		if limit.CategoryCode == categoryCode {
			return limit.Monthly
		}
	}
	return 0
}

// MonthReport aggregates spend against limits for the calendar month of now.
func (s *Service) MonthReport(ctx context.Context, userID int64, now time.Time) (service.MonthReport, error) {
	summary, err := s.storage.GetMonthSummary(ctx, userID, now.Month(), now.Year())
	if err != nil {
		return service.MonthReport{}, fmt.Errorf("failed to load month summary: %w", err)
	}

	report := service.MonthReport{
		Month: now.Month(),
		Year:  now.Year(),
	}

	for _, limit := range s.limits {
		spent := summary[limit.CategoryCode]
		status := service.CategoryStatus{
			CategoryCode: limit.CategoryCode,
			Limit:        limit.Monthly,
			Spent:        spent,
			Remaining:    limit.Monthly - spent,
		}
		if limit.Monthly > 0 {
			status.Percent = spent / limit.Monthly * 100
		}

		report.Categories = append(report.Categories, status)
		report.TotalLimit += limit.Monthly
		report.TotalSpent += spent
	}
	report.TotalRemaining = report.TotalLimit - report.TotalSpent

	return report, nil
}

// RenderReport formats a month report as plain text for chat or CLI output.
func RenderReport(report service.MonthReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Лимиты на %02d.%d:\n", report.Month, report.Year)

	for _, status := range report.Categories {
		fmt.Fprintf(&b, "- %s: потрачено %.0f / %.0f ₽ (осталось %.0f ₽, %.0f%%)\n",
			status.CategoryCode, status.Spent, status.Limit, status.Remaining, status.Percent)
	}

	fmt.Fprintf(&b, "\nИтого: %.0f / %.0f ₽ (осталось %.0f ₽)",
		report.TotalSpent, report.TotalLimit, report.TotalRemaining)

	return b.String()
}
