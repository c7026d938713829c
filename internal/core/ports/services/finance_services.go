package services

import (
	"context"

	"github.com/RAVEN850972/cam/internal/core/domain"
)

// FinanceReportingSvc defines reporting operations over company finances.
type FinanceReportingSvc interface {
	// GetSummary aggregates revenue, expenses, commissions and net profit
	// for a date range (inclusive, "YYYY-MM-DD").
	GetSummary(ctx context.Context, fromDate, toDate string) (*domain.FinanceSummary, error)
}
