package services

import (
	"context"

	"github.com/RAVEN850972/cam/internal/core/domain"
)

// PayrollSvc defines payroll computation operations. Computations are pure
// reads; running them twice for the same period yields identical results.
type PayrollSvc interface {
	// GetEmployeeEarnings computes one employee's salary, paid and to-pay
	// amounts for a period ("YYYY-MM", empty = current month).
	GetEmployeeEarnings(ctx context.Context, employeeID string, period string) (*domain.EmployeeEarnings, error)

	// GetPayroll computes the payroll summary for every active employee.
	GetPayroll(ctx context.Context, period string) (*domain.PayrollSummary, error)
}
