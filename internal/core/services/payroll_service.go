package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/RAVEN850972/cam/internal/apperrors"
	"github.com/RAVEN850972/cam/internal/core/domain"
	portsrepo "github.com/RAVEN850972/cam/internal/core/ports/repositories"
)

// PayrollService computes employee earnings for a period. It loads the
// period's data once and drives the pure earnings algorithms, so computing
// payroll never issues per-employee queries.
type PayrollService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
	orderRepo    portsrepo.OrderReader
	catalogRepo  portsrepo.CatalogReader
	paymentRepo  portsrepo.PaymentReader
	rules        domain.PricingRules
}

func NewPayrollService(
	employeeRepo portsrepo.EmployeeRepositoryFacade,
	orderRepo portsrepo.OrderReader,
	catalogRepo portsrepo.CatalogReader,
	paymentRepo portsrepo.PaymentReader,
	rules domain.PricingRules,
) *PayrollService {
	return &PayrollService{
		employeeRepo: employeeRepo,
		orderRepo:    orderRepo,
		catalogRepo:  catalogRepo,
		paymentRepo:  paymentRepo,
		rules:        rules,
	}
}

// GetEmployeeEarnings computes one employee's payroll line for a period.
func (s *PayrollService) GetEmployeeEarnings(ctx context.Context, employeeID string, period string) (*domain.EmployeeEarnings, error) {
	period, err := domain.NormalizePeriod(period)
	if err != nil {
		return nil, err
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee for earnings", slog.String("employee_id", employeeID))
		}
		return nil, err
	}

	ds, err := s.loadDataset(ctx, period)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.FindPaymentsByEmployeeInPeriod(ctx, employeeID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payments for earnings", slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}

	earnings := buildEarnings(*employee, period, ds, payments)
	return &earnings, nil
}

// GetPayroll computes the payroll summary for every active employee.
func (s *PayrollService) GetPayroll(ctx context.Context, period string) (*domain.PayrollSummary, error) {
	period, err := domain.NormalizePeriod(period)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListEmployees(ctx, false)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees for payroll")
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	ds, err := s.loadDataset(ctx, period)
	if err != nil {
		return nil, err
	}

	allPayments, err := s.paymentRepo.ListPaymentsInPeriod(ctx, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments for payroll", slog.String("period", period))
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	paymentsByEmployee := make(map[string][]domain.Payment)
	for _, p := range allPayments {
		paymentsByEmployee[p.EmployeeID] = append(paymentsByEmployee[p.EmployeeID], p)
	}

	summary := domain.PayrollSummary{Period: period}
	for _, employee := range employees {
		earnings := buildEarnings(employee, period, ds, paymentsByEmployee[employee.EmployeeID])
		summary.Employees = append(summary.Employees, earnings)
		summary.TotalSalary = summary.TotalSalary.Add(earnings.Salary)
		summary.TotalPaid = summary.TotalPaid.Add(earnings.Paid)
		summary.TotalToPay = summary.TotalToPay.Add(earnings.ToPay)
	}

	s.LogDebug(ctx, "Payroll computed", slog.String("period", period), slog.Int("employees", len(summary.Employees)))
	return &summary, nil
}

// loadDataset fetches the period's completed orders and the catalog entries
// their lines reference.
func (s *PayrollService) loadDataset(ctx context.Context, period string) (PayrollDataset, error) {
	orders, err := s.orderRepo.ListCompletedOrdersInPeriod(ctx, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to load completed orders", slog.String("period", period))
		return PayrollDataset{}, fmt.Errorf("failed to load completed orders: %w", err)
	}

	serviceIDs := collectServiceIDs(orders)
	services := map[string]domain.CatalogService{}
	if len(serviceIDs) > 0 {
		services, err = s.catalogRepo.FindServicesByIDs(ctx, serviceIDs)
		if err != nil {
			s.LogError(ctx, err, "Failed to load catalog services", slog.String("period", period))
			return PayrollDataset{}, fmt.Errorf("failed to load catalog services: %w", err)
		}
	}

	return PayrollDataset{Orders: orders, Services: services, Rules: s.rules}, nil
}

func buildEarnings(employee domain.Employee, period string, ds PayrollDataset, payments []domain.Payment) domain.EmployeeEarnings {
	breakdown, orderCount := ComputeEarnings(employee, ds)
	salary := TotalEarnings(breakdown)
	paid := SumPayments(payments)
	return domain.EmployeeEarnings{
		EmployeeID: employee.EmployeeID,
		Name:       employee.Name,
		Role:       employee.Role,
		Period:     period,
		OrderCount: orderCount,
		Breakdown:  breakdown,
		Salary:     salary,
		Paid:       paid,
		ToPay:      salary.Sub(paid),
	}
}

func collectServiceIDs(orders []domain.Order) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, order := range orders {
		for _, line := range order.Lines {
			if !seen[line.ServiceID] {
				seen[line.ServiceID] = true
				ids = append(ids, line.ServiceID)
			}
		}
	}
	return ids
}
