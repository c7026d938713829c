package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/RAVEN850972/cam/internal/apperrors"
	"github.com/RAVEN850972/cam/internal/core/domain"
	portsrepo "github.com/RAVEN850972/cam/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// FinanceService builds aggregated reports over the company's finances.
type FinanceService struct {
	BaseService
	orderRepo   portsrepo.OrderReader
	clientRepo  portsrepo.ClientReader
	catalogRepo portsrepo.CatalogReader
	expenseRepo portsrepo.ExpenseReader
	rules       domain.PricingRules
}

func NewFinanceService(
	orderRepo portsrepo.OrderReader,
	clientRepo portsrepo.ClientReader,
	catalogRepo portsrepo.CatalogReader,
	expenseRepo portsrepo.ExpenseReader,
	rules domain.PricingRules,
) *FinanceService {
	return &FinanceService{
		orderRepo:   orderRepo,
		clientRepo:  clientRepo,
		catalogRepo: catalogRepo,
		expenseRepo: expenseRepo,
		rules:       rules,
	}
}

// GetSummary aggregates revenue, expenses, commissions and net profit for a
// date range. Commissions come from the same per-order decomposition the
// order profit endpoint uses, so the views always agree.
func (s *FinanceService) GetSummary(ctx context.Context, fromDate, toDate string) (*domain.FinanceSummary, error) {
	if err := domain.ValidateDate(fromDate); err != nil {
		return nil, err
	}
	if err := domain.ValidateDate(toDate); err != nil {
		return nil, err
	}
	if fromDate > toDate {
		return nil, apperrors.NewValidationError("fromDate must not be after toDate")
	}

	orders, err := s.orderRepo.ListCompletedOrdersBetween(ctx, fromDate, toDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to load completed orders for summary")
		return nil, fmt.Errorf("failed to load completed orders: %w", err)
	}

	services := map[string]domain.CatalogService{}
	if ids := collectServiceIDs(orders); len(ids) > 0 {
		services, err = s.catalogRepo.FindServicesByIDs(ctx, ids)
		if err != nil {
			s.LogError(ctx, err, "Failed to load catalog services for summary")
			return nil, fmt.Errorf("failed to load catalog services: %w", err)
		}
	}

	summary := domain.FinanceSummary{
		FromDate:           fromDate,
		ToDate:             toDate,
		ExpensesByCategory: make(map[domain.ExpenseCategory]decimal.Decimal),
		RevenueBySource:    make(map[domain.ClientSource]decimal.Decimal),
		CompletedOrders:    len(orders),
	}

	clientSources := make(map[string]domain.ClientSource)
	for _, order := range orders {
		profit := ComputeOrderProfit(order, services, s.rules)
		summary.TotalRevenue = summary.TotalRevenue.Add(profit.Revenue)
		summary.TotalCommissions = summary.TotalCommissions.Add(profit.TotalCommissions)
		summary.TotalExpenses = summary.TotalExpenses.Add(profit.ServicesCost)

		source, ok := clientSources[order.ClientID]
		if !ok {
			client, err := s.clientRepo.FindClientByID(ctx, order.ClientID)
			if err != nil {
				s.LogError(ctx, err, "Failed to resolve order client", slog.String("order_id", order.OrderID))
				return nil, err
			}
			source = client.Source
			clientSources[order.ClientID] = source
		}
		summary.RevenueBySource[source] = summary.RevenueBySource[source].Add(profit.Revenue)
	}

	expenses, err := s.expenseRepo.ListExpenses(ctx, portsrepo.ExpenseFilter{FromDate: fromDate, ToDate: toDate})
	if err != nil {
		s.LogError(ctx, err, "Failed to load expenses for summary")
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	for _, e := range expenses {
		// Procurement expenses are already counted as services cost above.
		if e.Kind == domain.ExpenseProcurement {
			continue
		}
		summary.TotalExpenses = summary.TotalExpenses.Add(e.Amount)
		summary.ExpensesByCategory[e.Category] = summary.ExpensesByCategory[e.Category].Add(e.Amount)
	}

	summary.NetProfit = summary.TotalRevenue.Sub(summary.TotalExpenses).Sub(summary.TotalCommissions)
	return &summary, nil
}
