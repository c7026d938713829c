package services

import (
	"context"
	"fmt"

	"github.com/RAVEN850972/cam/internal/core/domain"
	portssvc "github.com/RAVEN850972/cam/internal/core/ports/services"
	"github.com/RAVEN850972/cam/internal/dto"
)

// ExportService builds tabular datasets from the other services. Handlers
// serialize the tables; this layer only decides rows and columns.
type ExportService struct {
	BaseService
	orders  portssvc.OrderReaderSvc
	clients portssvc.ClientReaderSvc
	payroll portssvc.PayrollSvc
	finance portssvc.FinanceReportingSvc
}

func NewExportService(
	orders portssvc.OrderReaderSvc,
	clients portssvc.ClientReaderSvc,
	payroll portssvc.PayrollSvc,
	finance portssvc.FinanceReportingSvc,
) *ExportService {
	return &ExportService{orders: orders, clients: clients, payroll: payroll, finance: finance}
}

// ExportOrders builds a table of orders for a period (empty = all).
func (s *ExportService) ExportOrders(ctx context.Context, period string) (*portssvc.ExportTable, error) {
	if period != "" {
		normalized, err := domain.NormalizePeriod(period)
		if err != nil {
			return nil, err
		}
		period = normalized
	}

	orders, err := s.orders.ListOrders(ctx, dto.ListOrdersRequest{Period: period, Limit: 10000})
	if err != nil {
		return nil, err
	}

	table := &portssvc.ExportTable{
		Filename: "orders.csv",
		Header:   []string{"Order ID", "Client ID", "Manager ID", "Address", "Order Date", "Completion Date", "Status", "Mount Price", "Total Price"},
	}
	for _, o := range orders {
		completion := ""
		if o.CompletionDate != nil {
			completion = *o.CompletionDate
		}
		table.Rows = append(table.Rows, []string{
			o.OrderID,
			o.ClientID,
			o.ManagerID,
			o.Address,
			o.OrderDate,
			completion,
			string(o.Status),
			o.MountPrice.Round(2).String(),
			o.TotalPrice().Round(2).String(),
		})
	}
	return table, nil
}

// ExportClients builds a table of all clients.
func (s *ExportService) ExportClients(ctx context.Context) (*portssvc.ExportTable, error) {
	clients, err := s.clients.ListClients(ctx, 10000, 0)
	if err != nil {
		return nil, err
	}

	table := &portssvc.ExportTable{
		Filename: "clients.csv",
		Header:   []string{"Client ID", "Name", "Phone", "Address", "Source"},
	}
	for _, c := range clients {
		table.Rows = append(table.Rows, []string{c.ClientID, c.Name, c.Phone, c.Address, string(c.Source)})
	}
	return table, nil
}

// ExportPayroll builds the payroll table for a period.
func (s *ExportService) ExportPayroll(ctx context.Context, period string) (*portssvc.ExportTable, error) {
	summary, err := s.payroll.GetPayroll(ctx, period)
	if err != nil {
		return nil, err
	}

	table := &portssvc.ExportTable{
		Filename: fmt.Sprintf("payroll_%s.csv", summary.Period),
		Header:   []string{"Employee ID", "Name", "Role", "Orders", "Salary", "Paid", "To Pay"},
	}
	for _, e := range summary.Employees {
		table.Rows = append(table.Rows, []string{
			e.EmployeeID,
			e.Name,
			string(e.Role),
			fmt.Sprintf("%d", e.OrderCount),
			e.Salary.Round(2).String(),
			e.Paid.Round(2).String(),
			e.ToPay.Round(2).String(),
		})
	}
	table.Rows = append(table.Rows, []string{
		"", "Total", "",
		"",
		summary.TotalSalary.Round(2).String(),
		summary.TotalPaid.Round(2).String(),
		summary.TotalToPay.Round(2).String(),
	})
	return table, nil
}

// ExportFinanceSummary builds the finance summary table for a date range.
func (s *ExportService) ExportFinanceSummary(ctx context.Context, fromDate, toDate string) (*portssvc.ExportTable, error) {
	summary, err := s.finance.GetSummary(ctx, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	table := &portssvc.ExportTable{
		Filename: fmt.Sprintf("finance_%s_%s.csv", fromDate, toDate),
		Header:   []string{"Metric", "Value"},
		Rows: [][]string{
			{"From", summary.FromDate},
			{"To", summary.ToDate},
			{"Completed orders", fmt.Sprintf("%d", summary.CompletedOrders)},
			{"Total revenue", summary.TotalRevenue.Round(2).String()},
			{"Total expenses", summary.TotalExpenses.Round(2).String()},
			{"Total commissions", summary.TotalCommissions.Round(2).String()},
			{"Net profit", summary.NetProfit.Round(2).String()},
		},
	}
	for category, amount := range summary.ExpensesByCategory {
		table.Rows = append(table.Rows, []string{fmt.Sprintf("Expenses: %s", category), amount.Round(2).String()})
	}
	for source, amount := range summary.RevenueBySource {
		table.Rows = append(table.Rows, []string{fmt.Sprintf("Revenue: %s", source), amount.Round(2).String()})
	}
	return table, nil
}
