package services

import "context"

// ExportTable is a tabular dataset ready for serialization at the HTTP edge.
type ExportTable struct {
	Filename string
	Header   []string
	Rows     [][]string
}

// ExportSvc produces tabular exports of company data.
type ExportSvc interface {
	// ExportOrders builds a table of orders for a period (empty = all).
	ExportOrders(ctx context.Context, period string) (*ExportTable, error)

	// ExportClients builds a table of all clients.
	ExportClients(ctx context.Context) (*ExportTable, error)

	// ExportPayroll builds the payroll table for a period.
	ExportPayroll(ctx context.Context, period string) (*ExportTable, error)

	// ExportFinanceSummary builds the finance summary table for a date range.
	ExportFinanceSummary(ctx context.Context, fromDate, toDate string) (*ExportTable, error)
}
