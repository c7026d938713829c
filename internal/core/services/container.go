package services

import (
	portsrepo "github.com/RAVEN850972/cam/internal/core/ports/repositories"
	portssvc "github.com/RAVEN850972/cam/internal/core/ports/services"
	"github.com/RAVEN850972/cam/internal/platform/config"
)

// NewContainer creates the service container with properly initialized
// dependencies.
func NewContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	rules := cfg.Pricing

	container := &portssvc.ServiceContainer{}
	container.Employee = NewEmployeeService(repos.EmployeeRepo)
	container.Client = NewClientService(repos.ClientRepo, repos.OrderRepo)
	container.Catalog = NewCatalogService(repos.CatalogRepo, repos.OrderRepo, rules)
	container.Order = NewOrderService(repos.OrderRepo, repos.ClientRepo, repos.EmployeeRepo, repos.CatalogRepo, rules)
	container.Payroll = NewPayrollService(repos.EmployeeRepo, repos.OrderRepo, repos.CatalogRepo, repos.PaymentRepo, rules)
	container.Ledger = NewLedgerService(repos.FinanceRepo, repos.ExpenseRepo, repos.PaymentRepo, repos.EmployeeRepo)
	container.Finance = NewFinanceService(repos.OrderRepo, repos.ClientRepo, repos.CatalogRepo, repos.ExpenseRepo, rules)
	container.Export = NewExportService(container.Order, container.Client, container.Payroll, container.Finance)
	container.Auth = NewAuthService(cfg)
	return container
}

// Compile-time interface checks
var (
	_ portssvc.EmployeeSvcFacade   = (*EmployeeService)(nil)
	_ portssvc.ClientSvcFacade     = (*ClientService)(nil)
	_ portssvc.CatalogSvcFacade    = (*CatalogSvc)(nil)
	_ portssvc.OrderSvcFacade      = (*OrderService)(nil)
	_ portssvc.PayrollSvc          = (*PayrollService)(nil)
	_ portssvc.LedgerSvcFacade     = (*LedgerService)(nil)
	_ portssvc.FinanceReportingSvc = (*FinanceService)(nil)
	_ portssvc.ExportSvc           = (*ExportService)(nil)
	_ portssvc.AuthSvc             = (*AuthService)(nil)
)
