package pgsql

import (
	portsrepo "github.com/RAVEN850972/cam/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	employeeRepo := newPgxEmployeeRepository(dbPool)
	clientRepo := newPgxClientRepository(dbPool)
	catalogRepo := newPgxCatalogRepository(dbPool)
	financeRepo := newPgxFinanceRepository(dbPool)
	orderRepo := newPgxOrderRepository(dbPool, financeRepo)
	paymentRepo := newPgxPaymentRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)

	return portsrepo.RepositoryProvider{
		EmployeeRepo: employeeRepo,
		ClientRepo:   clientRepo,
		CatalogRepo:  catalogRepo,
		OrderRepo:    orderRepo,
		PaymentRepo:  paymentRepo,
		ExpenseRepo:  expenseRepo,
		FinanceRepo:  financeRepo,
	}
}
