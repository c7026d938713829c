package services

import (
	"context"

	"github.com/RAVEN850972/cam/internal/core/domain"
	"github.com/RAVEN850972/cam/internal/dto"
)

// LedgerReaderSvc defines read operations for the company ledger
type LedgerReaderSvc interface {
	// GetBalance retrieves the current company balance.
	GetBalance(ctx context.Context) (*domain.CompanyBalance, error)

	// ListTransactions retrieves transaction history matching the request.
	ListTransactions(ctx context.Context, req dto.ListTransactionsRequest) ([]domain.FinancialTransaction, error)

	// ListExpenses retrieves expenses matching the request.
	ListExpenses(ctx context.Context, req dto.ListExpensesRequest) ([]domain.Expense, error)
}

// LedgerWriterSvc defines write operations for the company ledger
type LedgerWriterSvc interface {
	// InitializeBalance creates the company balance exactly once, booking
	// the opening amount as an owner contribution.
	InitializeBalance(ctx context.Context, req dto.InitializeBalanceRequest) (*domain.CompanyBalance, error)

	// RecordExpense persists an expense and books it against the balance.
	RecordExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// UpdateExpense updates an expense's descriptive fields.
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)

	// DeleteExpense removes an expense, booking a compensating income
	// transaction so the ledger stays append-only.
	DeleteExpense(ctx context.Context, expenseID string) error

	// RecordPayment persists an employee payment. Positive amounts book a
	// payout against the balance; penalties never touch it.
	RecordPayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
