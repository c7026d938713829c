package repositories

import (
	"context"

	"github.com/RAVEN850972/cam/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionFilter narrows transaction history listings.
type TransactionFilter struct {
	Type     *domain.TransactionType
	FromDate string
	ToDate   string
	Limit    int
	Offset   int
}

// FinanceReader defines read operations for the company ledger
type FinanceReader interface {
	// GetBalance retrieves the singleton company balance row.
	// Returns apperrors.ErrNotInitialized when no row exists yet.
	GetBalance(ctx context.Context) (*domain.CompanyBalance, error)

	// ListTransactions retrieves transaction history matching the filter,
	// newest first.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.FinancialTransaction, error)

	// ListTransactionsBetween retrieves every transaction in a date range.
	ListTransactionsBetween(ctx context.Context, fromDate, toDate string) ([]domain.FinancialTransaction, error)
}

// FinanceWriter defines write operations for the company ledger
type FinanceWriter interface {
	// InitializeBalance creates the singleton balance row and books the
	// opening owner contribution atomically. Returns apperrors.ErrConflict
	// if the balance already exists.
	InitializeBalance(ctx context.Context, balance domain.CompanyBalance, opening domain.FinancialTransaction) error

	// ApplyTransaction appends a transaction and mutates the balance inside
	// its own database transaction.
	ApplyTransaction(ctx context.Context, txn domain.FinancialTransaction) error

	// ApplyTransactionInTx appends a transaction and mutates the balance
	// within an existing database transaction, locking the balance row.
	ApplyTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.FinancialTransaction) error
}

// FinanceRepositoryFacade combines all ledger-related repository interfaces
type FinanceRepositoryFacade interface {
	FinanceReader
	FinanceWriter
	TransactionManager
}
