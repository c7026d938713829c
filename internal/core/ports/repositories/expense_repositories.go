package repositories

import (
	"context"

	"github.com/RAVEN850972/cam/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ExpenseFilter narrows expense listings.
type ExpenseFilter struct {
	Category *domain.ExpenseCategory
	FromDate string
	ToDate   string
	Limit    int
	Offset   int
}

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves expenses matching the filter.
	ListExpenses(ctx context.Context, filter ExpenseFilter) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpenseInTx persists an expense within an existing transaction, so
	// its balance booking can share the same transaction.
	SaveExpenseInTx(ctx context.Context, tx pgx.Tx, expense domain.Expense) error

	// UpdateExpense updates an expense's descriptive fields. Amount changes
	// are not supported; the ledger is append-only.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpenseInTx removes an expense within an existing transaction,
	// so the compensating income booking can share the same transaction.
	DeleteExpenseInTx(ctx context.Context, tx pgx.Tx, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
	TransactionManager
}
