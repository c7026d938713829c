package repositories

import (
	"context"

	"github.com/RAVEN850972/cam/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentsByEmployeeInPeriod retrieves an employee's payments whose
	// payment date falls inside the period.
	FindPaymentsByEmployeeInPeriod(ctx context.Context, employeeID string, period string) ([]domain.Payment, error)

	// ListPaymentsInPeriod retrieves every payment in the period.
	ListPaymentsInPeriod(ctx context.Context, period string) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePaymentInTx persists a payment within an existing transaction, so
	// the payout's balance booking can share the same transaction.
	SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
	TransactionManager
}
