package pgsql

import (
	"context"
	"fmt"

	"github.com/RAVEN850972/cam/internal/apperrors"
	"github.com/RAVEN850972/cam/internal/core/domain"
	portsrepo "github.com/RAVEN850972/cam/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, employee_id, amount, payment_date, description, created_at, last_updated_at`

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(
		&p.PaymentID,
		&p.EmployeeID,
		&p.Amount,
		&p.PaymentDate,
		&p.Description,
		&p.CreatedAt,
		&p.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SavePaymentInTx inserts a payment within an existing transaction.
func (r *PgxPaymentRepository) SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	query := `
		INSERT INTO payments (payment_id, employee_id, amount, payment_date, description, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, query,
		payment.PaymentID,
		payment.EmployeeID,
		payment.Amount,
		payment.PaymentDate,
		payment.Description,
		payment.CreatedAt,
		payment.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: payment %s already exists", apperrors.ErrDuplicate, payment.PaymentID)
		}
		return fmt.Errorf("failed to insert payment %s: %w", payment.PaymentID, err)
	}
	return nil
}

// FindPaymentsByEmployeeInPeriod retrieves an employee's payments in a
// period, matched by date prefix.
func (r *PgxPaymentRepository) FindPaymentsByEmployeeInPeriod(ctx context.Context, employeeID string, period string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE employee_id = $1 AND payment_date LIKE $2 ORDER BY payment_date;`
	return r.queryPayments(ctx, query, employeeID, period+"%")
}

// ListPaymentsInPeriod retrieves every payment in a period.
func (r *PgxPaymentRepository) ListPaymentsInPeriod(ctx context.Context, period string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_date LIKE $1 ORDER BY payment_date;`
	return r.queryPayments(ctx, query, period+"%")
}

func (r *PgxPaymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}
