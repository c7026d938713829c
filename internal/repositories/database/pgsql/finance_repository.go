package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RAVEN850972/cam/internal/apperrors"
	"github.com/RAVEN850972/cam/internal/core/domain"
	portsrepo "github.com/RAVEN850972/cam/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFinanceRepository struct {
	BaseRepository
}

func newPgxFinanceRepository(pool *pgxpool.Pool) portsrepo.FinanceRepositoryFacade {
	return &PgxFinanceRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.FinanceRepositoryFacade = (*PgxFinanceRepository)(nil)

const balanceColumns = `balance_id, balance, initial_balance, last_transaction_id, last_transaction_type, created_at, last_updated_at`
const transactionColumns = `transaction_id, transaction_date, amount, type, source_type, source_id, description, created_at, last_updated_at`

func scanBalance(row pgx.Row) (*domain.CompanyBalance, error) {
	var b domain.CompanyBalance
	err := row.Scan(
		&b.BalanceID,
		&b.Balance,
		&b.InitialBalance,
		&b.LastTransactionID,
		&b.LastTransactionType,
		&b.CreatedAt,
		&b.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func scanTransaction(row pgx.Row) (*domain.FinancialTransaction, error) {
	var t domain.FinancialTransaction
	err := row.Scan(
		&t.TransactionID,
		&t.TransactionDate,
		&t.Amount,
		&t.Type,
		&t.SourceType,
		&t.SourceID,
		&t.Description,
		&t.CreatedAt,
		&t.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetBalance retrieves the singleton balance row.
func (r *PgxFinanceRepository) GetBalance(ctx context.Context) (*domain.CompanyBalance, error) {
	query := `SELECT ` + balanceColumns + ` FROM company_balance LIMIT 1;`
	balance, err := scanBalance(r.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotInitialized
		}
		return nil, fmt.Errorf("failed to get company balance: %w", err)
	}
	return balance, nil
}

// InitializeBalance creates the singleton balance row and books the opening
// transaction atomically.
func (r *PgxFinanceRepository) InitializeBalance(ctx context.Context, balance domain.CompanyBalance, opening domain.FinancialTransaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var existing int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM company_balance;`).Scan(&existing); err != nil {
		return fmt.Errorf("failed to check for existing balance: %w", err)
	}
	if existing > 0 {
		return fmt.Errorf("%w: company balance is already initialized", apperrors.ErrConflict)
	}

	if err := insertTransaction(ctx, tx, opening); err != nil {
		return err
	}

	query := `
		INSERT INTO company_balance (balance_id, balance, initial_balance, last_transaction_id, last_transaction_type, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, query,
		balance.BalanceID,
		balance.Balance,
		balance.InitialBalance,
		balance.LastTransactionID,
		balance.LastTransactionType,
		balance.CreatedAt,
		balance.LastUpdatedAt,
	)
	if err != nil {
		// The singleton unique index catches concurrent initializations that
		// both pass the count check.
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: company balance is already initialized", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to insert company balance: %w", err)
	}

	return r.Commit(ctx, tx)
}

// ApplyTransaction appends a transaction and mutates the balance inside its
// own database transaction.
func (r *PgxFinanceRepository) ApplyTransaction(ctx context.Context, txn domain.FinancialTransaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := r.ApplyTransactionInTx(ctx, tx, txn); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// ApplyTransactionInTx appends a transaction and mutates the balance within
// an existing database transaction. The balance row is locked so concurrent
// mutations serialize.
func (r *PgxFinanceRepository) ApplyTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.FinancialTransaction) error {
	lockQuery := `SELECT ` + balanceColumns + ` FROM company_balance LIMIT 1 FOR UPDATE;`
	balance, err := scanBalance(tx.QueryRow(ctx, lockQuery))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotInitialized
		}
		return fmt.Errorf("failed to lock company balance: %w", err)
	}

	if err := insertTransaction(ctx, tx, txn); err != nil {
		return err
	}

	newBalance := balance.Balance.Add(txn.Type.SignedAmount(txn.Amount))
	updateQuery := `
		UPDATE company_balance
		SET balance = $2, last_transaction_id = $3, last_transaction_type = $4, last_updated_at = $5
		WHERE balance_id = $1;
	`
	_, err = tx.Exec(ctx, updateQuery,
		balance.BalanceID,
		newBalance,
		txn.TransactionID,
		txn.Type,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to update company balance: %w", err)
	}
	return nil
}

func insertTransaction(ctx context.Context, tx pgx.Tx, txn domain.FinancialTransaction) error {
	query := `
		INSERT INTO transactions (transaction_id, transaction_date, amount, type, source_type, source_id, description, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := tx.Exec(ctx, query,
		txn.TransactionID,
		txn.TransactionDate,
		txn.Amount,
		txn.Type,
		txn.SourceType,
		txn.SourceID,
		txn.Description,
		txn.CreatedAt,
		txn.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// ListTransactions retrieves transaction history matching the filter,
// newest first.
func (r *PgxFinanceRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.FinancialTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	args := []any{}
	idx := 1

	if filter.Type != nil {
		query += fmt.Sprintf(` AND type = $%d`, idx)
		args = append(args, *filter.Type)
		idx++
	}
	if filter.FromDate != "" {
		query += fmt.Sprintf(` AND transaction_date >= $%d`, idx)
		args = append(args, filter.FromDate)
		idx++
	}
	if filter.ToDate != "" {
		query += fmt.Sprintf(` AND transaction_date <= $%d`, idx)
		args = append(args, filter.ToDate)
		idx++
	}
	query += ` ORDER BY transaction_date DESC, created_at DESC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d`, idx)
		args = append(args, filter.Limit)
		idx++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(` OFFSET $%d`, idx)
		args = append(args, filter.Offset)
	}
	query += `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.FinancialTransaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, *t)
	}
	return txns, rows.Err()
}

// ListTransactionsBetween retrieves every transaction in a date range.
func (r *PgxFinanceRepository) ListTransactionsBetween(ctx context.Context, fromDate, toDate string) ([]domain.FinancialTransaction, error) {
	return r.ListTransactions(ctx, portsrepo.TransactionFilter{FromDate: fromDate, ToDate: toDate})
}
