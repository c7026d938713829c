package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/RAVEN850972/cam/internal/apperrors"
	"github.com/RAVEN850972/cam/internal/core/domain"
	portsrepo "github.com/RAVEN850972/cam/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, category, kind, amount, description, expense_date, related_order_id, related_service_id, created_at, last_updated_at`

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var e domain.Expense
	err := row.Scan(
		&e.ExpenseID,
		&e.Category,
		&e.Kind,
		&e.Amount,
		&e.Description,
		&e.ExpenseDate,
		&e.RelatedOrderID,
		&e.RelatedServiceID,
		&e.CreatedAt,
		&e.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// SaveExpenseInTx inserts an expense within an existing transaction.
func (r *PgxExpenseRepository) SaveExpenseInTx(ctx context.Context, tx pgx.Tx, expense domain.Expense) error {
	query := `
		INSERT INTO expenses (expense_id, category, kind, amount, description, expense_date, related_order_id, related_service_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := tx.Exec(ctx, query,
		expense.ExpenseID,
		expense.Category,
		expense.Kind,
		expense.Amount,
		expense.Description,
		expense.ExpenseDate,
		expense.RelatedOrderID,
		expense.RelatedServiceID,
		expense.CreatedAt,
		expense.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: expense %s already exists", apperrors.ErrDuplicate, expense.ExpenseID)
		}
		return fmt.Errorf("failed to insert expense %s: %w", expense.ExpenseID, err)
	}
	return nil
}

// FindExpenseByID retrieves an expense by its ID.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1;`
	expense, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, expenseID)
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}
	return expense, nil
}

// ListExpenses retrieves expenses matching the filter.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, filter portsrepo.ExpenseFilter) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE 1=1`
	args := []any{}
	idx := 1

	if filter.Category != nil {
		query += fmt.Sprintf(` AND category = $%d`, idx)
		args = append(args, *filter.Category)
		idx++
	}
	if filter.FromDate != "" {
		query += fmt.Sprintf(` AND expense_date >= $%d`, idx)
		args = append(args, filter.FromDate)
		idx++
	}
	if filter.ToDate != "" {
		query += fmt.Sprintf(` AND expense_date <= $%d`, idx)
		args = append(args, filter.ToDate)
		idx++
	}
	query += ` ORDER BY expense_date DESC`
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
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, *e)
	}
	return expenses, rows.Err()
}

// UpdateExpense updates an expense's descriptive fields.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		UPDATE expenses
		SET category = $2, description = $3, last_updated_at = $4
		WHERE expense_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		expense.ExpenseID,
		expense.Category,
		expense.Description,
		expense.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", expense.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, expense.ExpenseID)
	}
	return nil
}

// DeleteExpenseInTx removes an expense within an existing transaction.
func (r *PgxExpenseRepository) DeleteExpenseInTx(ctx context.Context, tx pgx.Tx, expenseID string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, expenseID)
	}
	return nil
}
