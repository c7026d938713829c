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

// PgxOrderRepository persists orders with their lines and crew. It holds the
// finance repository so order creation can book its income transaction in
// the same database transaction.
type PgxOrderRepository struct {
	BaseRepository
	financeRepo portsrepo.FinanceWriter
}

func newPgxOrderRepository(pool *pgxpool.Pool, financeRepo portsrepo.FinanceWriter) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{BaseRepository{Pool: pool}, financeRepo}
}

var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

const orderColumns = `order_id, client_id, manager_id, address, order_date, completion_date, status, mount_price, owner_commission, notes, created_at, last_updated_at`

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.OrderID,
		&o.ClientID,
		&o.ManagerID,
		&o.Address,
		&o.OrderDate,
		&o.CompletionDate,
		&o.Status,
		&o.MountPrice,
		&o.OwnerCommission,
		&o.Notes,
		&o.CreatedAt,
		&o.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// SaveOrder persists an order with its lines and crew, booking the income
// transaction against the company balance, all atomically.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order, income *domain.FinancialTransaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	orderQuery := `
		INSERT INTO orders (order_id, client_id, manager_id, address, order_date, completion_date, status, mount_price, owner_commission, notes, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, orderQuery,
		order.OrderID,
		order.ClientID,
		order.ManagerID,
		order.Address,
		order.OrderDate,
		order.CompletionDate,
		order.Status,
		order.MountPrice,
		order.OwnerCommission,
		order.Notes,
		order.CreatedAt,
		order.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: order %s already exists", apperrors.ErrDuplicate, order.OrderID)
		}
		return fmt.Errorf("failed to insert order %s: %w", order.OrderID, err)
	}

	if err := insertLinesAndCrew(ctx, tx, order); err != nil {
		return err
	}

	if income != nil {
		if err := r.financeRepo.ApplyTransactionInTx(ctx, tx, *income); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func insertLinesAndCrew(ctx context.Context, tx pgx.Tx, order domain.Order) error {
	batch := &pgx.Batch{}

	lineQuery := `
		INSERT INTO order_lines (line_id, order_id, service_id, selling_price, sold_by_id)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, line := range order.Lines {
		batch.Queue(lineQuery, line.LineID, line.OrderID, line.ServiceID, line.SellingPrice, line.SoldByID)
	}

	crewQuery := `
		INSERT INTO order_assignments (assignment_id, order_id, employee_id, role, base_payment)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, a := range order.Crew {
		batch.Queue(crewQuery, a.AssignmentID, a.OrderID, a.EmployeeID, a.Role, a.BasePayment)
	}

	if batch.Len() == 0 {
		return nil
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert order lines and crew for %s: %w", order.OrderID, err)
	}
	return nil
}

// UpdateOrder updates an order's mutable fields and replaces its lines and
// crew atomically.
func (r *PgxOrderRepository) UpdateOrder(ctx context.Context, order domain.Order) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		UPDATE orders
		SET address = $2, order_date = $3, completion_date = $4, status = $5, mount_price = $6, owner_commission = $7, notes = $8, last_updated_at = $9
		WHERE order_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		order.OrderID,
		order.Address,
		order.OrderDate,
		order.CompletionDate,
		order.Status,
		order.MountPrice,
		order.OwnerCommission,
		order.Notes,
		order.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update order %s: %w", order.OrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: order %s", apperrors.ErrNotFound, order.OrderID)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM order_lines WHERE order_id = $1;`, order.OrderID); err != nil {
		return fmt.Errorf("failed to replace order lines for %s: %w", order.OrderID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM order_assignments WHERE order_id = $1;`, order.OrderID); err != nil {
		return fmt.Errorf("failed to replace order crew for %s: %w", order.OrderID, err)
	}
	if err := insertLinesAndCrew(ctx, tx, order); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindOrderByID retrieves an order with its lines and crew loaded.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1;`
	order, err := scanOrder(r.Pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: order %s", apperrors.ErrNotFound, orderID)
		}
		return nil, fmt.Errorf("failed to find order %s: %w", orderID, err)
	}

	orders := []domain.Order{*order}
	if err := r.attachLinesAndCrew(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// ListOrders retrieves orders matching the filter, with lines and crew.
func (r *PgxOrderRepository) ListOrders(ctx context.Context, filter portsrepo.OrderFilter) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`
	args := []any{}
	idx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(` AND status = $%d`, idx)
		args = append(args, *filter.Status)
		idx++
	}
	if filter.Period != "" {
		query += fmt.Sprintf(` AND order_date LIKE $%d`, idx)
		args = append(args, filter.Period+"%")
		idx++
	}
	if filter.ClientID != "" {
		query += fmt.Sprintf(` AND client_id = $%d`, idx)
		args = append(args, filter.ClientID)
		idx++
	}
	query += ` ORDER BY order_date DESC`
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

	return r.queryOrders(ctx, query, args...)
}

// ListCompletedOrdersInPeriod retrieves completed orders whose completion
// date falls inside the period. The period key is a zero-padded prefix of
// the stored date, so LIKE matching is exact.
func (r *PgxOrderRepository) ListCompletedOrdersInPeriod(ctx context.Context, period string) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status = 'completed' AND completion_date LIKE $1 ORDER BY completion_date;`
	return r.queryOrders(ctx, query, period+"%")
}

// ListCompletedOrdersBetween retrieves completed orders in a date range.
func (r *PgxOrderRepository) ListCompletedOrdersBetween(ctx context.Context, fromDate, toDate string) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + ` FROM orders
		WHERE status = 'completed' AND substring(completion_date from 1 for 10) BETWEEN $1 AND $2
		ORDER BY completion_date;
	`
	return r.queryOrders(ctx, query, fromDate, toDate)
}

// CountOrdersByClientID counts orders belonging to a client.
func (r *PgxOrderRepository) CountOrdersByClientID(ctx context.Context, clientID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE client_id = $1;`, clientID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count orders for client %s: %w", clientID, err)
	}
	return count, nil
}

// CountLinesByServiceID counts order lines referencing a catalog service.
func (r *PgxOrderRepository) CountLinesByServiceID(ctx context.Context, serviceID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM order_lines WHERE service_id = $1;`, serviceID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count lines for service %s: %w", serviceID, err)
	}
	return count, nil
}

func (r *PgxOrderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachLinesAndCrew(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// attachLinesAndCrew loads lines and crew for a batch of orders in two
// queries.
func (r *PgxOrderRepository) attachLinesAndCrew(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	orderIDs := make([]string, len(orders))
	index := make(map[string]int, len(orders))
	for i, o := range orders {
		orderIDs[i] = o.OrderID
		index[o.OrderID] = i
	}

	lineRows, err := r.Pool.Query(ctx,
		`SELECT line_id, order_id, service_id, selling_price, sold_by_id FROM order_lines WHERE order_id = ANY($1);`,
		orderIDs,
	)
	if err != nil {
		return fmt.Errorf("failed to load order lines: %w", err)
	}
	defer lineRows.Close()
	for lineRows.Next() {
		var l domain.OrderLine
		if err := lineRows.Scan(&l.LineID, &l.OrderID, &l.ServiceID, &l.SellingPrice, &l.SoldByID); err != nil {
			return fmt.Errorf("failed to scan order line: %w", err)
		}
		i := index[l.OrderID]
		orders[i].Lines = append(orders[i].Lines, l)
	}
	if err := lineRows.Err(); err != nil {
		return err
	}

	crewRows, err := r.Pool.Query(ctx,
		`SELECT assignment_id, order_id, employee_id, role, base_payment FROM order_assignments WHERE order_id = ANY($1);`,
		orderIDs,
	)
	if err != nil {
		return fmt.Errorf("failed to load order crew: %w", err)
	}
	defer crewRows.Close()
	for crewRows.Next() {
		var a domain.OrderAssignment
		if err := crewRows.Scan(&a.AssignmentID, &a.OrderID, &a.EmployeeID, &a.Role, &a.BasePayment); err != nil {
			return fmt.Errorf("failed to scan order assignment: %w", err)
		}
		i := index[a.OrderID]
		orders[i].Crew = append(orders[i].Crew, a)
	}
	return crewRows.Err()
}
