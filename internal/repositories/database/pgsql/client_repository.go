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

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

const clientColumns = `client_id, name, phone, address, source, created_at, last_updated_at`

func scanClient(row pgx.Row) (*domain.Client, error) {
	var c domain.Client
	err := row.Scan(
		&c.ClientID,
		&c.Name,
		&c.Phone,
		&c.Address,
		&c.Source,
		&c.CreatedAt,
		&c.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SaveClient inserts a new client.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	query := `
		INSERT INTO clients (client_id, name, phone, address, source, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		client.ClientID,
		client.Name,
		client.Phone,
		client.Address,
		client.Source,
		client.CreatedAt,
		client.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: client with phone %s already exists", apperrors.ErrDuplicate, client.Phone)
		}
		return fmt.Errorf("failed to save client %s: %w", client.ClientID, err)
	}
	return nil
}

// FindClientByID retrieves a client by its ID.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1;`
	client, err := scanClient(r.Pool.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: client %s", apperrors.ErrNotFound, clientID)
		}
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}
	return client, nil
}

// FindClientByPhone retrieves a client by phone number.
func (r *PgxClientRepository) FindClientByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE phone = $1;`
	client, err := scanClient(r.Pool.QueryRow(ctx, query, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: client with phone %s", apperrors.ErrNotFound, phone)
		}
		return nil, fmt.Errorf("failed to find client by phone: %w", err)
	}
	return client, nil
}

// ListClients retrieves a paginated list of clients.
func (r *PgxClientRepository) ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, *c)
	}
	return clients, rows.Err()
}

// CountClientsBySource aggregates client counts per acquisition source.
func (r *PgxClientRepository) CountClientsBySource(ctx context.Context) (map[domain.ClientSource]int, error) {
	query := `SELECT source, COUNT(*) FROM clients GROUP BY source;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count clients by source: %w", err)
	}
	defer rows.Close()

	stats := make(map[domain.ClientSource]int)
	for rows.Next() {
		var source domain.ClientSource
		var count int
		if err := rows.Scan(&source, &count); err != nil {
			return nil, fmt.Errorf("failed to scan source count: %w", err)
		}
		stats[source] = count
	}
	return stats, rows.Err()
}

// UpdateClient updates an existing client.
func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	query := `
		UPDATE clients
		SET name = $2, phone = $3, address = $4, source = $5, last_updated_at = $6
		WHERE client_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		client.ClientID,
		client.Name,
		client.Phone,
		client.Address,
		client.Source,
		client.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: client with phone %s already exists", apperrors.ErrDuplicate, client.Phone)
		}
		return fmt.Errorf("failed to update client %s: %w", client.ClientID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: client %s", apperrors.ErrNotFound, client.ClientID)
	}
	return nil
}

// DeleteClient removes a client.
func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM clients WHERE client_id = $1;`, clientID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: client %s still has orders", apperrors.ErrConflict, clientID)
		}
		return fmt.Errorf("failed to delete client %s: %w", clientID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: client %s", apperrors.ErrNotFound, clientID)
	}
	return nil
}
