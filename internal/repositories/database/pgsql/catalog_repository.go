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

type PgxCatalogRepository struct {
	BaseRepository
}

func newPgxCatalogRepository(pool *pgxpool.Pool) portsrepo.CatalogRepositoryFacade {
	return &PgxCatalogRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CatalogRepositoryFacade = (*PgxCatalogRepository)(nil)

const serviceColumns = `service_id, name, category, power_type, purchase_price, selling_price, is_manager_bonus, installer_bonus_fixed, created_at, last_updated_at`

func scanService(row pgx.Row) (*domain.CatalogService, error) {
	var s domain.CatalogService
	err := row.Scan(
		&s.ServiceID,
		&s.Name,
		&s.Category,
		&s.PowerType,
		&s.PurchasePrice,
		&s.SellingPrice,
		&s.IsManagerBonus,
		&s.InstallerBonusFixed,
		&s.CreatedAt,
		&s.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveService inserts a new catalog service.
func (r *PgxCatalogRepository) SaveService(ctx context.Context, service domain.CatalogService) error {
	query := `
		INSERT INTO services (service_id, name, category, power_type, purchase_price, selling_price, is_manager_bonus, installer_bonus_fixed, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		service.ServiceID,
		service.Name,
		service.Category,
		service.PowerType,
		service.PurchasePrice,
		service.SellingPrice,
		service.IsManagerBonus,
		service.InstallerBonusFixed,
		service.CreatedAt,
		service.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: service %s already exists", apperrors.ErrDuplicate, service.ServiceID)
		}
		return fmt.Errorf("failed to save service %s: %w", service.ServiceID, err)
	}
	return nil
}

// FindServiceByID retrieves a catalog service by its ID.
func (r *PgxCatalogRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.CatalogService, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE service_id = $1;`
	service, err := scanService(r.Pool.QueryRow(ctx, query, serviceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: service %s", apperrors.ErrNotFound, serviceID)
		}
		return nil, fmt.Errorf("failed to find service %s: %w", serviceID, err)
	}
	return service, nil
}

// FindServicesByIDs retrieves multiple catalog services keyed by ID.
func (r *PgxCatalogRepository) FindServicesByIDs(ctx context.Context, serviceIDs []string) (map[string]domain.CatalogService, error) {
	if len(serviceIDs) == 0 {
		return map[string]domain.CatalogService{}, nil
	}

	query := `SELECT ` + serviceColumns + ` FROM services WHERE service_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, serviceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find services by IDs: %w", err)
	}
	defer rows.Close()

	services := make(map[string]domain.CatalogService, len(serviceIDs))
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services[s.ServiceID] = *s
	}
	return services, rows.Err()
}

// ListServices retrieves catalog services, optionally filtered by category.
func (r *PgxCatalogRepository) ListServices(ctx context.Context, category *domain.ServiceCategory) ([]domain.CatalogService, error) {
	query := `SELECT ` + serviceColumns + ` FROM services`
	args := []any{}
	if category != nil {
		query += ` WHERE category = $1`
		args = append(args, *category)
	}
	query += ` ORDER BY category, name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	var services []domain.CatalogService
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, *s)
	}
	return services, rows.Err()
}

// UpdateService updates an existing catalog service.
func (r *PgxCatalogRepository) UpdateService(ctx context.Context, service domain.CatalogService) error {
	query := `
		UPDATE services
		SET name = $2, power_type = $3, purchase_price = $4, selling_price = $5, is_manager_bonus = $6, installer_bonus_fixed = $7, last_updated_at = $8
		WHERE service_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		service.ServiceID,
		service.Name,
		service.PowerType,
		service.PurchasePrice,
		service.SellingPrice,
		service.IsManagerBonus,
		service.InstallerBonusFixed,
		service.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update service %s: %w", service.ServiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: service %s", apperrors.ErrNotFound, service.ServiceID)
	}
	return nil
}

// DeleteService removes a catalog service.
func (r *PgxCatalogRepository) DeleteService(ctx context.Context, serviceID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM services WHERE service_id = $1;`, serviceID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: service %s is referenced by orders", apperrors.ErrConflict, serviceID)
		}
		return fmt.Errorf("failed to delete service %s: %w", serviceID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: service %s", apperrors.ErrNotFound, serviceID)
	}
	return nil
}
