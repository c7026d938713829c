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

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeColumns = `employee_id, name, phone, role, base_salary, active, created_at, last_updated_at`

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(
		&e.EmployeeID,
		&e.Name,
		&e.Phone,
		&e.Role,
		&e.BaseSalary,
		&e.Active,
		&e.CreatedAt,
		&e.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// SaveEmployee inserts a new employee.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		INSERT INTO employees (employee_id, name, phone, role, base_salary, active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		employee.EmployeeID,
		employee.Name,
		employee.Phone,
		employee.Role,
		employee.BaseSalary,
		employee.Active,
		employee.CreatedAt,
		employee.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: employee %s already exists", apperrors.ErrDuplicate, employee.EmployeeID)
		}
		return fmt.Errorf("failed to save employee %s: %w", employee.EmployeeID, err)
	}
	return nil
}

// FindEmployeeByID retrieves an employee by its ID.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`
	employee, err := scanEmployee(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: employee %s", apperrors.ErrNotFound, employeeID)
		}
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}
	return employee, nil
}

// ListEmployees retrieves employees, optionally including deactivated ones.
func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, includeInactive bool) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees`
	if !includeInactive {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, *e)
	}
	return employees, rows.Err()
}

// UpdateEmployee updates an existing employee.
func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		UPDATE employees
		SET name = $2, phone = $3, base_salary = $4, last_updated_at = $5
		WHERE employee_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		employee.EmployeeID,
		employee.Name,
		employee.Phone,
		employee.BaseSalary,
		employee.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee %s: %w", employee.EmployeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: employee %s", apperrors.ErrNotFound, employee.EmployeeID)
	}
	return nil
}

// DeactivateEmployee marks an employee as inactive.
func (r *PgxEmployeeRepository) DeactivateEmployee(ctx context.Context, employeeID string, now time.Time) error {
	query := `UPDATE employees SET active = FALSE, last_updated_at = $2 WHERE employee_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, employeeID, now)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee %s: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: employee %s", apperrors.ErrNotFound, employeeID)
	}
	return nil
}
