package repositories

import (
	"context"
	"time"

	"github.com/RAVEN850972/cam/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves a specific employee by its unique identifier.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves all employees, optionally including deactivated ones.
	ListEmployees(ctx context.Context, includeInactive bool) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	// SaveEmployee persists a new employee.
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateEmployee updates an existing employee's details.
	UpdateEmployee(ctx context.Context, employee domain.Employee) error

	// DeactivateEmployee marks an employee as inactive.
	DeactivateEmployee(ctx context.Context, employeeID string, now time.Time) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
