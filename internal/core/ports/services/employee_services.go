package services

import (
	"context"

	"github.com/RAVEN850972/cam/internal/core/domain"
	"github.com/RAVEN850972/cam/internal/dto"
)

// EmployeeReaderSvc defines read operations for employee data
type EmployeeReaderSvc interface {
	// GetEmployeeByID retrieves a specific employee by its unique identifier.
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves all employees, optionally including deactivated ones.
	ListEmployees(ctx context.Context, includeInactive bool) ([]domain.Employee, error)
}

// EmployeeWriterSvc defines write operations for employee data
type EmployeeWriterSvc interface {
	// CreateEmployee persists a new employee.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)

	// UpdateEmployee updates an existing employee's details.
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)

	// DeactivateEmployee marks an employee as inactive. Deactivated employees
	// keep their history but drop out of payroll runs.
	DeactivateEmployee(ctx context.Context, employeeID string) error
}

// EmployeeSvcFacade combines all employee-related service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
}
