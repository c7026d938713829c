package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/RAVEN850972/cam/internal/apperrors"
	"github.com/RAVEN850972/cam/internal/core/domain"
	portsrepo "github.com/RAVEN850972/cam/internal/core/ports/repositories"
	"github.com/RAVEN850972/cam/internal/dto"
	"github.com/google/uuid"
)

// EmployeeService manages the company's staff records.
type EmployeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// CreateEmployee persists a new employee. Base salary is only accepted for
// managers; other roles earn per order.
func (s *EmployeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	if req.BaseSalary != nil && req.Role != domain.RoleManager {
		return nil, apperrors.NewValidationError("base salary applies to managers only")
	}
	if req.BaseSalary != nil && req.BaseSalary.IsNegative() {
		return nil, apperrors.NewValidationError("base salary cannot be negative")
	}

	now := time.Now()
	employee := domain.Employee{
		EmployeeID: uuid.NewString(),
		Name:       req.Name,
		Phone:      req.Phone,
		Role:       req.Role,
		BaseSalary: req.BaseSalary,
		Active:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to save employee", slog.String("employee_id", employee.EmployeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Employee created", slog.String("employee_id", employee.EmployeeID), slog.String("role", string(employee.Role)))
	return &employee, nil
}

// GetEmployeeByID retrieves a specific employee.
func (s *EmployeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee", slog.String("employee_id", employeeID))
		}
		return nil, err
	}
	return employee, nil
}

// ListEmployees retrieves employees, optionally including deactivated ones.
func (s *EmployeeService) ListEmployees(ctx context.Context, includeInactive bool) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx, includeInactive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees")
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	if employees == nil {
		return []domain.Employee{}, nil
	}
	return employees, nil
}

// UpdateEmployee updates an existing employee's details.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee for update", slog.String("employee_id", employeeID))
		}
		return nil, err
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.BaseSalary != nil {
		if employee.Role != domain.RoleManager {
			return nil, apperrors.NewValidationError("base salary applies to managers only")
		}
		if req.BaseSalary.IsNegative() {
			return nil, apperrors.NewValidationError("base salary cannot be negative")
		}
		employee.BaseSalary = req.BaseSalary
	}
	employee.LastUpdatedAt = time.Now()

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		s.LogError(ctx, err, "Failed to update employee", slog.String("employee_id", employeeID))
		return nil, err
	}
	return employee, nil
}

// DeactivateEmployee marks an employee as inactive. History stays intact;
// the employee just drops out of payroll runs.
func (s *EmployeeService) DeactivateEmployee(ctx context.Context, employeeID string) error {
	if err := s.employeeRepo.DeactivateEmployee(ctx, employeeID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to deactivate employee", slog.String("employee_id", employeeID))
		}
		return err
	}
	s.LogInfo(ctx, "Employee deactivated", slog.String("employee_id", employeeID))
	return nil
}
