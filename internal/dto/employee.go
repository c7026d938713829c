package dto

import (
	"time"

	"github.com/RAVEN850972/cam/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines the data needed to create a new employee.
type CreateEmployeeRequest struct {
	Name       string              `json:"name" binding:"required"`
	Phone      string              `json:"phone" binding:"required"`
	Role       domain.EmployeeRole `json:"role" binding:"required,oneof=manager installer owner"`
	BaseSalary *decimal.Decimal    `json:"baseSalary"` // managers only
}

// UpdateEmployeeRequest defines the data allowed for updating an employee.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateEmployeeRequest struct {
	Name       *string          `json:"name"`
	Phone      *string          `json:"phone"`
	BaseSalary *decimal.Decimal `json:"baseSalary"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	EmployeeID string              `json:"employeeID"`
	Name       string              `json:"name"`
	Phone      string              `json:"phone"`
	Role       domain.EmployeeRole `json:"role"`
	BaseSalary *decimal.Decimal    `json:"baseSalary,omitempty"`
	Active     bool                `json:"active"`
	CreatedAt  time.Time           `json:"createdAt"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	resp := EmployeeResponse{
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
		Phone:      e.Phone,
		Role:       e.Role,
		Active:     e.Active,
		CreatedAt:  e.CreatedAt,
	}
	if e.BaseSalary != nil {
		rounded := e.BaseSalary.Round(2)
		resp.BaseSalary = &rounded
	}
	return resp
}

// ToListEmployeeResponse converts a slice of domain.Employee to response DTOs
func ToListEmployeeResponse(employees []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = ToEmployeeResponse(&e)
	}
	return res
}
