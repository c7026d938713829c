package domain

import "github.com/shopspring/decimal"

// EmployeeRole determines which earnings algorithm applies to an employee.
type EmployeeRole string

const (
	RoleManager   EmployeeRole = "manager"
	RoleInstaller EmployeeRole = "installer"
	RoleOwner     EmployeeRole = "owner"
)

// Valid reports whether the role is one of the known roles.
func (r EmployeeRole) Valid() bool {
	switch r {
	case RoleManager, RoleInstaller, RoleOwner:
		return true
	}
	return false
}

// Employee is a staff member of the company. BaseSalary is only meaningful
// for managers; installers and owners earn per order.
type Employee struct {
	EmployeeID string           `json:"employeeId"`
	Name       string           `json:"name"`
	Phone      string           `json:"phone"`
	Role       EmployeeRole     `json:"role"`
	BaseSalary *decimal.Decimal `json:"baseSalary,omitempty"`
	Active     bool             `json:"active"`
	AuditFields
}

// BaseSalaryOrZero returns the base salary, treating an absent value as zero.
func (e Employee) BaseSalaryOrZero() decimal.Decimal {
	if e.BaseSalary == nil {
		return decimal.Zero
	}
	return *e.BaseSalary
}
