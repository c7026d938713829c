package dto

import (
	"github.com/RAVEN850972/cam/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EarningsBreakdownResponse itemizes a payroll line's components.
type EarningsBreakdownResponse struct {
	BaseSalary       decimal.Decimal `json:"baseSalary"`
	OrderCommission  decimal.Decimal `json:"orderCommission"`
	MountUpsellBonus decimal.Decimal `json:"mountUpsellBonus"`
	ProfitShare      decimal.Decimal `json:"profitShare"`
	SaleBonuses      decimal.Decimal `json:"saleBonuses"`
	OwnerCommission  decimal.Decimal `json:"ownerCommission"`
}

// EmployeeEarningsResponse defines one employee's payroll line.
type EmployeeEarningsResponse struct {
	EmployeeID string                    `json:"employeeID"`
	Name       string                    `json:"name"`
	Role       domain.EmployeeRole       `json:"role"`
	Period     string                    `json:"period"`
	OrderCount int                       `json:"orderCount"`
	Breakdown  EarningsBreakdownResponse `json:"breakdown"`
	Salary     decimal.Decimal           `json:"salary"`
	Paid       decimal.Decimal           `json:"paid"`
	ToPay      decimal.Decimal           `json:"toPay"`
}

// PayrollSummaryResponse defines the company payroll view for a period.
type PayrollSummaryResponse struct {
	Period      string                     `json:"period"`
	Employees   []EmployeeEarningsResponse `json:"employees"`
	TotalSalary decimal.Decimal            `json:"totalSalary"`
	TotalPaid   decimal.Decimal            `json:"totalPaid"`
	TotalToPay  decimal.Decimal            `json:"totalToPay"`
}

// ToEmployeeEarningsResponse converts domain.EmployeeEarnings to its DTO.
// Money is rounded here, at the presentation boundary only.
func ToEmployeeEarningsResponse(e *domain.EmployeeEarnings) EmployeeEarningsResponse {
	return EmployeeEarningsResponse{
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
		Role:       e.Role,
		Period:     e.Period,
		OrderCount: e.OrderCount,
		Breakdown: EarningsBreakdownResponse{
			BaseSalary:       e.Breakdown.BaseSalary.Round(2),
			OrderCommission:  e.Breakdown.OrderCommission.Round(2),
			MountUpsellBonus: e.Breakdown.MountUpsellBonus.Round(2),
			ProfitShare:      e.Breakdown.ProfitShare.Round(2),
			SaleBonuses:      e.Breakdown.SaleBonuses.Round(2),
			OwnerCommission:  e.Breakdown.OwnerCommission.Round(2),
		},
		Salary: e.Salary.Round(2),
		Paid:   e.Paid.Round(2),
		ToPay:  e.ToPay.Round(2),
	}
}

// ToPayrollSummaryResponse converts a domain.PayrollSummary to its DTO
func ToPayrollSummaryResponse(s *domain.PayrollSummary) PayrollSummaryResponse {
	employees := make([]EmployeeEarningsResponse, len(s.Employees))
	for i, e := range s.Employees {
		employees[i] = ToEmployeeEarningsResponse(&e)
	}
	return PayrollSummaryResponse{
		Period:      s.Period,
		Employees:   employees,
		TotalSalary: s.TotalSalary.Round(2),
		TotalPaid:   s.TotalPaid.Round(2),
		TotalToPay:  s.TotalToPay.Round(2),
	}
}
