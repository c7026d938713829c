package domain

import "github.com/shopspring/decimal"

// EarningsBreakdown itemizes how an employee's salary for a period was
// built up. Components that do not apply to the role stay zero.
type EarningsBreakdown struct {
	BaseSalary        decimal.Decimal `json:"baseSalary"`
	OrderCommission   decimal.Decimal `json:"orderCommission"`
	MountUpsellBonus  decimal.Decimal `json:"mountUpsellBonus"`
	ProfitShare       decimal.Decimal `json:"profitShare"`
	SaleBonuses       decimal.Decimal `json:"saleBonuses"`
	OwnerCommission   decimal.Decimal `json:"ownerCommission"`
}

// EmployeeEarnings is one employee's payroll line for a period.
type EmployeeEarnings struct {
	EmployeeID string            `json:"employeeId"`
	Name       string            `json:"name"`
	Role       EmployeeRole      `json:"role"`
	Period     string            `json:"period"`
	OrderCount int               `json:"orderCount"`
	Breakdown  EarningsBreakdown `json:"breakdown"`
	Salary     decimal.Decimal   `json:"salary"`
	Paid       decimal.Decimal   `json:"paid"`
	ToPay      decimal.Decimal   `json:"toPay"`
}

// PayrollSummary is the company-wide payroll view for one period.
type PayrollSummary struct {
	Period      string             `json:"period"`
	Employees   []EmployeeEarnings `json:"employees"`
	TotalSalary decimal.Decimal    `json:"totalSalary"`
	TotalPaid   decimal.Decimal    `json:"totalPaid"`
	TotalToPay  decimal.Decimal    `json:"totalToPay"`
}

// OrderProfit decomposes a single order's economics.
type OrderProfit struct {
	OrderID          string          `json:"orderId"`
	Revenue          decimal.Decimal `json:"revenue"`
	ServicesCost     decimal.Decimal `json:"servicesCost"`
	TotalCommissions decimal.Decimal `json:"totalCommissions"`
	Profit           decimal.Decimal `json:"profit"`
	Details          ProfitDetails   `json:"details"`
}

// ProfitDetails itemizes the commissions inside an OrderProfit.
type ProfitDetails struct {
	ManagerOrderCommission    decimal.Decimal `json:"managerOrderCommission"`
	ManagerMountBonus         decimal.Decimal `json:"managerMountBonus"`
	ManagerServicesCommission decimal.Decimal `json:"managerServicesCommission"`
	InstallersBasePayment     decimal.Decimal `json:"installersBasePayment"`
	InstallerSaleBonuses      decimal.Decimal `json:"installerSaleBonuses"`
	OwnerCommission           decimal.Decimal `json:"ownerCommission"`
	StandardMountPrice        decimal.Decimal `json:"standardMountPrice"`
	ACPowerType               *string         `json:"acPowerType,omitempty"`
}
