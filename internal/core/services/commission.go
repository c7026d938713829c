package services

import (
	"github.com/RAVEN850972/cam/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PayrollDataset bundles everything earnings computations need, loaded once
// per payroll run. Orders are the period's completed orders with lines and
// crew attached; Services maps serviceID to the catalog entry.
type PayrollDataset struct {
	Orders   []domain.Order
	Services map[string]domain.CatalogService
	Rules    domain.PricingRules
}

// ComputeEarnings runs the role-specific earnings algorithm for one employee
// over the dataset. It is a pure function: the same dataset always yields the
// same breakdown, so payroll runs are idempotent.
func ComputeEarnings(employee domain.Employee, ds PayrollDataset) (domain.EarningsBreakdown, int) {
	switch employee.Role {
	case domain.RoleManager:
		return computeManagerEarnings(employee, ds)
	case domain.RoleInstaller:
		return computeInstallerEarnings(employee, ds)
	case domain.RoleOwner:
		return computeOwnerEarnings(ds)
	}
	return domain.EarningsBreakdown{}, 0
}

// TotalEarnings sums a breakdown into the salary figure.
func TotalEarnings(b domain.EarningsBreakdown) decimal.Decimal {
	return b.BaseSalary.
		Add(b.OrderCommission).
		Add(b.MountUpsellBonus).
		Add(b.ProfitShare).
		Add(b.SaleBonuses).
		Add(b.OwnerCommission)
}

// computeManagerEarnings: base salary, a fixed commission per managed order,
// a share of the mount price above the standard tier, and a profit share on
// AC unit lines and bonus-flagged addon lines.
func computeManagerEarnings(employee domain.Employee, ds PayrollDataset) (domain.EarningsBreakdown, int) {
	b := domain.EarningsBreakdown{
		BaseSalary:       employee.BaseSalaryOrZero(),
		OrderCommission:  decimal.Zero,
		MountUpsellBonus: decimal.Zero,
		ProfitShare:      decimal.Zero,
		SaleBonuses:      decimal.Zero,
		OwnerCommission:  decimal.Zero,
	}
	orderCount := 0

	for _, order := range ds.Orders {
		if order.ManagerID != employee.EmployeeID {
			continue
		}
		orderCount++
		b.OrderCommission = b.OrderCommission.Add(ds.Rules.ManagerOrderCommission)

		standard := ds.Rules.StandardMountPrice(acPowerType(order, ds.Services))
		upsell := order.MountPrice.Sub(standard)
		if upsell.IsPositive() {
			b.MountUpsellBonus = b.MountUpsellBonus.Add(upsell.Mul(ds.Rules.MountUpsellPercent))
		}

		for _, line := range order.Lines {
			svc, ok := ds.Services[line.ServiceID]
			if !ok {
				continue
			}
			profit := svc.Profit(line.SellingPrice)
			switch {
			case svc.Category == domain.CategoryACUnit:
				b.ProfitShare = b.ProfitShare.Add(profit.Mul(ds.Rules.ACProfitPercent))
			case svc.IsManagerBonus:
				b.ProfitShare = b.ProfitShare.Add(profit.Mul(ds.Rules.AddonProfitPercent))
			}
		}
	}
	return b, orderCount
}

// computeInstallerEarnings: a base payment per worked order, counted once no
// matter how many crew rows reference the installer, plus a fixed bonus for
// every service the installer personally sold.
func computeInstallerEarnings(employee domain.Employee, ds PayrollDataset) (domain.EarningsBreakdown, int) {
	b := domain.EarningsBreakdown{
		BaseSalary:       decimal.Zero,
		OrderCommission:  decimal.Zero,
		MountUpsellBonus: decimal.Zero,
		ProfitShare:      decimal.Zero,
		SaleBonuses:      decimal.Zero,
		OwnerCommission:  decimal.Zero,
	}
	orderCount := 0

	for _, order := range ds.Orders {
		worked := false
		for _, a := range order.Crew {
			if a.EmployeeID != employee.EmployeeID {
				continue
			}
			if !worked {
				worked = true
				orderCount++
				b.OrderCommission = b.OrderCommission.Add(a.BasePayment)
			}
		}

		for _, line := range order.Lines {
			if line.SoldByID == nil || *line.SoldByID != employee.EmployeeID {
				continue
			}
			svc, ok := ds.Services[line.ServiceID]
			if !ok || svc.IsManagerBonus {
				continue
			}
			b.SaleBonuses = b.SaleBonuses.Add(svc.InstallerBonusFixed)
		}
	}
	return b, orderCount
}

// computeOwnerEarnings: the owner collects each completed order's commission.
func computeOwnerEarnings(ds PayrollDataset) (domain.EarningsBreakdown, int) {
	b := domain.EarningsBreakdown{
		BaseSalary:       decimal.Zero,
		OrderCommission:  decimal.Zero,
		MountUpsellBonus: decimal.Zero,
		ProfitShare:      decimal.Zero,
		SaleBonuses:      decimal.Zero,
		OwnerCommission:  decimal.Zero,
	}
	for _, order := range ds.Orders {
		b.OwnerCommission = b.OwnerCommission.Add(order.OwnerCommission)
	}
	return b, len(ds.Orders)
}

// SumPayments totals the signed payment amounts, so penalties reduce what
// counts as paid.
func SumPayments(payments []domain.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

// acPowerType returns the power type of the order's AC unit line, when one
// exists. The first ac_unit line wins.
func acPowerType(order domain.Order, services map[string]domain.CatalogService) *string {
	for _, line := range order.Lines {
		svc, ok := services[line.ServiceID]
		if !ok {
			continue
		}
		if svc.Category == domain.CategoryACUnit && svc.PowerType != nil {
			return svc.PowerType
		}
	}
	return nil
}

// ComputeOrderProfit decomposes one order's economics: client revenue minus
// purchase costs minus every commission the order generates. It uses the
// same lookups as the earnings algorithms, so the per-order and per-employee
// views always agree.
func ComputeOrderProfit(order domain.Order, services map[string]domain.CatalogService, rules domain.PricingRules) domain.OrderProfit {
	powerType := acPowerType(order, services)
	standard := rules.StandardMountPrice(powerType)

	details := domain.ProfitDetails{
		ManagerOrderCommission:    rules.ManagerOrderCommission,
		ManagerMountBonus:         decimal.Zero,
		ManagerServicesCommission: decimal.Zero,
		InstallersBasePayment:     decimal.Zero,
		InstallerSaleBonuses:      decimal.Zero,
		OwnerCommission:           order.OwnerCommission,
		StandardMountPrice:        standard,
		ACPowerType:               powerType,
	}

	upsell := order.MountPrice.Sub(standard)
	if upsell.IsPositive() {
		details.ManagerMountBonus = upsell.Mul(rules.MountUpsellPercent)
	}

	cost := decimal.Zero
	for _, line := range order.Lines {
		svc, ok := services[line.ServiceID]
		if !ok {
			continue
		}
		cost = cost.Add(svc.PurchasePriceOrZero())

		profit := svc.Profit(line.SellingPrice)
		switch {
		case svc.Category == domain.CategoryACUnit:
			details.ManagerServicesCommission = details.ManagerServicesCommission.Add(profit.Mul(rules.ACProfitPercent))
		case svc.IsManagerBonus:
			details.ManagerServicesCommission = details.ManagerServicesCommission.Add(profit.Mul(rules.AddonProfitPercent))
		}

		if line.SoldByID != nil && !svc.IsManagerBonus {
			details.InstallerSaleBonuses = details.InstallerSaleBonuses.Add(svc.InstallerBonusFixed)
		}
	}

	seen := make(map[string]bool, len(order.Crew))
	for _, a := range order.Crew {
		if a.Role != domain.AssignmentInstaller || seen[a.EmployeeID] {
			continue
		}
		seen[a.EmployeeID] = true
		details.InstallersBasePayment = details.InstallersBasePayment.Add(a.BasePayment)
	}

	totalCommissions := details.ManagerOrderCommission.
		Add(details.ManagerMountBonus).
		Add(details.ManagerServicesCommission).
		Add(details.InstallersBasePayment).
		Add(details.InstallerSaleBonuses).
		Add(details.OwnerCommission)

	revenue := order.TotalPrice()
	return domain.OrderProfit{
		OrderID:          order.OrderID,
		Revenue:          revenue,
		ServicesCost:     cost,
		TotalCommissions: totalCommissions,
		Profit:           revenue.Sub(cost).Sub(totalCommissions),
		Details:          details,
	}
}
