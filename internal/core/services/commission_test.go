package services_test

import (
	"testing"

	"github.com/RAVEN850972/cam/internal/core/domain"
	"github.com/RAVEN850972/cam/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

// acUnitService is a 12 BTU unit bought for 10000 and listed at 20000.
func acUnitService() domain.CatalogService {
	return domain.CatalogService{
		ServiceID:           "svc-ac",
		Name:                "AC unit 12 BTU",
		Category:            domain.CategoryACUnit,
		PowerType:           strPtr("12 BTU"),
		PurchasePrice:       decPtr(decimal.NewFromInt(10000)),
		SellingPrice:        decimal.NewFromInt(20000),
		InstallerBonusFixed: decimal.NewFromInt(250),
	}
}

func TestComputeManagerEarnings(t *testing.T) {
	manager := domain.Employee{
		EmployeeID: "mgr-1",
		Role:       domain.RoleManager,
		BaseSalary: decPtr(decimal.NewFromInt(20000)),
	}
	ds := services.PayrollDataset{
		Orders: []domain.Order{{
			OrderID:    "ord-1",
			ManagerID:  "mgr-1",
			MountPrice: decimal.NewFromInt(7000),
			Status:     domain.StatusCompleted,
			Lines: []domain.OrderLine{{
				LineID:       "line-1",
				ServiceID:    "svc-ac",
				SellingPrice: decimal.NewFromInt(20000),
			}},
		}},
		Services: map[string]domain.CatalogService{"svc-ac": acUnitService()},
		Rules:    domain.DefaultPricingRules(),
	}

	breakdown, orderCount := services.ComputeEarnings(manager, ds)

	// 20000 base + 1000 per order + (7000-6000)*0.3 upsell + (20000-10000)*0.2 AC share
	assert.Equal(t, 1, orderCount)
	assert.True(t, breakdown.BaseSalary.Equal(decimal.NewFromInt(20000)), "base salary %s", breakdown.BaseSalary)
	assert.True(t, breakdown.OrderCommission.Equal(decimal.NewFromInt(1000)), "order commission %s", breakdown.OrderCommission)
	assert.True(t, breakdown.MountUpsellBonus.Equal(decimal.NewFromInt(300)), "mount upsell %s", breakdown.MountUpsellBonus)
	assert.True(t, breakdown.ProfitShare.Equal(decimal.NewFromInt(2000)), "profit share %s", breakdown.ProfitShare)

	salary := services.TotalEarnings(breakdown)
	assert.True(t, salary.Equal(decimal.NewFromInt(23300)), "salary %s", salary)
}

func TestComputeManagerEarnings_LowerTierWithoutACLine(t *testing.T) {
	manager := domain.Employee{EmployeeID: "mgr-1", Role: domain.RoleManager}
	ds := services.PayrollDataset{
		Orders: []domain.Order{{
			OrderID:    "ord-1",
			ManagerID:  "mgr-1",
			MountPrice: decimal.NewFromInt(5000),
			Status:     domain.StatusCompleted,
		}},
		Services: map[string]domain.CatalogService{},
		Rules:    domain.DefaultPricingRules(),
	}

	breakdown, _ := services.ComputeEarnings(manager, ds)

	// No AC line means the 4000 tier applies: (5000-4000)*0.3
	assert.True(t, breakdown.MountUpsellBonus.Equal(decimal.NewFromInt(300)), "mount upsell %s", breakdown.MountUpsellBonus)
}

func TestComputeManagerEarnings_NoBonusBelowStandardMount(t *testing.T) {
	manager := domain.Employee{EmployeeID: "mgr-1", Role: domain.RoleManager}
	ds := services.PayrollDataset{
		Orders: []domain.Order{{
			OrderID:    "ord-1",
			ManagerID:  "mgr-1",
			MountPrice: decimal.NewFromInt(3000),
			Status:     domain.StatusCompleted,
		}},
		Services: map[string]domain.CatalogService{},
		Rules:    domain.DefaultPricingRules(),
	}

	breakdown, _ := services.ComputeEarnings(manager, ds)

	assert.True(t, breakdown.MountUpsellBonus.IsZero(), "mount upsell %s", breakdown.MountUpsellBonus)
}

func TestComputeManagerEarnings_BonusFlaggedAddonLine(t *testing.T) {
	manager := domain.Employee{EmployeeID: "mgr-1", Role: domain.RoleManager}
	addon := domain.CatalogService{
		ServiceID:      "svc-addon",
		Category:       domain.CategoryAddon,
		PurchasePrice:  decPtr(decimal.NewFromInt(1000)),
		SellingPrice:   decimal.NewFromInt(3000),
		IsManagerBonus: true,
	}
	ds := services.PayrollDataset{
		Orders: []domain.Order{{
			OrderID:    "ord-1",
			ManagerID:  "mgr-1",
			MountPrice: decimal.NewFromInt(4000),
			Status:     domain.StatusCompleted,
			Lines: []domain.OrderLine{{
				LineID:       "line-1",
				ServiceID:    "svc-addon",
				SellingPrice: decimal.NewFromInt(3000),
			}},
		}},
		Services: map[string]domain.CatalogService{"svc-addon": addon},
		Rules:    domain.DefaultPricingRules(),
	}

	breakdown, _ := services.ComputeEarnings(manager, ds)

	// (3000-1000)*0.3
	assert.True(t, breakdown.ProfitShare.Equal(decimal.NewFromInt(600)), "profit share %s", breakdown.ProfitShare)
}

func TestComputeManagerEarnings_NilPurchasePriceCountsAsZeroCost(t *testing.T) {
	manager := domain.Employee{EmployeeID: "mgr-1", Role: domain.RoleManager}
	unit := acUnitService()
	unit.PurchasePrice = nil
	ds := services.PayrollDataset{
		Orders: []domain.Order{{
			OrderID:    "ord-1",
			ManagerID:  "mgr-1",
			MountPrice: decimal.NewFromInt(6000),
			Status:     domain.StatusCompleted,
			Lines: []domain.OrderLine{{
				LineID:       "line-1",
				ServiceID:    "svc-ac",
				SellingPrice: decimal.NewFromInt(20000),
			}},
		}},
		Services: map[string]domain.CatalogService{"svc-ac": unit},
		Rules:    domain.DefaultPricingRules(),
	}

	breakdown, _ := services.ComputeEarnings(manager, ds)

	// Full selling price counts as profit: 20000*0.2
	assert.True(t, breakdown.ProfitShare.Equal(decimal.NewFromInt(4000)), "profit share %s", breakdown.ProfitShare)
}

func TestComputeInstallerEarnings(t *testing.T) {
	installer := domain.Employee{EmployeeID: "ins-1", Role: domain.RoleInstaller}
	freon := domain.CatalogService{
		ServiceID:           "svc-freon",
		Category:            domain.CategoryFreon,
		SellingPrice:        decimal.NewFromInt(2000),
		InstallerBonusFixed: decimal.NewFromInt(250),
	}
	bonusAddon := domain.CatalogService{
		ServiceID:      "svc-addon",
		Category:       domain.CategoryAddon,
		SellingPrice:   decimal.NewFromInt(3000),
		IsManagerBonus: true,
	}
	ds := services.PayrollDataset{
		Orders: []domain.Order{{
			OrderID:    "ord-1",
			ManagerID:  "mgr-1",
			MountPrice: decimal.NewFromInt(4000),
			Status:     domain.StatusCompleted,
			Crew: []domain.OrderAssignment{
				// Duplicate crew rows must pay the base once.
				{AssignmentID: "a1", EmployeeID: "ins-1", Role: domain.AssignmentInstaller, BasePayment: decimal.NewFromInt(1500)},
				{AssignmentID: "a2", EmployeeID: "ins-1", Role: domain.AssignmentInstaller, BasePayment: decimal.NewFromInt(1500)},
			},
			Lines: []domain.OrderLine{
				{LineID: "l1", ServiceID: "svc-freon", SellingPrice: decimal.NewFromInt(2000), SoldByID: strPtr("ins-1")},
				{LineID: "l2", ServiceID: "svc-addon", SellingPrice: decimal.NewFromInt(3000), SoldByID: strPtr("ins-1")},
			},
		}},
		Services: map[string]domain.CatalogService{"svc-freon": freon, "svc-addon": bonusAddon},
		Rules:    domain.DefaultPricingRules(),
	}

	breakdown, orderCount := services.ComputeEarnings(installer, ds)

	assert.Equal(t, 1, orderCount)
	assert.True(t, breakdown.OrderCommission.Equal(decimal.NewFromInt(1500)), "order commission %s", breakdown.OrderCommission)
	// Only the freon sale pays: bonus-flagged addon lines belong to the manager.
	assert.True(t, breakdown.SaleBonuses.Equal(decimal.NewFromInt(250)), "sale bonuses %s", breakdown.SaleBonuses)

	salary := services.TotalEarnings(breakdown)
	assert.True(t, salary.Equal(decimal.NewFromInt(1750)), "salary %s", salary)
}

func TestComputeOwnerEarnings(t *testing.T) {
	owner := domain.Employee{EmployeeID: "own-1", Role: domain.RoleOwner}
	ds := services.PayrollDataset{
		Orders: []domain.Order{
			{OrderID: "ord-1", OwnerCommission: decimal.NewFromInt(1500)},
			{OrderID: "ord-2", OwnerCommission: decimal.NewFromInt(2000)},
		},
		Services: map[string]domain.CatalogService{},
		Rules:    domain.DefaultPricingRules(),
	}

	breakdown, orderCount := services.ComputeEarnings(owner, ds)

	assert.Equal(t, 2, orderCount)
	assert.True(t, breakdown.OwnerCommission.Equal(decimal.NewFromInt(3500)), "owner commission %s", breakdown.OwnerCommission)
}

func TestComputeEarnings_Idempotent(t *testing.T) {
	manager := domain.Employee{
		EmployeeID: "mgr-1",
		Role:       domain.RoleManager,
		BaseSalary: decPtr(decimal.NewFromInt(20000)),
	}
	ds := services.PayrollDataset{
		Orders: []domain.Order{{
			OrderID:    "ord-1",
			ManagerID:  "mgr-1",
			MountPrice: decimal.NewFromInt(7000),
			Status:     domain.StatusCompleted,
			Lines: []domain.OrderLine{{
				LineID:       "line-1",
				ServiceID:    "svc-ac",
				SellingPrice: decimal.NewFromInt(20000),
			}},
		}},
		Services: map[string]domain.CatalogService{"svc-ac": acUnitService()},
		Rules:    domain.DefaultPricingRules(),
	}

	first, firstCount := services.ComputeEarnings(manager, ds)
	second, secondCount := services.ComputeEarnings(manager, ds)

	assert.Equal(t, firstCount, secondCount)
	assert.True(t, services.TotalEarnings(first).Equal(services.TotalEarnings(second)))
}

func TestSumPayments_PenaltiesReducePaid(t *testing.T) {
	payments := []domain.Payment{
		{PaymentID: "p1", Amount: decimal.NewFromInt(3000)},
		{PaymentID: "p2", Amount: decimal.NewFromInt(-500)},
	}

	total := services.SumPayments(payments)

	assert.True(t, total.Equal(decimal.NewFromInt(2500)), "total %s", total)
}

func TestComputeOrderProfit(t *testing.T) {
	order := domain.Order{
		OrderID:         "ord-1",
		ManagerID:       "mgr-1",
		MountPrice:      decimal.NewFromInt(7000),
		OwnerCommission: decimal.NewFromInt(1500),
		Status:          domain.StatusCompleted,
		Lines: []domain.OrderLine{{
			LineID:       "line-1",
			ServiceID:    "svc-ac",
			SellingPrice: decimal.NewFromInt(20000),
		}},
		Crew: []domain.OrderAssignment{
			{AssignmentID: "a1", EmployeeID: "ins-1", Role: domain.AssignmentInstaller, BasePayment: decimal.NewFromInt(1500)},
			{AssignmentID: "a2", EmployeeID: "own-1", Role: domain.AssignmentOwnerOnSite, BasePayment: decimal.Zero},
		},
	}
	catalog := map[string]domain.CatalogService{"svc-ac": acUnitService()}

	profit := services.ComputeOrderProfit(order, catalog, domain.DefaultPricingRules())

	require.NotNil(t, profit.Details.ACPowerType)
	assert.Equal(t, "12 BTU", *profit.Details.ACPowerType)
	assert.True(t, profit.Details.StandardMountPrice.Equal(decimal.NewFromInt(6000)))
	assert.True(t, profit.Revenue.Equal(decimal.NewFromInt(27000)), "revenue %s", profit.Revenue)
	assert.True(t, profit.ServicesCost.Equal(decimal.NewFromInt(10000)), "cost %s", profit.ServicesCost)
	// 1000 + 300 + 2000 + 1500 + 0 + 1500
	assert.True(t, profit.TotalCommissions.Equal(decimal.NewFromInt(6300)), "commissions %s", profit.TotalCommissions)
	assert.True(t, profit.Profit.Equal(decimal.NewFromInt(10700)), "profit %s", profit.Profit)
}

func TestComputeOrderProfit_OnSiteOwnerEarnsNoBasePayment(t *testing.T) {
	order := domain.Order{
		OrderID:         "ord-1",
		MountPrice:      decimal.NewFromInt(4000),
		OwnerCommission: decimal.NewFromInt(1500),
		Crew: []domain.OrderAssignment{
			{AssignmentID: "a1", EmployeeID: "own-1", Role: domain.AssignmentOwnerOnSite, BasePayment: decimal.Zero},
		},
	}

	profit := services.ComputeOrderProfit(order, map[string]domain.CatalogService{}, domain.DefaultPricingRules())

	assert.True(t, profit.Details.InstallersBasePayment.IsZero())
}
