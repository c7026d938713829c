package domain

import "github.com/shopspring/decimal"

// PricingRules holds every commission constant in one place. Values are
// loaded from config at startup and passed by value into computations, so a
// single rule set governs payroll, order profit and the finance summary.
type PricingRules struct {
	ManagerOrderCommission decimal.Decimal
	MountUpsellPercent     decimal.Decimal
	ACProfitPercent        decimal.Decimal
	AddonProfitPercent     decimal.Decimal
	InstallerBasePayment   decimal.Decimal
	InstallerSaleBonus     decimal.Decimal
	StandardMountPriceLow  decimal.Decimal
	StandardMountPriceHigh decimal.Decimal
	HighPowerTypes         []string
	OwnerOrderCommission   decimal.Decimal
}

// DefaultPricingRules returns the rule set the company operates with unless
// overridden through configuration.
func DefaultPricingRules() PricingRules {
	return PricingRules{
		ManagerOrderCommission: decimal.NewFromInt(1000),
		MountUpsellPercent:     decimal.NewFromFloat(0.3),
		ACProfitPercent:        decimal.NewFromFloat(0.2),
		AddonProfitPercent:     decimal.NewFromFloat(0.3),
		InstallerBasePayment:   decimal.NewFromInt(1500),
		InstallerSaleBonus:     decimal.NewFromInt(250),
		StandardMountPriceLow:  decimal.NewFromInt(4000),
		StandardMountPriceHigh: decimal.NewFromInt(6000),
		HighPowerTypes:         []string{"12 BTU", "18 BTU"},
		OwnerOrderCommission:   decimal.NewFromInt(1500),
	}
}

// StandardMountPrice picks the standard mount tier for an order based on the
// power type of its AC unit line, when one exists. Orders without an AC line,
// or with a low-power unit, use the lower tier.
func (r PricingRules) StandardMountPrice(acPowerType *string) decimal.Decimal {
	if acPowerType == nil {
		return r.StandardMountPriceLow
	}
	for _, pt := range r.HighPowerTypes {
		if pt == *acPowerType {
			return r.StandardMountPriceHigh
		}
	}
	return r.StandardMountPriceLow
}
