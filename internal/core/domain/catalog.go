package domain

import "github.com/shopspring/decimal"

// ServiceCategory classifies catalog entries. Commission rules branch on it:
// ac_unit lines share profit with the manager at one rate, addon lines
// flagged IsManagerBonus at another.
type ServiceCategory string

const (
	CategoryMount   ServiceCategory = "mount"
	CategoryDemount ServiceCategory = "demount"
	CategoryACUnit  ServiceCategory = "ac_unit"
	CategoryFreon   ServiceCategory = "freon"
	CategoryAddon   ServiceCategory = "addon"
)

func (c ServiceCategory) Valid() bool {
	switch c {
	case CategoryMount, CategoryDemount, CategoryACUnit, CategoryFreon, CategoryAddon:
		return true
	}
	return false
}

// CatalogService is a sellable service or good. PowerType is set for ac_unit
// entries ("7 BTU" .. "18 BTU") and drives the standard mount price tier.
type CatalogService struct {
	ServiceID           string           `json:"serviceId"`
	Name                string           `json:"name"`
	Category            ServiceCategory  `json:"category"`
	PowerType           *string          `json:"powerType,omitempty"`
	PurchasePrice       *decimal.Decimal `json:"purchasePrice,omitempty"`
	SellingPrice        decimal.Decimal  `json:"sellingPrice"`
	IsManagerBonus      bool             `json:"isManagerBonus"`
	InstallerBonusFixed decimal.Decimal  `json:"installerBonusFixed"`
	AuditFields
}

// PurchasePriceOrZero treats an unknown purchase price as zero cost.
func (s CatalogService) PurchasePriceOrZero() decimal.Decimal {
	if s.PurchasePrice == nil {
		return decimal.Zero
	}
	return *s.PurchasePrice
}

// Profit is selling price minus purchase price for a given captured selling
// price. Lines capture the price at sale time, so the caller passes it in.
func (s CatalogService) Profit(sellingPrice decimal.Decimal) decimal.Decimal {
	return sellingPrice.Sub(s.PurchasePriceOrZero())
}
