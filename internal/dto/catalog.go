package dto

import (
	"github.com/RAVEN850972/cam/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateServiceRequest defines the data needed to create a catalog service.
type CreateServiceRequest struct {
	Name                string                 `json:"name" binding:"required"`
	Category            domain.ServiceCategory `json:"category" binding:"required,oneof=mount demount ac_unit freon addon"`
	PowerType           *string                `json:"powerType"` // ac_unit only, e.g. "9 BTU"
	PurchasePrice       *decimal.Decimal       `json:"purchasePrice"`
	SellingPrice        decimal.Decimal        `json:"sellingPrice" binding:"required"`
	IsManagerBonus      bool                   `json:"isManagerBonus"`
	InstallerBonusFixed *decimal.Decimal       `json:"installerBonusFixed"`
}

// UpdateServiceRequest defines the data allowed for updating a catalog service.
type UpdateServiceRequest struct {
	Name                *string          `json:"name"`
	PowerType           *string          `json:"powerType"`
	PurchasePrice       *decimal.Decimal `json:"purchasePrice"`
	SellingPrice        *decimal.Decimal `json:"sellingPrice"`
	IsManagerBonus      *bool            `json:"isManagerBonus"`
	InstallerBonusFixed *decimal.Decimal `json:"installerBonusFixed"`
}

// ServiceResponse defines the data returned for a catalog service.
type ServiceResponse struct {
	ServiceID           string                 `json:"serviceID"`
	Name                string                 `json:"name"`
	Category            domain.ServiceCategory `json:"category"`
	PowerType           *string                `json:"powerType,omitempty"`
	PurchasePrice       *decimal.Decimal       `json:"purchasePrice,omitempty"`
	SellingPrice        decimal.Decimal        `json:"sellingPrice"`
	IsManagerBonus      bool                   `json:"isManagerBonus"`
	InstallerBonusFixed decimal.Decimal        `json:"installerBonusFixed"`
}

// ToServiceResponse converts a domain.CatalogService to ServiceResponse DTO
func ToServiceResponse(s *domain.CatalogService) ServiceResponse {
	resp := ServiceResponse{
		ServiceID:           s.ServiceID,
		Name:                s.Name,
		Category:            s.Category,
		PowerType:           s.PowerType,
		SellingPrice:        s.SellingPrice.Round(2),
		IsManagerBonus:      s.IsManagerBonus,
		InstallerBonusFixed: s.InstallerBonusFixed.Round(2),
	}
	if s.PurchasePrice != nil {
		rounded := s.PurchasePrice.Round(2)
		resp.PurchasePrice = &rounded
	}
	return resp
}

// ToListServiceResponse converts a slice of domain.CatalogService to response DTOs
func ToListServiceResponse(services []domain.CatalogService) []ServiceResponse {
	res := make([]ServiceResponse, len(services))
	for i, s := range services {
		res[i] = ToServiceResponse(&s)
	}
	return res
}
