package dto

import (
	"github.com/RAVEN850972/cam/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OrderLineRequest defines one sold service on an order creation request.
// SellingPrice overrides the catalog price when provided; otherwise the
// current catalog price is captured.
type OrderLineRequest struct {
	ServiceID    string           `json:"serviceID" binding:"required"`
	SellingPrice *decimal.Decimal `json:"sellingPrice"`
	SoldByID     *string          `json:"soldByID"`
}

// CreateOrderRequest defines the data needed to create a new order.
type CreateOrderRequest struct {
	ClientID        string             `json:"clientID" binding:"required"`
	ManagerID       string             `json:"managerID" binding:"required"`
	Address         string             `json:"address"`
	OrderDate       string             `json:"orderDate" binding:"required"` // YYYY-MM-DD [HH:MM]
	MountPrice      decimal.Decimal    `json:"mountPrice" binding:"required"`
	OwnerCommission *decimal.Decimal   `json:"ownerCommission"` // defaults from pricing rules
	Notes           string             `json:"notes"`
	Lines           []OrderLineRequest `json:"lines" binding:"dive"`
	InstallerIDs    []string           `json:"installerIDs"`
}

// UpdateOrderRequest defines the data allowed for updating an order.
type UpdateOrderRequest struct {
	Status         *domain.OrderStatus `json:"status"`
	CompletionDate *string             `json:"completionDate"`
	MountPrice     *decimal.Decimal    `json:"mountPrice"`
	Notes          *string             `json:"notes"`
}

// CompleteOrderRequest stamps a completion date on an order.
type CompleteOrderRequest struct {
	CompletionDate string `json:"completionDate" binding:"required"` // YYYY-MM-DD [HH:MM]
}

// ListOrdersRequest defines query parameters for listing orders.
type ListOrdersRequest struct {
	Status   string `form:"status"`
	Period   string `form:"period"` // YYYY-MM
	ClientID string `form:"clientID"`
	Limit    int    `form:"limit,default=50"`
	Offset   int    `form:"offset,default=0"`
}

// OrderLineResponse defines the data returned for an order line.
type OrderLineResponse struct {
	LineID       string          `json:"lineID"`
	ServiceID    string          `json:"serviceID"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	SoldByID     *string         `json:"soldByID,omitempty"`
}

// OrderAssignmentResponse defines the data returned for a crew assignment.
type OrderAssignmentResponse struct {
	EmployeeID  string                `json:"employeeID"`
	Role        domain.AssignmentRole `json:"role"`
	BasePayment decimal.Decimal       `json:"basePayment"`
}

// OrderResponse defines the data returned for an order.
type OrderResponse struct {
	OrderID        string                    `json:"orderID"`
	ClientID       string                    `json:"clientID"`
	ManagerID      string                    `json:"managerID"`
	Address        string                    `json:"address"`
	OrderDate      string                    `json:"orderDate"`
	CompletionDate *string                   `json:"completionDate,omitempty"`
	Status         domain.OrderStatus        `json:"status"`
	MountPrice     decimal.Decimal           `json:"mountPrice"`
	TotalPrice     decimal.Decimal           `json:"totalPrice"`
	Notes          string                    `json:"notes"`
	Lines          []OrderLineResponse       `json:"lines"`
	Crew           []OrderAssignmentResponse `json:"crew"`
}

// ToOrderResponse converts a domain.Order to OrderResponse DTO
func ToOrderResponse(o *domain.Order) OrderResponse {
	lines := make([]OrderLineResponse, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = OrderLineResponse{
			LineID:       l.LineID,
			ServiceID:    l.ServiceID,
			SellingPrice: l.SellingPrice.Round(2),
			SoldByID:     l.SoldByID,
		}
	}
	crew := make([]OrderAssignmentResponse, len(o.Crew))
	for i, a := range o.Crew {
		crew[i] = OrderAssignmentResponse{
			EmployeeID:  a.EmployeeID,
			Role:        a.Role,
			BasePayment: a.BasePayment.Round(2),
		}
	}
	return OrderResponse{
		OrderID:        o.OrderID,
		ClientID:       o.ClientID,
		ManagerID:      o.ManagerID,
		Address:        o.Address,
		OrderDate:      o.OrderDate,
		CompletionDate: o.CompletionDate,
		Status:         o.Status,
		MountPrice:     o.MountPrice.Round(2),
		TotalPrice:     o.TotalPrice().Round(2),
		Notes:          o.Notes,
		Lines:          lines,
		Crew:           crew,
	}
}

// ToListOrderResponse converts a slice of domain.Order to response DTOs
func ToListOrderResponse(orders []domain.Order) []OrderResponse {
	res := make([]OrderResponse, len(orders))
	for i, o := range orders {
		res[i] = ToOrderResponse(&o)
	}
	return res
}

// OrderProfitResponse defines the data returned for an order profit breakdown.
type OrderProfitResponse struct {
	OrderID          string                `json:"orderID"`
	Revenue          decimal.Decimal       `json:"revenue"`
	ServicesCost     decimal.Decimal       `json:"servicesCost"`
	TotalCommissions decimal.Decimal       `json:"totalCommissions"`
	Profit           decimal.Decimal       `json:"profit"`
	Details          ProfitDetailsResponse `json:"details"`
}

// ProfitDetailsResponse itemizes the commissions inside an order profit.
type ProfitDetailsResponse struct {
	ManagerOrderCommission    decimal.Decimal `json:"managerOrderCommission"`
	ManagerMountBonus         decimal.Decimal `json:"managerMountBonus"`
	ManagerServicesCommission decimal.Decimal `json:"managerServicesCommission"`
	InstallersBasePayment     decimal.Decimal `json:"installersBasePayment"`
	InstallerSaleBonuses      decimal.Decimal `json:"installerSaleBonuses"`
	OwnerCommission           decimal.Decimal `json:"ownerCommission"`
	StandardMountPrice        decimal.Decimal `json:"standardMountPrice"`
	ACPowerType               *string         `json:"acPowerType,omitempty"`
}

// ToOrderProfitResponse converts a domain.OrderProfit to its response DTO
func ToOrderProfitResponse(p *domain.OrderProfit) OrderProfitResponse {
	return OrderProfitResponse{
		OrderID:          p.OrderID,
		Revenue:          p.Revenue.Round(2),
		ServicesCost:     p.ServicesCost.Round(2),
		TotalCommissions: p.TotalCommissions.Round(2),
		Profit:           p.Profit.Round(2),
		Details: ProfitDetailsResponse{
			ManagerOrderCommission:    p.Details.ManagerOrderCommission.Round(2),
			ManagerMountBonus:         p.Details.ManagerMountBonus.Round(2),
			ManagerServicesCommission: p.Details.ManagerServicesCommission.Round(2),
			InstallersBasePayment:     p.Details.InstallersBasePayment.Round(2),
			InstallerSaleBonuses:      p.Details.InstallerSaleBonuses.Round(2),
			OwnerCommission:           p.Details.OwnerCommission.Round(2),
			StandardMountPrice:        p.Details.StandardMountPrice.Round(2),
			ACPowerType:               p.Details.ACPowerType,
		},
	}
}
