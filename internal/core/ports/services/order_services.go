package services

import (
	"context"

	"github.com/RAVEN850972/cam/internal/core/domain"
	"github.com/RAVEN850972/cam/internal/dto"
)

// OrderReaderSvc defines read operations for order data
type OrderReaderSvc interface {
	// GetOrderByID retrieves an order with its lines and crew.
	GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrders retrieves orders matching the request filters.
	ListOrders(ctx context.Context, req dto.ListOrdersRequest) ([]domain.Order, error)

	// GetOrderProfit decomposes an order's revenue, cost, commissions and
	// profit using current catalog data and pricing rules.
	GetOrderProfit(ctx context.Context, orderID string) (*domain.OrderProfit, error)
}

// OrderWriterSvc defines write operations for order data
type OrderWriterSvc interface {
	// CreateOrder persists a new order with its lines and crew and books the
	// order income against the company balance atomically.
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error)

	// UpdateOrder updates an order's mutable fields.
	UpdateOrder(ctx context.Context, orderID string, req dto.UpdateOrderRequest) (*domain.Order, error)

	// CompleteOrder transitions an order to completed, stamping the
	// completion date that payroll periods match against.
	CompleteOrder(ctx context.Context, orderID string, completionDate string) (*domain.Order, error)
}

// OrderSvcFacade combines all order-related service interfaces
type OrderSvcFacade interface {
	OrderReaderSvc
	OrderWriterSvc
}
