package repositories

import (
	"context"

	"github.com/RAVEN850972/cam/internal/core/domain"
)

// OrderFilter narrows order listings.
type OrderFilter struct {
	Status   *domain.OrderStatus
	Period   string // "YYYY-MM" prefix match on order_date; empty matches all
	ClientID string
	Limit    int
	Offset   int
}

// OrderReader defines read operations for order data
type OrderReader interface {
	// FindOrderByID retrieves an order with its lines and crew loaded.
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrders retrieves orders matching the filter, with lines and crew loaded.
	ListOrders(ctx context.Context, filter OrderFilter) ([]domain.Order, error)

	// ListCompletedOrdersInPeriod retrieves every completed order whose
	// completion date falls inside the period, with lines and crew loaded.
	ListCompletedOrdersInPeriod(ctx context.Context, period string) ([]domain.Order, error)

	// ListCompletedOrdersBetween retrieves completed orders in a date range,
	// with lines and crew loaded.
	ListCompletedOrdersBetween(ctx context.Context, fromDate, toDate string) ([]domain.Order, error)

	// CountOrdersByClientID counts orders belonging to a client.
	CountOrdersByClientID(ctx context.Context, clientID string) (int, error)

	// CountLinesByServiceID counts order lines referencing a catalog service.
	CountLinesByServiceID(ctx context.Context, serviceID string) (int, error)
}

// OrderWriter defines write operations for order data
type OrderWriter interface {
	// SaveOrder persists an order with its lines and crew, booking the order
	// income transaction against the company balance, all atomically. A nil
	// income skips the balance booking.
	SaveOrder(ctx context.Context, order domain.Order, income *domain.FinancialTransaction) error

	// UpdateOrder updates an order's mutable fields and replaces its lines
	// and crew atomically.
	UpdateOrder(ctx context.Context, order domain.Order) error
}

// OrderRepositoryFacade combines all order-related repository interfaces
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
