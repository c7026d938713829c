package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/RAVEN850972/cam/internal/apperrors"
	"github.com/RAVEN850972/cam/internal/core/domain"
	portsrepo "github.com/RAVEN850972/cam/internal/core/ports/repositories"
	"github.com/RAVEN850972/cam/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderService manages orders and their economics. Creating an order books
// its full price as ledger income in the same database transaction.
type OrderService struct {
	BaseService
	orderRepo    portsrepo.OrderRepositoryFacade
	clientRepo   portsrepo.ClientReader
	employeeRepo portsrepo.EmployeeReader
	catalogRepo  portsrepo.CatalogReader
	rules        domain.PricingRules
}

func NewOrderService(
	orderRepo portsrepo.OrderRepositoryFacade,
	clientRepo portsrepo.ClientReader,
	employeeRepo portsrepo.EmployeeReader,
	catalogRepo portsrepo.CatalogReader,
	rules domain.PricingRules,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		clientRepo:   clientRepo,
		employeeRepo: employeeRepo,
		catalogRepo:  catalogRepo,
		rules:        rules,
	}
}

// CreateOrder validates references, captures line prices from the catalog,
// and persists the order together with its income booking.
func (s *OrderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
	if err := domain.ValidateDateTime(req.OrderDate); err != nil {
		return nil, err
	}
	if req.MountPrice.IsNegative() {
		return nil, apperrors.NewValidationError("mount price cannot be negative")
	}

	if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
		return nil, err
	}
	manager, err := s.employeeRepo.FindEmployeeByID(ctx, req.ManagerID)
	if err != nil {
		return nil, err
	}
	if manager.Role != domain.RoleManager {
		return nil, apperrors.NewValidationError("managerID must reference a manager")
	}

	now := time.Now()
	orderID := uuid.NewString()

	lines, err := s.buildLines(ctx, orderID, req.Lines)
	if err != nil {
		return nil, err
	}
	crew, err := s.buildCrew(ctx, orderID, req.InstallerIDs)
	if err != nil {
		return nil, err
	}

	ownerCommission := s.rules.OwnerOrderCommission
	if req.OwnerCommission != nil {
		if req.OwnerCommission.IsNegative() {
			return nil, apperrors.NewValidationError("owner commission cannot be negative")
		}
		ownerCommission = *req.OwnerCommission
	}

	order := domain.Order{
		OrderID:         orderID,
		ClientID:        req.ClientID,
		ManagerID:       req.ManagerID,
		Address:         req.Address,
		OrderDate:       req.OrderDate,
		Status:          domain.StatusNew,
		MountPrice:      req.MountPrice,
		OwnerCommission: ownerCommission,
		Notes:           req.Notes,
		Lines:           lines,
		Crew:            crew,
		AuditFields:     domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	income := &domain.FinancialTransaction{
		TransactionID:   uuid.NewString(),
		TransactionDate: order.OrderDate,
		Amount:          order.TotalPrice(),
		Type:            domain.TransactionIncome,
		SourceType:      domain.SourceOrder,
		SourceID:        &order.OrderID,
		Description:     fmt.Sprintf("Order income: %s", order.Address),
		AuditFields:     domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.orderRepo.SaveOrder(ctx, order, income); err != nil {
		if !errors.Is(err, apperrors.ErrNotInitialized) {
			s.LogError(ctx, err, "Failed to save order", slog.String("order_id", order.OrderID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Order created",
		slog.String("order_id", order.OrderID),
		slog.String("client_id", order.ClientID),
		slog.String("total_price", order.TotalPrice().String()))
	return &order, nil
}

// GetOrderByID retrieves an order with lines and crew.
func (s *OrderService) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find order", slog.String("order_id", orderID))
		}
		return nil, err
	}
	return order, nil
}

// ListOrders retrieves orders matching the request filters.
func (s *OrderService) ListOrders(ctx context.Context, req dto.ListOrdersRequest) ([]domain.Order, error) {
	filter := portsrepo.OrderFilter{
		ClientID: req.ClientID,
		Limit:    req.Limit,
		Offset:   req.Offset,
	}
	if req.Status != "" {
		status := domain.OrderStatus(req.Status)
		if !status.Valid() {
			return nil, apperrors.NewValidationError("unknown order status")
		}
		filter.Status = &status
	}
	if req.Period != "" {
		period, err := domain.NormalizePeriod(req.Period)
		if err != nil {
			return nil, err
		}
		filter.Period = period
	}

	orders, err := s.orderRepo.ListOrders(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if orders == nil {
		return []domain.Order{}, nil
	}
	return orders, nil
}

// UpdateOrder updates an order's mutable fields.
func (s *OrderService) UpdateOrder(ctx context.Context, orderID string, req dto.UpdateOrderRequest) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find order for update", slog.String("order_id", orderID))
		}
		return nil, err
	}

	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, apperrors.NewValidationError("unknown order status")
		}
		order.Status = *req.Status
	}
	if req.CompletionDate != nil {
		if err := domain.ValidateDateTime(*req.CompletionDate); err != nil {
			return nil, err
		}
		if completesBefore(*req.CompletionDate, order.OrderDate) {
			return nil, apperrors.NewValidationError("completion date cannot be before the order date")
		}
		order.CompletionDate = req.CompletionDate
	}
	if order.Status == domain.StatusCompleted && order.CompletionDate == nil {
		return nil, apperrors.NewValidationError("completed orders require a completion date")
	}
	if req.MountPrice != nil {
		if req.MountPrice.IsNegative() {
			return nil, apperrors.NewValidationError("mount price cannot be negative")
		}
		order.MountPrice = *req.MountPrice
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}
	order.LastUpdatedAt = time.Now()

	if err := s.orderRepo.UpdateOrder(ctx, *order); err != nil {
		s.LogError(ctx, err, "Failed to update order", slog.String("order_id", orderID))
		return nil, err
	}
	return order, nil
}

// CompleteOrder transitions an order to completed. The completion date
// decides which payroll period the order lands in.
func (s *OrderService) CompleteOrder(ctx context.Context, orderID string, completionDate string) (*domain.Order, error) {
	if err := domain.ValidateDateTime(completionDate); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find order for completion", slog.String("order_id", orderID))
		}
		return nil, err
	}
	if order.Status == domain.StatusCompleted {
		return nil, apperrors.NewAppError(409, "order is already completed", apperrors.ErrConflict)
	}
	if order.Status == domain.StatusCancelled {
		return nil, apperrors.NewAppError(409, "cancelled orders cannot be completed", apperrors.ErrConflict)
	}
	if completesBefore(completionDate, order.OrderDate) {
		return nil, apperrors.NewValidationError("completion date cannot be before the order date")
	}

	order.Status = domain.StatusCompleted
	order.CompletionDate = &completionDate
	order.LastUpdatedAt = time.Now()

	if err := s.orderRepo.UpdateOrder(ctx, *order); err != nil {
		s.LogError(ctx, err, "Failed to complete order", slog.String("order_id", orderID))
		return nil, err
	}

	s.LogInfo(ctx, "Order completed", slog.String("order_id", orderID), slog.String("completion_date", completionDate))
	return order, nil
}

// GetOrderProfit decomposes an order's economics using current catalog data.
func (s *OrderService) GetOrderProfit(ctx context.Context, orderID string) (*domain.OrderProfit, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find order for profit", slog.String("order_id", orderID))
		}
		return nil, err
	}

	services := map[string]domain.CatalogService{}
	if ids := collectServiceIDs([]domain.Order{*order}); len(ids) > 0 {
		services, err = s.catalogRepo.FindServicesByIDs(ctx, ids)
		if err != nil {
			s.LogError(ctx, err, "Failed to load services for profit", slog.String("order_id", orderID))
			return nil, fmt.Errorf("failed to load catalog services: %w", err)
		}
	}

	profit := ComputeOrderProfit(*order, services, s.rules)
	return &profit, nil
}

// completesBefore reports whether a completion stamp predates the order
// stamp. Both are zero-padded ISO strings, so comparing the shared prefix
// orders mixed date-only and date-time values correctly.
func completesBefore(completion, orderDate string) bool {
	n := min(len(completion), len(orderDate))
	return completion[:n] < orderDate[:n]
}

// buildLines captures each line's selling price: the request value when
// given, the current catalog price otherwise.
func (s *OrderService) buildLines(ctx context.Context, orderID string, reqs []dto.OrderLineRequest) ([]domain.OrderLine, error) {
	if len(reqs) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(reqs))
	for _, r := range reqs {
		ids = append(ids, r.ServiceID)
	}
	services, err := s.catalogRepo.FindServicesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog services: %w", err)
	}

	lines := make([]domain.OrderLine, 0, len(reqs))
	for _, r := range reqs {
		svc, ok := services[r.ServiceID]
		if !ok {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("catalog service %s not found", r.ServiceID))
		}
		price := svc.SellingPrice
		if r.SellingPrice != nil {
			if r.SellingPrice.IsNegative() {
				return nil, apperrors.NewValidationError("line selling price cannot be negative")
			}
			price = *r.SellingPrice
		}
		if r.SoldByID != nil {
			if _, err := s.employeeRepo.FindEmployeeByID(ctx, *r.SoldByID); err != nil {
				return nil, err
			}
		}
		lines = append(lines, domain.OrderLine{
			LineID:       uuid.NewString(),
			OrderID:      orderID,
			ServiceID:    r.ServiceID,
			SellingPrice: price,
			SoldByID:     r.SoldByID,
		})
	}
	return lines, nil
}

// buildCrew attaches installers, deduplicated, each with the base payment
// the pricing rules prescribe at creation time.
func (s *OrderService) buildCrew(ctx context.Context, orderID string, installerIDs []string) ([]domain.OrderAssignment, error) {
	seen := make(map[string]bool, len(installerIDs))
	crew := make([]domain.OrderAssignment, 0, len(installerIDs))
	for _, id := range installerIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		employee, err := s.employeeRepo.FindEmployeeByID(ctx, id)
		if err != nil {
			return nil, err
		}
		role := domain.AssignmentInstaller
		payment := s.rules.InstallerBasePayment
		if employee.Role == domain.RoleOwner {
			role = domain.AssignmentOwnerOnSite
			payment = decimal.Zero
		} else if employee.Role != domain.RoleInstaller {
			return nil, apperrors.NewValidationError("crew members must be installers or the owner")
		}
		crew = append(crew, domain.OrderAssignment{
			AssignmentID: uuid.NewString(),
			OrderID:      orderID,
			EmployeeID:   id,
			Role:         role,
			BasePayment:  payment,
		})
	}
	return crew, nil
}
