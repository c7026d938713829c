package services_test

import (
	"context"
	"testing"

	"github.com/RAVEN850972/cam/internal/apperrors"
	"github.com/RAVEN850972/cam/internal/core/domain"
	portssvc "github.com/RAVEN850972/cam/internal/core/ports/services"
	"github.com/RAVEN850972/cam/internal/core/services"
	"github.com/RAVEN850972/cam/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OrderServiceTestSuite struct {
	suite.Suite
	mockOrderRepo    *MockOrderRepository
	mockClientRepo   *MockClientRepository
	mockEmployeeRepo *MockEmployeeRepository
	mockCatalogRepo  *MockCatalogRepository
	service          portssvc.OrderSvcFacade
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockCatalogRepo = new(MockCatalogRepository)
	suite.service = services.NewOrderService(
		suite.mockOrderRepo,
		suite.mockClientRepo,
		suite.mockEmployeeRepo,
		suite.mockCatalogRepo,
		domain.DefaultPricingRules(),
	)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_Success() {
	ctx := context.Background()
	client := &domain.Client{ClientID: "cli-1", Name: "Ivan", Phone: "+70000000001"}
	manager := &domain.Employee{EmployeeID: "mgr-1", Name: "Anna", Role: domain.RoleManager, Active: true}
	installer := &domain.Employee{EmployeeID: "ins-1", Name: "Petr", Role: domain.RoleInstaller, Active: true}
	owner := &domain.Employee{EmployeeID: "own-1", Name: "Oleg", Role: domain.RoleOwner, Active: true}
	acUnit := acUnitService()

	req := dto.CreateOrderRequest{
		ClientID:   "cli-1",
		ManagerID:  "mgr-1",
		Address:    "Lenina 5",
		OrderDate:  "2026-07-01 10:00",
		MountPrice: decimal.NewFromInt(7000),
		Lines: []dto.OrderLineRequest{
			{ServiceID: acUnit.ServiceID},
		},
		// duplicate installer id collapses to one crew row
		InstallerIDs: []string{"ins-1", "ins-1", "own-1"},
	}

	suite.mockClientRepo.On("FindClientByID", ctx, "cli-1").Return(client, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, "mgr-1").Return(manager, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, "ins-1").Return(installer, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, "own-1").Return(owner, nil).Once()
	suite.mockCatalogRepo.On("FindServicesByIDs", ctx, []string{acUnit.ServiceID}).
		Return(map[string]domain.CatalogService{acUnit.ServiceID: acUnit}, nil).Once()
	suite.mockOrderRepo.On("SaveOrder", ctx,
		mock.MatchedBy(func(o domain.Order) bool {
			return o.Status == domain.StatusNew && len(o.Crew) == 2
		}),
		mock.MatchedBy(func(t *domain.FinancialTransaction) bool {
			// income equals mount price plus the captured catalog line price
			return t.Type == domain.TransactionIncome &&
				t.SourceType == domain.SourceOrder &&
				t.Amount.Equal(decimal.NewFromInt(27000))
		}),
	).Return(nil).Once()

	order, err := suite.service.CreateOrder(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.Require().Len(order.Lines, 1)
	suite.True(order.Lines[0].SellingPrice.Equal(acUnit.SellingPrice), "line price %s", order.Lines[0].SellingPrice)

	suite.Require().Len(order.Crew, 2)
	suite.Equal(domain.AssignmentInstaller, order.Crew[0].Role)
	suite.True(order.Crew[0].BasePayment.Equal(decimal.NewFromInt(1500)), "installer payment %s", order.Crew[0].BasePayment)
	suite.Equal(domain.AssignmentOwnerOnSite, order.Crew[1].Role)
	suite.True(order.Crew[1].BasePayment.IsZero(), "owner payment %s", order.Crew[1].BasePayment)

	suite.True(order.OwnerCommission.Equal(decimal.NewFromInt(1500)), "owner commission %s", order.OwnerCommission)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_LinePriceOverridesCatalog() {
	ctx := context.Background()
	client := &domain.Client{ClientID: "cli-1", Name: "Ivan", Phone: "+70000000001"}
	manager := &domain.Employee{EmployeeID: "mgr-1", Name: "Anna", Role: domain.RoleManager, Active: true}
	acUnit := acUnitService()

	discounted := decimal.NewFromInt(18000)
	req := dto.CreateOrderRequest{
		ClientID:   "cli-1",
		ManagerID:  "mgr-1",
		OrderDate:  "2026-07-01",
		MountPrice: decimal.NewFromInt(7000),
		Lines: []dto.OrderLineRequest{
			{ServiceID: acUnit.ServiceID, SellingPrice: &discounted},
		},
	}

	suite.mockClientRepo.On("FindClientByID", ctx, "cli-1").Return(client, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, "mgr-1").Return(manager, nil).Once()
	suite.mockCatalogRepo.On("FindServicesByIDs", ctx, []string{acUnit.ServiceID}).
		Return(map[string]domain.CatalogService{acUnit.ServiceID: acUnit}, nil).Once()
	suite.mockOrderRepo.On("SaveOrder", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	order, err := suite.service.CreateOrder(ctx, req)

	suite.Require().NoError(err)
	suite.Require().Len(order.Lines, 1)
	suite.True(order.Lines[0].SellingPrice.Equal(discounted), "line price %s", order.Lines[0].SellingPrice)
	suite.True(order.TotalPrice().Equal(decimal.NewFromInt(25000)), "total %s", order.TotalPrice())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_ManagerIDMustReferenceManager() {
	ctx := context.Background()
	client := &domain.Client{ClientID: "cli-1", Name: "Ivan", Phone: "+70000000001"}
	installer := &domain.Employee{EmployeeID: "ins-1", Name: "Petr", Role: domain.RoleInstaller, Active: true}

	suite.mockClientRepo.On("FindClientByID", ctx, "cli-1").Return(client, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, "ins-1").Return(installer, nil).Once()

	order, err := suite.service.CreateOrder(ctx, dto.CreateOrderRequest{
		ClientID:   "cli-1",
		ManagerID:  "ins-1",
		OrderDate:  "2026-07-01",
		MountPrice: decimal.NewFromInt(7000),
	})

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "SaveOrder", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_UnknownServiceOnLine() {
	ctx := context.Background()
	client := &domain.Client{ClientID: "cli-1", Name: "Ivan", Phone: "+70000000001"}
	manager := &domain.Employee{EmployeeID: "mgr-1", Name: "Anna", Role: domain.RoleManager, Active: true}

	suite.mockClientRepo.On("FindClientByID", ctx, "cli-1").Return(client, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, "mgr-1").Return(manager, nil).Once()
	suite.mockCatalogRepo.On("FindServicesByIDs", ctx, []string{"ghost"}).
		Return(map[string]domain.CatalogService{}, nil).Once()

	order, err := suite.service.CreateOrder(ctx, dto.CreateOrderRequest{
		ClientID:   "cli-1",
		ManagerID:  "mgr-1",
		OrderDate:  "2026-07-01",
		MountPrice: decimal.NewFromInt(7000),
		Lines:      []dto.OrderLineRequest{{ServiceID: "ghost"}},
	})

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "SaveOrder", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestCompleteOrder_Success() {
	ctx := context.Background()
	order := &domain.Order{OrderID: "ord-1", Status: domain.StatusInProgress, OrderDate: "2026-07-01"}

	suite.mockOrderRepo.On("FindOrderByID", ctx, "ord-1").Return(order, nil).Once()
	suite.mockOrderRepo.On("UpdateOrder", ctx,
		mock.MatchedBy(func(o domain.Order) bool {
			return o.Status == domain.StatusCompleted &&
				o.CompletionDate != nil && *o.CompletionDate == "2026-07-15 14:00"
		}),
	).Return(nil).Once()

	updated, err := suite.service.CompleteOrder(ctx, "ord-1", "2026-07-15 14:00")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCompleted, updated.Status)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCompleteOrder_BeforeOrderDateRejected() {
	ctx := context.Background()
	order := &domain.Order{OrderID: "ord-1", Status: domain.StatusInProgress, OrderDate: "2026-07-15 10:00"}

	suite.mockOrderRepo.On("FindOrderByID", ctx, "ord-1").Return(order, nil).Once()

	updated, err := suite.service.CompleteOrder(ctx, "ord-1", "2026-06-01")

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "UpdateOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestCompleteOrder_SameDayDateOnlyAccepted() {
	ctx := context.Background()
	order := &domain.Order{OrderID: "ord-1", Status: domain.StatusInProgress, OrderDate: "2026-07-15 10:00"}

	suite.mockOrderRepo.On("FindOrderByID", ctx, "ord-1").Return(order, nil).Once()
	suite.mockOrderRepo.On("UpdateOrder", ctx, mock.Anything).Return(nil).Once()

	updated, err := suite.service.CompleteOrder(ctx, "ord-1", "2026-07-15")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCompleted, updated.Status)
}

func (suite *OrderServiceTestSuite) TestCompleteOrder_AlreadyCompleted() {
	ctx := context.Background()
	done := "2026-07-10"
	order := &domain.Order{OrderID: "ord-1", Status: domain.StatusCompleted, CompletionDate: &done}

	suite.mockOrderRepo.On("FindOrderByID", ctx, "ord-1").Return(order, nil).Once()

	updated, err := suite.service.CompleteOrder(ctx, "ord-1", "2026-07-15")

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "UpdateOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestCompleteOrder_CancelledStaysCancelled() {
	ctx := context.Background()
	order := &domain.Order{OrderID: "ord-1", Status: domain.StatusCancelled}

	suite.mockOrderRepo.On("FindOrderByID", ctx, "ord-1").Return(order, nil).Once()

	updated, err := suite.service.CompleteOrder(ctx, "ord-1", "2026-07-15")

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *OrderServiceTestSuite) TestUpdateOrder_CompletedRequiresCompletionDate() {
	ctx := context.Background()
	order := &domain.Order{OrderID: "ord-1", Status: domain.StatusInProgress}
	completed := domain.StatusCompleted

	suite.mockOrderRepo.On("FindOrderByID", ctx, "ord-1").Return(order, nil).Once()

	updated, err := suite.service.UpdateOrder(ctx, "ord-1", dto.UpdateOrderRequest{Status: &completed})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "UpdateOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestUpdateOrder_CompletionBeforeOrderDateRejected() {
	ctx := context.Background()
	order := &domain.Order{OrderID: "ord-1", Status: domain.StatusInProgress, OrderDate: "2026-07-15 10:00"}
	backdated := "2026-06-01"

	suite.mockOrderRepo.On("FindOrderByID", ctx, "ord-1").Return(order, nil).Once()

	updated, err := suite.service.UpdateOrder(ctx, "ord-1", dto.UpdateOrderRequest{CompletionDate: &backdated})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "UpdateOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestListOrders_RejectsUnknownStatus() {
	ctx := context.Background()

	orders, err := suite.service.ListOrders(ctx, dto.ListOrdersRequest{Status: "archived"})

	suite.Require().Error(err)
	suite.Nil(orders)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "ListOrders", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestGetOrderProfit() {
	ctx := context.Background()
	acUnit := acUnitService()
	order := &domain.Order{
		OrderID:         "ord-1",
		ManagerID:       "mgr-1",
		Status:          domain.StatusCompleted,
		MountPrice:      decimal.NewFromInt(7000),
		OwnerCommission: decimal.NewFromInt(1500),
		Lines: []domain.OrderLine{
			{LineID: "l1", OrderID: "ord-1", ServiceID: acUnit.ServiceID, SellingPrice: acUnit.SellingPrice},
		},
		Crew: []domain.OrderAssignment{
			{AssignmentID: "a1", OrderID: "ord-1", EmployeeID: "ins-1", Role: domain.AssignmentInstaller, BasePayment: decimal.NewFromInt(1500)},
		},
	}

	suite.mockOrderRepo.On("FindOrderByID", ctx, "ord-1").Return(order, nil).Once()
	suite.mockCatalogRepo.On("FindServicesByIDs", ctx, []string{acUnit.ServiceID}).
		Return(map[string]domain.CatalogService{acUnit.ServiceID: acUnit}, nil).Once()

	profit, err := suite.service.GetOrderProfit(ctx, "ord-1")

	suite.Require().NoError(err)
	suite.True(profit.Revenue.Equal(decimal.NewFromInt(27000)), "revenue %s", profit.Revenue)
	suite.True(profit.ServicesCost.Equal(decimal.NewFromInt(10000)), "cost %s", profit.ServicesCost)
	// 1000 order + 300 mount bonus + 2000 AC share + 1500 installer + 1500 owner
	suite.True(profit.TotalCommissions.Equal(decimal.NewFromInt(6300)), "commissions %s", profit.TotalCommissions)
	suite.True(profit.Profit.Equal(decimal.NewFromInt(10700)), "profit %s", profit.Profit)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
