package services_test

import (
	"context"
	"testing"

	"github.com/RAVEN850972/cam/internal/apperrors"
	"github.com/RAVEN850972/cam/internal/core/domain"
	portssvc "github.com/RAVEN850972/cam/internal/core/ports/services"
	"github.com/RAVEN850972/cam/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PayrollServiceTestSuite struct {
	suite.Suite
	mockEmployeeRepo *MockEmployeeRepository
	mockOrderRepo    *MockOrderRepository
	mockCatalogRepo  *MockCatalogRepository
	mockPaymentRepo  *MockPaymentRepository
	service          portssvc.PayrollSvc
}

func (suite *PayrollServiceTestSuite) SetupTest() {
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.mockCatalogRepo = new(MockCatalogRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.service = services.NewPayrollService(
		suite.mockEmployeeRepo,
		suite.mockOrderRepo,
		suite.mockCatalogRepo,
		suite.mockPaymentRepo,
		domain.DefaultPricingRules(),
	)
}

func (suite *PayrollServiceTestSuite) installerOrders() []domain.Order {
	return []domain.Order{
		{
			OrderID: "ord-1",
			Status:  domain.StatusCompleted,
			Crew: []domain.OrderAssignment{
				{AssignmentID: "a1", EmployeeID: "ins-1", Role: domain.AssignmentInstaller, BasePayment: decimal.NewFromInt(1500)},
			},
		},
		{
			OrderID: "ord-2",
			Status:  domain.StatusCompleted,
			Crew: []domain.OrderAssignment{
				{AssignmentID: "a2", EmployeeID: "ins-1", Role: domain.AssignmentInstaller, BasePayment: decimal.NewFromInt(1500)},
			},
		},
	}
}

func (suite *PayrollServiceTestSuite) TestGetEmployeeEarnings_FullyPaid() {
	ctx := context.Background()
	installer := &domain.Employee{EmployeeID: "ins-1", Name: "Petr", Role: domain.RoleInstaller, Active: true}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, "ins-1").Return(installer, nil).Once()
	suite.mockOrderRepo.On("ListCompletedOrdersInPeriod", ctx, "2026-07").Return(suite.installerOrders(), nil).Once()
	suite.mockPaymentRepo.On("FindPaymentsByEmployeeInPeriod", ctx, "ins-1", "2026-07").
		Return([]domain.Payment{{PaymentID: "p1", EmployeeID: "ins-1", Amount: decimal.NewFromInt(3000)}}, nil).Once()

	earnings, err := suite.service.GetEmployeeEarnings(ctx, "ins-1", "2026-07")

	suite.Require().NoError(err)
	suite.Equal(2, earnings.OrderCount)
	suite.True(earnings.Salary.Equal(decimal.NewFromInt(3000)), "salary %s", earnings.Salary)
	suite.True(earnings.Paid.Equal(decimal.NewFromInt(3000)), "paid %s", earnings.Paid)
	suite.True(earnings.ToPay.IsZero(), "to pay %s", earnings.ToPay)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
	suite.mockOrderRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestGetEmployeeEarnings_PenaltyRaisesToPay() {
	ctx := context.Background()
	installer := &domain.Employee{EmployeeID: "ins-1", Name: "Petr", Role: domain.RoleInstaller, Active: true}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, "ins-1").Return(installer, nil).Once()
	suite.mockOrderRepo.On("ListCompletedOrdersInPeriod", ctx, "2026-07").Return(suite.installerOrders(), nil).Once()
	suite.mockPaymentRepo.On("FindPaymentsByEmployeeInPeriod", ctx, "ins-1", "2026-07").
		Return([]domain.Payment{
			{PaymentID: "p1", EmployeeID: "ins-1", Amount: decimal.NewFromInt(3000)},
			{PaymentID: "p2", EmployeeID: "ins-1", Amount: decimal.NewFromInt(-500)},
		}, nil).Once()

	earnings, err := suite.service.GetEmployeeEarnings(ctx, "ins-1", "2026-07")

	suite.Require().NoError(err)
	suite.True(earnings.Paid.Equal(decimal.NewFromInt(2500)), "paid %s", earnings.Paid)
	suite.True(earnings.ToPay.Equal(decimal.NewFromInt(500)), "to pay %s", earnings.ToPay)
}

func (suite *PayrollServiceTestSuite) TestGetEmployeeEarnings_MalformedPeriodFailsClosed() {
	ctx := context.Background()

	earnings, err := suite.service.GetEmployeeEarnings(ctx, "ins-1", "bad-period")

	suite.Require().Error(err)
	suite.Nil(earnings)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "ListCompletedOrdersInPeriod", mock.Anything, mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestGetEmployeeEarnings_UnknownEmployee() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	earnings, err := suite.service.GetEmployeeEarnings(ctx, "ghost", "2026-07")

	suite.Require().Error(err)
	suite.Nil(earnings)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PayrollServiceTestSuite) TestGetPayroll_TotalsBalance() {
	ctx := context.Background()
	employees := []domain.Employee{
		{EmployeeID: "mgr-1", Name: "Anna", Role: domain.RoleManager, BaseSalary: decPtr(decimal.NewFromInt(20000)), Active: true},
		{EmployeeID: "ins-1", Name: "Petr", Role: domain.RoleInstaller, Active: true},
		{EmployeeID: "own-1", Name: "Oleg", Role: domain.RoleOwner, Active: true},
	}
	orders := []domain.Order{{
		OrderID:         "ord-1",
		ManagerID:       "mgr-1",
		Status:          domain.StatusCompleted,
		MountPrice:      decimal.NewFromInt(4000),
		OwnerCommission: decimal.NewFromInt(1500),
		Crew: []domain.OrderAssignment{
			{AssignmentID: "a1", EmployeeID: "ins-1", Role: domain.AssignmentInstaller, BasePayment: decimal.NewFromInt(1500)},
		},
	}}

	suite.mockEmployeeRepo.On("ListEmployees", ctx, false).Return(employees, nil).Once()
	suite.mockOrderRepo.On("ListCompletedOrdersInPeriod", ctx, "2026-07").Return(orders, nil).Once()
	suite.mockPaymentRepo.On("ListPaymentsInPeriod", ctx, "2026-07").
		Return([]domain.Payment{{PaymentID: "p1", EmployeeID: "ins-1", Amount: decimal.NewFromInt(1000)}}, nil).Once()

	summary, err := suite.service.GetPayroll(ctx, "2026-07")

	suite.Require().NoError(err)
	suite.Equal("2026-07", summary.Period)
	suite.Len(summary.Employees, 3)

	// manager 21000, installer 1500, owner 1500
	suite.True(summary.TotalSalary.Equal(decimal.NewFromInt(24000)), "total salary %s", summary.TotalSalary)
	suite.True(summary.TotalPaid.Equal(decimal.NewFromInt(1000)), "total paid %s", summary.TotalPaid)
	suite.True(summary.TotalToPay.Equal(summary.TotalSalary.Sub(summary.TotalPaid)), "total to pay %s", summary.TotalToPay)
}

func (suite *PayrollServiceTestSuite) TestGetPayroll_MalformedPeriodFailsClosed() {
	ctx := context.Background()

	summary, err := suite.service.GetPayroll(ctx, "07-2026")

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "ListEmployees", mock.Anything, mock.Anything)
}

func TestPayrollServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayrollServiceTestSuite))
}
