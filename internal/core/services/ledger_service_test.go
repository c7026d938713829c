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

type LedgerServiceTestSuite struct {
	suite.Suite
	mockFinanceRepo  *MockFinanceRepository
	mockExpenseRepo  *MockExpenseRepository
	mockPaymentRepo  *MockPaymentRepository
	mockEmployeeRepo *MockEmployeeRepository
	service          portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockFinanceRepo = new(MockFinanceRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewLedgerService(
		suite.mockFinanceRepo,
		suite.mockExpenseRepo,
		suite.mockPaymentRepo,
		suite.mockEmployeeRepo,
	)
}

func (suite *LedgerServiceTestSuite) TestInitializeBalance_Success() {
	ctx := context.Background()
	req := dto.InitializeBalanceRequest{Amount: decimal.NewFromInt(50000), Date: "2026-01-01"}

	suite.mockFinanceRepo.On("InitializeBalance", ctx,
		mock.MatchedBy(func(b domain.CompanyBalance) bool {
			return b.Balance.Equal(req.Amount) && b.InitialBalance.Equal(req.Amount)
		}),
		mock.MatchedBy(func(t domain.FinancialTransaction) bool {
			return t.Type == domain.TransactionIncome &&
				t.SourceType == domain.SourceOwnerContribution &&
				t.Amount.Equal(req.Amount) &&
				t.TransactionDate == req.Date
		}),
	).Return(nil).Once()

	balance, err := suite.service.InitializeBalance(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(balance)
	suite.True(balance.Balance.Equal(req.Amount))
	suite.mockFinanceRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestInitializeBalance_RejectsNegativeAmount() {
	ctx := context.Background()
	req := dto.InitializeBalanceRequest{Amount: decimal.NewFromInt(-1), Date: "2026-01-01"}

	balance, err := suite.service.InitializeBalance(ctx, req)

	suite.Require().Error(err)
	suite.Nil(balance)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockFinanceRepo.AssertNotCalled(suite.T(), "InitializeBalance", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestInitializeBalance_SecondCallConflicts() {
	ctx := context.Background()
	req := dto.InitializeBalanceRequest{Amount: decimal.NewFromInt(50000), Date: "2026-01-01"}

	suite.mockFinanceRepo.On("InitializeBalance", ctx, mock.Anything, mock.Anything).
		Return(apperrors.ErrConflict).Once()

	balance, err := suite.service.InitializeBalance(ctx, req)

	suite.Require().Error(err)
	suite.Nil(balance)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *LedgerServiceTestSuite) TestGetBalance_NotInitialized() {
	ctx := context.Background()

	suite.mockFinanceRepo.On("GetBalance", ctx).Return(nil, apperrors.ErrNotInitialized).Once()

	balance, err := suite.service.GetBalance(ctx)

	suite.Require().Error(err)
	suite.Nil(balance)
	suite.ErrorIs(err, apperrors.ErrNotInitialized)
}

func (suite *LedgerServiceTestSuite) TestRecordExpense_BooksBalanceOutflow() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Category:    domain.ExpenseMaterials,
		Amount:      decimal.NewFromInt(800),
		Description: "Copper pipe",
		ExpenseDate: "2026-07-10",
	}

	suite.mockExpenseRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockExpenseRepo.On("Rollback", ctx, mock.Anything).Return(nil)
	suite.mockExpenseRepo.On("SaveExpenseInTx", ctx, mock.Anything,
		mock.MatchedBy(func(e domain.Expense) bool {
			return e.Kind == domain.ExpenseOperational && e.Amount.Equal(req.Amount)
		}),
	).Return(nil).Once()
	suite.mockFinanceRepo.On("ApplyTransactionInTx", ctx, mock.Anything,
		mock.MatchedBy(func(t domain.FinancialTransaction) bool {
			return t.Type == domain.TransactionExpense &&
				t.SourceType == domain.SourceExpense &&
				t.Amount.Equal(req.Amount)
		}),
	).Return(nil).Once()
	suite.mockExpenseRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	expense, err := suite.service.RecordExpense(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.Equal(domain.ExpenseOperational, expense.Kind)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
	suite.mockFinanceRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordExpense_NotInitialized() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Category:    domain.ExpenseFuel,
		Amount:      decimal.NewFromInt(500),
		ExpenseDate: "2026-07-10",
	}

	suite.mockExpenseRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockExpenseRepo.On("Rollback", ctx, mock.Anything).Return(nil)
	suite.mockExpenseRepo.On("SaveExpenseInTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockFinanceRepo.On("ApplyTransactionInTx", ctx, mock.Anything, mock.Anything).
		Return(apperrors.ErrNotInitialized).Once()

	expense, err := suite.service.RecordExpense(ctx, req)

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrNotInitialized)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRecordExpense_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Category:    domain.ExpenseFuel,
		Amount:      decimal.Zero,
		ExpenseDate: "2026-07-10",
	}

	expense, err := suite.service.RecordExpense(ctx, req)

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestDeleteExpense_BooksCompensatingIncome() {
	ctx := context.Background()
	expense := &domain.Expense{
		ExpenseID:   "exp-1",
		Category:    domain.ExpenseMaterials,
		Kind:        domain.ExpenseOperational,
		Amount:      decimal.NewFromInt(800),
		Description: "Copper pipe",
		ExpenseDate: "2026-07-10",
	}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, "exp-1").Return(expense, nil).Once()
	suite.mockExpenseRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockExpenseRepo.On("Rollback", ctx, mock.Anything).Return(nil)
	suite.mockExpenseRepo.On("DeleteExpenseInTx", ctx, mock.Anything, "exp-1").Return(nil).Once()
	suite.mockFinanceRepo.On("ApplyTransactionInTx", ctx, mock.Anything,
		mock.MatchedBy(func(t domain.FinancialTransaction) bool {
			return t.Type == domain.TransactionIncome &&
				t.Amount.Equal(expense.Amount) &&
				t.Description == "Reversal of expense: Copper pipe"
		}),
	).Return(nil).Once()
	suite.mockExpenseRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	err := suite.service.DeleteExpense(ctx, "exp-1")

	suite.Require().NoError(err)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
	suite.mockFinanceRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordPayment_PayoutBooksBalanceOutflow() {
	ctx := context.Background()
	employee := &domain.Employee{EmployeeID: "ins-1", Name: "Petr", Role: domain.RoleInstaller, Active: true}
	req := dto.CreatePaymentRequest{
		EmployeeID:  "ins-1",
		Amount:      decimal.NewFromInt(3000),
		PaymentDate: "2026-07-31",
	}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, "ins-1").Return(employee, nil).Once()
	suite.mockPaymentRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockPaymentRepo.On("Rollback", ctx, mock.Anything).Return(nil)
	suite.mockPaymentRepo.On("SavePaymentInTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockFinanceRepo.On("ApplyTransactionInTx", ctx, mock.Anything,
		mock.MatchedBy(func(t domain.FinancialTransaction) bool {
			return t.Type == domain.TransactionExpense &&
				t.SourceType == domain.SourcePayout &&
				t.Amount.Equal(req.Amount) &&
				t.Description == "Payout to Petr"
		}),
	).Return(nil).Once()
	suite.mockPaymentRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	payment, err := suite.service.RecordPayment(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.False(payment.IsPenalty())
	suite.mockFinanceRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordPayment_PenaltyNeverMovesBalance() {
	ctx := context.Background()
	employee := &domain.Employee{EmployeeID: "ins-1", Name: "Petr", Role: domain.RoleInstaller, Active: true}
	req := dto.CreatePaymentRequest{
		EmployeeID:  "ins-1",
		Amount:      decimal.NewFromInt(-500),
		PaymentDate: "2026-07-31",
		Description: "Broken fitting",
	}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, "ins-1").Return(employee, nil).Once()
	suite.mockPaymentRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockPaymentRepo.On("Rollback", ctx, mock.Anything).Return(nil)
	suite.mockPaymentRepo.On("SavePaymentInTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockPaymentRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	payment, err := suite.service.RecordPayment(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.True(payment.IsPenalty())
	suite.mockFinanceRepo.AssertNotCalled(suite.T(), "ApplyTransactionInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_RejectsUnknownType() {
	ctx := context.Background()

	txns, err := suite.service.ListTransactions(ctx, dto.ListTransactionsRequest{Type: "transfer"})

	suite.Require().Error(err)
	suite.Nil(txns)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
