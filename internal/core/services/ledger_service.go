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

// LedgerService owns the company balance and its append-only transaction
// history. Every balance mutation pairs a transaction append with the balance
// update inside one database transaction.
type LedgerService struct {
	BaseService
	financeRepo  portsrepo.FinanceRepositoryFacade
	expenseRepo  portsrepo.ExpenseRepositoryFacade
	paymentRepo  portsrepo.PaymentRepositoryFacade
	employeeRepo portsrepo.EmployeeReader
}

func NewLedgerService(
	financeRepo portsrepo.FinanceRepositoryFacade,
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	employeeRepo portsrepo.EmployeeReader,
) *LedgerService {
	return &LedgerService{
		financeRepo:  financeRepo,
		expenseRepo:  expenseRepo,
		paymentRepo:  paymentRepo,
		employeeRepo: employeeRepo,
	}
}

// InitializeBalance creates the singleton balance row, booking the opening
// amount as an owner contribution. A second call fails with ErrConflict.
func (s *LedgerService) InitializeBalance(ctx context.Context, req dto.InitializeBalanceRequest) (*domain.CompanyBalance, error) {
	if err := domain.ValidateDate(req.Date); err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() {
		return nil, apperrors.NewValidationError("opening balance cannot be negative")
	}

	now := time.Now()
	opening := domain.FinancialTransaction{
		TransactionID:   uuid.NewString(),
		TransactionDate: req.Date,
		Amount:          req.Amount,
		Type:            domain.TransactionIncome,
		SourceType:      domain.SourceOwnerContribution,
		Description:     "Opening balance",
		AuditFields:     domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	balance := domain.CompanyBalance{
		BalanceID:           uuid.NewString(),
		Balance:             req.Amount,
		InitialBalance:      req.Amount,
		LastTransactionID:   &opening.TransactionID,
		LastTransactionType: &opening.Type,
		AuditFields:         domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.financeRepo.InitializeBalance(ctx, balance, opening); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to initialize company balance")
		}
		return nil, err
	}

	s.LogInfo(ctx, "Company balance initialized", slog.String("balance_id", balance.BalanceID))
	return &balance, nil
}

// GetBalance retrieves the current balance.
func (s *LedgerService) GetBalance(ctx context.Context) (*domain.CompanyBalance, error) {
	balance, err := s.financeRepo.GetBalance(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotInitialized) {
			s.LogError(ctx, err, "Failed to get company balance")
		}
		return nil, err
	}
	return balance, nil
}

// ListTransactions retrieves transaction history matching the request.
func (s *LedgerService) ListTransactions(ctx context.Context, req dto.ListTransactionsRequest) ([]domain.FinancialTransaction, error) {
	filter := portsrepo.TransactionFilter{
		FromDate: req.FromDate,
		ToDate:   req.ToDate,
		Limit:    req.Limit,
		Offset:   req.Offset,
	}
	if req.Type != "" {
		t := domain.TransactionType(req.Type)
		if t != domain.TransactionIncome && t != domain.TransactionExpense {
			return nil, apperrors.NewValidationError("transaction type must be income or expense")
		}
		filter.Type = &t
	}

	txns, err := s.financeRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.FinancialTransaction{}, nil
	}
	return txns, nil
}

// ListExpenses retrieves expenses matching the request.
func (s *LedgerService) ListExpenses(ctx context.Context, req dto.ListExpensesRequest) ([]domain.Expense, error) {
	filter := portsrepo.ExpenseFilter{
		FromDate: req.FromDate,
		ToDate:   req.ToDate,
		Limit:    req.Limit,
		Offset:   req.Offset,
	}
	if req.Category != "" {
		c := domain.ExpenseCategory(req.Category)
		if !c.Valid() {
			return nil, apperrors.NewValidationError("unknown expense category")
		}
		filter.Category = &c
	}

	expenses, err := s.expenseRepo.ListExpenses(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses")
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

// RecordExpense persists an expense and books it against the balance, both
// inside one database transaction.
func (s *LedgerService) RecordExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	if err := domain.ValidateDate(req.ExpenseDate); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("expense amount must be positive")
	}

	kind := req.Kind
	if kind == "" {
		kind = domain.ExpenseOperational
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:        uuid.NewString(),
		Category:         req.Category,
		Kind:             kind,
		Amount:           req.Amount,
		Description:      req.Description,
		ExpenseDate:      req.ExpenseDate,
		RelatedOrderID:   req.RelatedOrderID,
		RelatedServiceID: req.RelatedServiceID,
		AuditFields:      domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	txn := domain.FinancialTransaction{
		TransactionID:   uuid.NewString(),
		TransactionDate: req.ExpenseDate,
		Amount:          req.Amount,
		Type:            domain.TransactionExpense,
		SourceType:      domain.SourceExpense,
		SourceID:        &expense.ExpenseID,
		Description:     req.Description,
		AuditFields:     domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	tx, err := s.expenseRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin expense transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.expenseRepo.Rollback(ctx, tx) }()

	if err := s.expenseRepo.SaveExpenseInTx(ctx, tx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("expense_id", expense.ExpenseID))
		return nil, err
	}
	if err := s.financeRepo.ApplyTransactionInTx(ctx, tx, txn); err != nil {
		if !errors.Is(err, apperrors.ErrNotInitialized) {
			s.LogError(ctx, err, "Failed to book expense transaction", slog.String("expense_id", expense.ExpenseID))
		}
		return nil, err
	}
	if err := s.expenseRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit expense transaction")
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.LogInfo(ctx, "Expense recorded", slog.String("expense_id", expense.ExpenseID), slog.String("category", string(expense.Category)))
	return &expense, nil
}

// UpdateExpense updates an expense's descriptive fields. The booked amount
// is immutable.
func (s *LedgerService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find expense", slog.String("expense_id", expenseID))
		}
		return nil, err
	}

	if req.Category != nil {
		if !req.Category.Valid() {
			return nil, apperrors.NewValidationError("unknown expense category")
		}
		expense.Category = *req.Category
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	expense.LastUpdatedAt = time.Now()

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, err
	}
	return expense, nil
}

// DeleteExpense removes an expense and books a compensating income
// transaction, keeping the ledger append-only and the balance invariant
// intact.
func (s *LedgerService) DeleteExpense(ctx context.Context, expenseID string) error {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find expense for deletion", slog.String("expense_id", expenseID))
		}
		return err
	}

	now := time.Now()
	reversal := domain.FinancialTransaction{
		TransactionID:   uuid.NewString(),
		TransactionDate: now.Format(domain.DateLayout),
		Amount:          expense.Amount,
		Type:            domain.TransactionIncome,
		SourceType:      domain.SourceExpense,
		SourceID:        &expense.ExpenseID,
		Description:     fmt.Sprintf("Reversal of expense: %s", expense.Description),
		AuditFields:     domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	tx, err := s.expenseRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin expense deletion transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.expenseRepo.Rollback(ctx, tx) }()

	if err := s.expenseRepo.DeleteExpenseInTx(ctx, tx, expenseID); err != nil {
		s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		return err
	}
	if err := s.financeRepo.ApplyTransactionInTx(ctx, tx, reversal); err != nil {
		s.LogError(ctx, err, "Failed to book expense reversal", slog.String("expense_id", expenseID))
		return err
	}
	if err := s.expenseRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit expense deletion")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", expenseID))
	return nil
}

// RecordPayment persists an employee payment. Positive amounts are payouts
// and book a balance outflow; penalties only reduce the employee's paid
// total and never move the company balance.
func (s *LedgerService) RecordPayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	if err := domain.ValidateDate(req.PaymentDate); err != nil {
		return nil, err
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, req.EmployeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee for payment", slog.String("employee_id", req.EmployeeID))
		}
		return nil, err
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		EmployeeID:  employee.EmployeeID,
		Amount:      req.Amount,
		PaymentDate: req.PaymentDate,
		Description: req.Description,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	tx, err := s.paymentRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin payment transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.paymentRepo.Rollback(ctx, tx) }()

	if err := s.paymentRepo.SavePaymentInTx(ctx, tx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.String("payment_id", payment.PaymentID))
		return nil, err
	}

	if req.Amount.GreaterThan(decimal.Zero) {
		txn := domain.FinancialTransaction{
			TransactionID:   uuid.NewString(),
			TransactionDate: req.PaymentDate,
			Amount:          req.Amount,
			Type:            domain.TransactionExpense,
			SourceType:      domain.SourcePayout,
			SourceID:        &payment.PaymentID,
			Description:     fmt.Sprintf("Payout to %s", employee.Name),
			AuditFields:     domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		}
		if err := s.financeRepo.ApplyTransactionInTx(ctx, tx, txn); err != nil {
			if !errors.Is(err, apperrors.ErrNotInitialized) {
				s.LogError(ctx, err, "Failed to book payout transaction", slog.String("payment_id", payment.PaymentID))
			}
			return nil, err
		}
	}

	if err := s.paymentRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit payment transaction")
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("employee_id", employee.EmployeeID),
		slog.Bool("penalty", payment.IsPenalty()))
	return &payment, nil
}
