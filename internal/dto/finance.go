package dto

import (
	"github.com/RAVEN850972/cam/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InitializeBalanceRequest defines the opening balance data.
type InitializeBalanceRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Date   string          `json:"date" binding:"required,ymd"`
}

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	Category         domain.ExpenseCategory `json:"category" binding:"required,oneof=materials fuel equipment other"`
	Kind             domain.ExpenseKind     `json:"kind" binding:"omitempty,oneof=operational procurement"`
	Amount           decimal.Decimal        `json:"amount" binding:"required"`
	Description      string                 `json:"description"`
	ExpenseDate      string                 `json:"expenseDate" binding:"required,ymd"`
	RelatedOrderID   *string                `json:"relatedOrderID"`
	RelatedServiceID *string                `json:"relatedServiceID"`
}

// UpdateExpenseRequest defines the descriptive fields an expense allows
// updating. Amounts are immutable once booked.
type UpdateExpenseRequest struct {
	Category    *domain.ExpenseCategory `json:"category"`
	Description *string                 `json:"description"`
}

// CreatePaymentRequest defines the data needed to record an employee payment.
// A non-positive amount records a penalty.
type CreatePaymentRequest struct {
	EmployeeID  string          `json:"employeeID" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate string          `json:"paymentDate" binding:"required,ymd"`
	Description string          `json:"description"`
}

// ListTransactionsRequest defines query parameters for transaction history.
type ListTransactionsRequest struct {
	Type     string `form:"type"` // income|expense
	FromDate string `form:"fromDate"`
	ToDate   string `form:"toDate"`
	Limit    int    `form:"limit,default=50"`
	Offset   int    `form:"offset,default=0"`
}

// ListExpensesRequest defines query parameters for expense listings.
type ListExpensesRequest struct {
	Category string `form:"category"`
	FromDate string `form:"fromDate"`
	ToDate   string `form:"toDate"`
	Limit    int    `form:"limit,default=50"`
	Offset   int    `form:"offset,default=0"`
}

// BalanceResponse defines the data returned for the company balance.
type BalanceResponse struct {
	Balance             decimal.Decimal         `json:"balance"`
	InitialBalance      decimal.Decimal         `json:"initialBalance"`
	LastTransactionID   *string                 `json:"lastTransactionID,omitempty"`
	LastTransactionType *domain.TransactionType `json:"lastTransactionType,omitempty"`
}

// TransactionResponse defines the data returned for a ledger transaction.
type TransactionResponse struct {
	TransactionID   string                   `json:"transactionID"`
	TransactionDate string                   `json:"transactionDate"`
	Amount          decimal.Decimal          `json:"amount"`
	Type            domain.TransactionType   `json:"type"`
	SourceType      domain.TransactionSource `json:"sourceType"`
	SourceID        *string                  `json:"sourceID,omitempty"`
	Description     string                   `json:"description"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID        string                 `json:"expenseID"`
	Category         domain.ExpenseCategory `json:"category"`
	Kind             domain.ExpenseKind     `json:"kind"`
	Amount           decimal.Decimal        `json:"amount"`
	Description      string                 `json:"description"`
	ExpenseDate      string                 `json:"expenseDate"`
	RelatedOrderID   *string                `json:"relatedOrderID,omitempty"`
	RelatedServiceID *string                `json:"relatedServiceID,omitempty"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID   string          `json:"paymentID"`
	EmployeeID  string          `json:"employeeID"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"paymentDate"`
	Description string          `json:"description"`
	IsPenalty   bool            `json:"isPenalty"`
}

// FinanceSummaryResponse defines the data returned for a finance summary.
type FinanceSummaryResponse struct {
	FromDate           string                     `json:"fromDate"`
	ToDate             string                     `json:"toDate"`
	TotalRevenue       decimal.Decimal            `json:"totalRevenue"`
	TotalExpenses      decimal.Decimal            `json:"totalExpenses"`
	TotalCommissions   decimal.Decimal            `json:"totalCommissions"`
	NetProfit          decimal.Decimal            `json:"netProfit"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expensesByCategory"`
	RevenueBySource    map[string]decimal.Decimal `json:"revenueBySource"`
	CompletedOrders    int                        `json:"completedOrders"`
}

// ToBalanceResponse converts a domain.CompanyBalance to BalanceResponse DTO
func ToBalanceResponse(b *domain.CompanyBalance) BalanceResponse {
	return BalanceResponse{
		Balance:             b.Balance.Round(2),
		InitialBalance:      b.InitialBalance.Round(2),
		LastTransactionID:   b.LastTransactionID,
		LastTransactionType: b.LastTransactionType,
	}
}

// ToTransactionResponse converts a domain.FinancialTransaction to its DTO
func ToTransactionResponse(t *domain.FinancialTransaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		TransactionDate: t.TransactionDate,
		Amount:          t.Amount.Round(2),
		Type:            t.Type,
		SourceType:      t.SourceType,
		SourceID:        t.SourceID,
		Description:     t.Description,
	}
}

// ToListTransactionResponse converts transactions to response DTOs
func ToListTransactionResponse(txns []domain.FinancialTransaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(&t)
	}
	return res
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:        e.ExpenseID,
		Category:         e.Category,
		Kind:             e.Kind,
		Amount:           e.Amount.Round(2),
		Description:      e.Description,
		ExpenseDate:      e.ExpenseDate,
		RelatedOrderID:   e.RelatedOrderID,
		RelatedServiceID: e.RelatedServiceID,
	}
}

// ToListExpenseResponse converts expenses to response DTOs
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		res[i] = ToExpenseResponse(&e)
	}
	return res
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		EmployeeID:  p.EmployeeID,
		Amount:      p.Amount.Round(2),
		PaymentDate: p.PaymentDate,
		Description: p.Description,
		IsPenalty:   p.IsPenalty(),
	}
}

// ToFinanceSummaryResponse converts a domain.FinanceSummary to its DTO
func ToFinanceSummaryResponse(s *domain.FinanceSummary) FinanceSummaryResponse {
	byCategory := make(map[string]decimal.Decimal, len(s.ExpensesByCategory))
	for cat, amt := range s.ExpensesByCategory {
		byCategory[string(cat)] = amt.Round(2)
	}
	bySource := make(map[string]decimal.Decimal, len(s.RevenueBySource))
	for src, amt := range s.RevenueBySource {
		bySource[string(src)] = amt.Round(2)
	}
	return FinanceSummaryResponse{
		FromDate:           s.FromDate,
		ToDate:             s.ToDate,
		TotalRevenue:       s.TotalRevenue.Round(2),
		TotalExpenses:      s.TotalExpenses.Round(2),
		TotalCommissions:   s.TotalCommissions.Round(2),
		NetProfit:          s.NetProfit.Round(2),
		ExpensesByCategory: byCategory,
		RevenueBySource:    bySource,
		CompletedOrders:    s.CompletedOrders,
	}
}
