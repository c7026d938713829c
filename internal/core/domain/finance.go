package domain

import "github.com/shopspring/decimal"

// TransactionType is the direction of a financial transaction.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// SignedAmount returns the amount with the sign implied by the type.
func (t TransactionType) SignedAmount(amount decimal.Decimal) decimal.Decimal {
	if t == TransactionExpense {
		return amount.Neg()
	}
	return amount
}

// TransactionSource identifies what kind of event produced a transaction.
type TransactionSource string

const (
	SourceOrder             TransactionSource = "order"
	SourceExpense           TransactionSource = "expense"
	SourcePayout            TransactionSource = "payout"
	SourceOwnerContribution TransactionSource = "owner_contribution"
)

// FinancialTransaction is one append-only ledger entry. Amount is stored
// positive; Type carries the direction.
type FinancialTransaction struct {
	TransactionID   string            `json:"transactionId"`
	TransactionDate string            `json:"transactionDate"`
	Amount          decimal.Decimal   `json:"amount"`
	Type            TransactionType   `json:"type"`
	SourceType      TransactionSource `json:"sourceType"`
	SourceID        *string           `json:"sourceId,omitempty"`
	Description     string            `json:"description"`
	AuditFields
}

// CompanyBalance is the singleton running balance row. It always equals the
// initial balance plus the signed sum of every transaction booked against it.
type CompanyBalance struct {
	BalanceID           string          `json:"balanceId"`
	Balance             decimal.Decimal `json:"balance"`
	InitialBalance      decimal.Decimal `json:"initialBalance"`
	LastTransactionID   *string         `json:"lastTransactionId,omitempty"`
	LastTransactionType *TransactionType `json:"lastTransactionType,omitempty"`
	AuditFields
}

// FinanceSummary aggregates company performance over a date range.
type FinanceSummary struct {
	FromDate           string                              `json:"fromDate"`
	ToDate             string                              `json:"toDate"`
	TotalRevenue       decimal.Decimal                     `json:"totalRevenue"`
	TotalExpenses      decimal.Decimal                     `json:"totalExpenses"`
	TotalCommissions   decimal.Decimal                     `json:"totalCommissions"`
	NetProfit          decimal.Decimal                     `json:"netProfit"`
	ExpensesByCategory map[ExpenseCategory]decimal.Decimal `json:"expensesByCategory"`
	RevenueBySource    map[ClientSource]decimal.Decimal    `json:"revenueBySource"`
	CompletedOrders    int                                 `json:"completedOrders"`
}
