package domain

import "github.com/shopspring/decimal"

// ExpenseCategory buckets company spending for reporting.
type ExpenseCategory string

const (
	ExpenseMaterials ExpenseCategory = "materials"
	ExpenseFuel      ExpenseCategory = "fuel"
	ExpenseEquipment ExpenseCategory = "equipment"
	ExpenseOther     ExpenseCategory = "other"
)

func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseMaterials, ExpenseFuel, ExpenseEquipment, ExpenseOther:
		return true
	}
	return false
}

// ExpenseKind separates day-to-day operational spending from procurement of
// goods that end up on orders.
type ExpenseKind string

const (
	ExpenseOperational ExpenseKind = "operational"
	ExpenseProcurement ExpenseKind = "procurement"
)

// Expense is a company outflow. Amount is always positive; the ledger books
// it as a signed expense transaction.
type Expense struct {
	ExpenseID        string          `json:"expenseId"`
	Category         ExpenseCategory `json:"category"`
	Kind             ExpenseKind     `json:"kind"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description"`
	ExpenseDate      string          `json:"expenseDate"`
	RelatedOrderID   *string         `json:"relatedOrderId,omitempty"`
	RelatedServiceID *string         `json:"relatedServiceId,omitempty"`
	AuditFields
}
