package domain

import "github.com/shopspring/decimal"

// Payment is money paid to (or withheld from) an employee. A non-positive
// amount is a penalty: it reduces what the employee has been paid in the
// period but never moves the company balance.
type Payment struct {
	PaymentID   string          `json:"paymentId"`
	EmployeeID  string          `json:"employeeId"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"paymentDate"`
	Description string          `json:"description"`
	AuditFields
}

// IsPenalty reports whether this payment is a deduction rather than a payout.
func (p Payment) IsPenalty() bool {
	return p.Amount.LessThanOrEqual(decimal.Zero)
}
