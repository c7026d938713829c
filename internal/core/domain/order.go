package domain

import "github.com/shopspring/decimal"

// OrderStatus is the lifecycle state of an order. Only completed orders
// participate in payroll.
type OrderStatus string

const (
	StatusNew        OrderStatus = "new"
	StatusInProgress OrderStatus = "in_progress"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// AssignmentRole is the capacity in which an employee is attached to an
// order's crew.
type AssignmentRole string

const (
	AssignmentInstaller   AssignmentRole = "installer"
	AssignmentOwnerOnSite AssignmentRole = "owner_on_site"
)

// OrderLine is one sold catalog service on an order. SellingPrice is captured
// at sale time and does not follow later catalog edits. SoldByID identifies
// the employee credited with the sale, when any.
type OrderLine struct {
	LineID       string          `json:"lineId"`
	OrderID      string          `json:"orderId"`
	ServiceID    string          `json:"serviceId"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	SoldByID     *string         `json:"soldById,omitempty"`
}

// OrderAssignment attaches an employee to an order's crew.
type OrderAssignment struct {
	AssignmentID string          `json:"assignmentId"`
	OrderID      string          `json:"orderId"`
	EmployeeID   string          `json:"employeeId"`
	Role         AssignmentRole  `json:"role"`
	BasePayment  decimal.Decimal `json:"basePayment"`
}

// Order is a customer job: a mount at an agreed price plus zero or more sold
// service lines, worked by a crew.
type Order struct {
	OrderID         string            `json:"orderId"`
	ClientID        string            `json:"clientId"`
	ManagerID       string            `json:"managerId"`
	Address         string            `json:"address"`
	OrderDate       string            `json:"orderDate"`
	CompletionDate  *string           `json:"completionDate,omitempty"`
	Status          OrderStatus       `json:"status"`
	MountPrice      decimal.Decimal   `json:"mountPrice"`
	OwnerCommission decimal.Decimal   `json:"ownerCommission"`
	Notes           string            `json:"notes"`
	Lines           []OrderLine       `json:"lines,omitempty"`
	Crew            []OrderAssignment `json:"crew,omitempty"`
	AuditFields
}

// TotalPrice is the full amount the client pays: mount price plus every
// line's captured selling price.
func (o Order) TotalPrice() decimal.Decimal {
	total := o.MountPrice
	for _, line := range o.Lines {
		total = total.Add(line.SellingPrice)
	}
	return total
}

// IsCompleted reports whether the order counts toward payroll and profit.
func (o Order) IsCompleted() bool {
	return o.Status == StatusCompleted
}
