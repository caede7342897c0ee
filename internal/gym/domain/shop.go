package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultProductCategory is shown for products created without a category.
const DefaultProductCategory = "General"

type Product struct {
	ID          string
	AdminID     string
	Name        string
	Description string
	Category    string
	ImageURL    string
	Price       decimal.Decimal
	Stock       int
	Sales       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p Product) InStock() bool { return p.Stock > 0 }

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch v := OrderStatus(strings.ToLower(strings.TrimSpace(s))); v {
	case OrderPending, OrderProcessing, OrderCompleted, OrderCancelled:
		return v, true
	}
	return "", false
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch v := PaymentStatus(strings.ToLower(strings.TrimSpace(s))); v {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return v, true
	}
	return "", false
}

type Order struct {
	ID            string
	AdminID       string
	MemberID      *string // nil for walk-in orders or deleted members
	MemberName    string
	TotalAmount   decimal.Decimal
	Status        OrderStatus
	PaymentStatus PaymentStatus
	Items         []OrderItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem snapshots the product name and unit price at order time.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string // empty once the product is deleted
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}

// LineTotal is price × quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
