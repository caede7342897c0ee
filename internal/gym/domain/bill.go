package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type BillStatus string

const (
	BillPending BillStatus = "pending"
	BillPaid    BillStatus = "paid"
	BillOverdue BillStatus = "overdue"
)

func ParseBillStatus(s string) (BillStatus, bool) {
	switch BillStatus(strings.ToLower(strings.TrimSpace(s))) {
	case BillPending:
		return BillPending, true
	case BillPaid:
		return BillPaid, true
	case BillOverdue:
		return BillOverdue, true
	}
	return "", false
}

type Bill struct {
	ID        string
	AdminID   string
	MemberID  string
	PackageID *string // nil when billed without a package or the package was deleted
	Amount    decimal.Decimal
	DueDate   time.Time
	Status    BillStatus
	PaidDate  *time.Time // set only while Status is paid
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BillView is a bill joined with the member, package and receipt it refers to.
// Package fields are zero when PackageID is nil.
type BillView struct {
	Bill

	MemberName     string
	MemberEmail    string
	MemberStatus   MemberStatus
	MemberJoinDate time.Time

	PackageName         string
	PackagePrice        decimal.Decimal
	PackageBillingCycle string

	ReceiptID *string
}

// HasPackage reports whether the bill is linked to a package.
func (b BillView) HasPackage() bool { return b.PackageID != nil && *b.PackageID != "" }

// Receipt is proof of payment for a paid bill. One per bill.
type Receipt struct {
	ID            string
	AdminID       string
	BillID        string
	MemberID      string
	ReceiptNo     string
	Amount        decimal.Decimal
	PaymentMethod string
	Notes         string
	IssuedAt      time.Time
}
