package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
	"github.com/aussiebroadwan/gymdesk/internal/gym/store"
	"github.com/aussiebroadwan/gymdesk/pkg/idx"
	"github.com/aussiebroadwan/gymdesk/pkg/slogx"
)

const (
	DefaultBillLimit = 10
	MaxBillLimit     = 100

	DefaultPaymentMethod = "cash"

	currencySymbol = "₹"
)

type BillingService struct {
	Store store.Store
	Clock Clock
}

type BillInput struct {
	MemberID      string
	PackageID     *string
	Amount        decimal.Decimal
	DueDate       time.Time
	Status        string // defaults to pending
	PaidDate      *time.Time
	PaymentMethod string
	Notes         string
}

type StatusChange struct {
	Status        string
	PaidDate      *time.Time
	PaymentMethod string
	Notes         string
}

// ReceiptDetail is a receipt with everything a printable copy shows.
type ReceiptDetail struct {
	Receipt domain.Receipt
	Bill    domain.BillView
	Gym     domain.Gym
}

// CreateBill bills a member of the tenant. A bill created as paid gets a
// receipt straight away.
func (s *BillingService) CreateBill(ctx context.Context, adminID string, in BillInput) (domain.BillView, error) {
	status := domain.BillPending
	if in.Status != "" {
		st, ok := domain.ParseBillStatus(in.Status)
		if !ok {
			return domain.BillView{}, invalid("status must be pending, paid or overdue")
		}
		status = st
	}
	if !in.Amount.IsPositive() {
		return domain.BillView{}, invalid("amount must be greater than zero")
	}
	if in.DueDate.IsZero() {
		return domain.BillView{}, invalid("due date is required")
	}

	now := s.Clock.now()
	bill := domain.Bill{
		ID:        idx.NewAt(now).String(),
		AdminID:   adminID,
		MemberID:  strings.TrimSpace(in.MemberID),
		Amount:    in.Amount,
		DueDate:   in.DueDate.UTC(),
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.PackageID != nil && strings.TrimSpace(*in.PackageID) != "" {
		pid := strings.TrimSpace(*in.PackageID)
		bill.PackageID = &pid
	}
	if status == domain.BillPaid {
		paid := now
		if in.PaidDate != nil {
			paid = in.PaidDate.UTC()
		}
		bill.PaidDate = &paid
	}

	var view domain.BillView
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Members().GetMember(ctx, adminID, bill.MemberID); err != nil {
			return mapMissing(err, invalid("member not found"))
		}
		if bill.PackageID != nil {
			if _, err := tx.Packages().GetPackage(ctx, adminID, *bill.PackageID); err != nil {
				return mapMissing(err, invalid("package not found"))
			}
		}
		if err := tx.Bills().CreateBill(ctx, bill); err != nil {
			return err
		}
		if status == domain.BillPaid {
			if _, err := issueReceipt(ctx, tx, bill, in.PaymentMethod, in.Notes, now); err != nil {
				return err
			}
		}
		var err error
		view, err = tx.Bills().GetBill(ctx, adminID, bill.ID)
		return err
	})
	if err != nil {
		return domain.BillView{}, err
	}

	slogx.FromContext(ctx).Info("bill created",
		slog.String("bill_id", bill.ID),
		slog.String("member_id", bill.MemberID),
		slog.String("status", string(status)),
	)
	return view, nil
}

// ListBills returns the tenant's bills by due date, newest first.
func (s *BillingService) ListBills(ctx context.Context, adminID string, limit int) ([]domain.BillView, error) {
	switch {
	case limit <= 0:
		limit = DefaultBillLimit
	case limit > MaxBillLimit:
		limit = MaxBillLimit
	}
	return s.Store.Bills().ListBills(ctx, store.BillFilter{
		AdminID: adminID,
		OrderBy: store.BillsByDueDesc,
		Limit:   limit,
	})
}

// UpdateBillStatus moves a bill between statuses. Marking it paid issues a
// receipt and tells the member; any other status drops the paid date and
// the receipt.
func (s *BillingService) UpdateBillStatus(ctx context.Context, adminID, billID string, ch StatusChange) (domain.BillView, error) {
	status, ok := domain.ParseBillStatus(ch.Status)
	if !ok {
		return domain.BillView{}, invalid("status must be pending, paid or overdue")
	}
	now := s.Clock.now()

	var view domain.BillView
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		cur, err := tx.Bills().GetBill(ctx, adminID, billID)
		if err != nil {
			return err
		}

		if status != domain.BillPaid {
			if err := tx.Bills().UpdateBillStatus(ctx, billID, status, nil); err != nil {
				return err
			}
			if err := tx.Receipts().DeleteReceiptByBill(ctx, billID); err != nil {
				return fmt.Errorf("delete receipt: %w", err)
			}
		} else {
			paid := now
			if ch.PaidDate != nil {
				paid = ch.PaidDate.UTC()
			}
			if err := tx.Bills().UpdateBillStatus(ctx, billID, status, &paid); err != nil {
				return err
			}
			if cur.ReceiptID == nil {
				rc, err := issueReceipt(ctx, tx, cur.Bill, ch.PaymentMethod, ch.Notes, now)
				if err != nil {
					return err
				}
				if err := tx.Notifications().CreateNotification(ctx, paymentConfirmation(cur, rc, now)); err != nil {
					return fmt.Errorf("notify member: %w", err)
				}
			}
		}

		view, err = tx.Bills().GetBill(ctx, adminID, billID)
		return err
	})
	if err != nil {
		return domain.BillView{}, err
	}

	slogx.FromContext(ctx).Info("bill status updated",
		slog.String("bill_id", billID),
		slog.String("status", string(status)),
	)
	return view, nil
}

// GetReceiptForBill returns the receipt of one of the tenant's bills.
func (s *BillingService) GetReceiptForBill(ctx context.Context, adminID, billID string) (ReceiptDetail, error) {
	bill, err := s.Store.Bills().GetBill(ctx, adminID, billID)
	if err != nil {
		return ReceiptDetail{}, err
	}
	rc, err := s.Store.Receipts().GetReceiptByBill(ctx, billID)
	if err != nil {
		return ReceiptDetail{}, err
	}
	gym, err := gymFor(ctx, s.Store, adminID)
	if err != nil {
		return ReceiptDetail{}, err
	}
	return ReceiptDetail{Receipt: rc, Bill: bill, Gym: gym}, nil
}

// MemberBills lists a member's bills, newest first.
func (s *BillingService) MemberBills(ctx context.Context, memberID string) ([]domain.BillView, error) {
	return s.Store.Bills().ListBills(ctx, store.BillFilter{MemberID: memberID})
}

func (s *BillingService) MemberReceipts(ctx context.Context, memberID string) ([]ReceiptDetail, error) {
	receipts, err := s.Store.Receipts().ListReceiptsByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	out := make([]ReceiptDetail, 0, len(receipts))
	var gym *domain.Gym
	for _, rc := range receipts {
		bill, err := s.Store.Bills().GetBill(ctx, rc.AdminID, rc.BillID)
		if err != nil {
			return nil, err
		}
		if gym == nil {
			g, err := gymFor(ctx, s.Store, rc.AdminID)
			if err != nil {
				return nil, err
			}
			gym = &g
		}
		out = append(out, ReceiptDetail{Receipt: rc, Bill: bill, Gym: *gym})
	}
	return out, nil
}

// MemberReceipt returns one of the member's receipts. Receipts of other
// members read as not found.
func (s *BillingService) MemberReceipt(ctx context.Context, memberID, receiptID string) (ReceiptDetail, error) {
	rc, err := s.Store.Receipts().GetReceipt(ctx, receiptID)
	if err != nil {
		return ReceiptDetail{}, err
	}
	if rc.MemberID != memberID {
		return ReceiptDetail{}, store.ErrNotFound
	}
	bill, err := s.Store.Bills().GetBill(ctx, rc.AdminID, rc.BillID)
	if err != nil {
		return ReceiptDetail{}, err
	}
	gym, err := gymFor(ctx, s.Store, rc.AdminID)
	if err != nil {
		return ReceiptDetail{}, err
	}
	return ReceiptDetail{Receipt: rc, Bill: bill, Gym: gym}, nil
}

// SweepOverdue flips pending bills past their due date to overdue and
// notifies each member. It covers every tenant.
func (s *BillingService) SweepOverdue(ctx context.Context) (int, error) {
	now := s.Clock.now()
	var swept int
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		due, err := tx.Bills().ListBills(ctx, store.BillFilter{
			Statuses:  []domain.BillStatus{domain.BillPending},
			DueBefore: &now,
			OrderBy:   store.BillsByDueAsc,
		})
		if err != nil {
			return err
		}
		for _, b := range due {
			if err := tx.Bills().UpdateBillStatus(ctx, b.ID, domain.BillOverdue, nil); err != nil {
				return err
			}
			if err := tx.Notifications().CreateNotification(ctx, overdueNotice(b, now)); err != nil {
				return fmt.Errorf("notify member: %w", err)
			}
			swept++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return swept, nil
}

// issueReceipt stores the receipt for a freshly paid bill.
func issueReceipt(ctx context.Context, tx store.Tx, b domain.Bill, method, notes string, now time.Time) (domain.Receipt, error) {
	method = strings.TrimSpace(method)
	if method == "" {
		method = DefaultPaymentMethod
	}
	id := idx.NewAt(now)
	rc := domain.Receipt{
		ID:            id.String(),
		AdminID:       b.AdminID,
		BillID:        b.ID,
		MemberID:      b.MemberID,
		ReceiptNo:     ReceiptNumber(id, now),
		Amount:        b.Amount,
		PaymentMethod: method,
		Notes:         strings.TrimSpace(notes),
		IssuedAt:      now,
	}
	if err := tx.Receipts().CreateReceipt(ctx, rc); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return tx.Receipts().GetReceiptByBill(ctx, b.ID)
		}
		return domain.Receipt{}, fmt.Errorf("create receipt: %w", err)
	}
	return rc, nil
}

// ReceiptNumber formats RCT-YYYYMMDD-XXXXXX from the issue date and the
// tail of the receipt id.
func ReceiptNumber(id idx.ID, issued time.Time) string {
	return "RCT-" + issued.UTC().Format("20060102") + "-" + id.Tail(6)
}

func money(d decimal.Decimal) string {
	return currencySymbol + d.StringFixed(2)
}

func paymentConfirmation(b domain.BillView, rc domain.Receipt, now time.Time) domain.Notification {
	what := "your bill"
	if b.HasPackage() {
		what = "your " + b.PackageName + " membership"
	}
	return domain.Notification{
		ID:        idx.NewAt(now).String(),
		AdminID:   b.AdminID,
		MemberID:  b.MemberID,
		Title:     "Payment Received",
		Message:   fmt.Sprintf("We received your payment of %s for %s. Receipt number: %s.", money(b.Amount), what, rc.ReceiptNo),
		Type:      domain.NotificationPaymentConfirmation,
		CreatedAt: now,
	}
}

func overdueNotice(b domain.BillView, now time.Time) domain.Notification {
	return domain.Notification{
		ID:       idx.NewAt(now).String(),
		AdminID:  b.AdminID,
		MemberID: b.MemberID,
		Title:    "Overdue Payment",
		Message: fmt.Sprintf("Your bill of %s was due on %s and is now overdue. Please settle it at the front desk.",
			money(b.Amount), b.DueDate.Format("2 Jan 2006")),
		Type:      domain.NotificationOverduePayment,
		CreatedAt: now,
	}
}
