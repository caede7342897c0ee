package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
	"github.com/aussiebroadwan/gymdesk/internal/gym/store"
)

var receiptNoPattern = regexp.MustCompile(`^RCT-\d{8}-[0-9A-Z]{6}$`)

func TestCreateBill(t *testing.T) {
	t.Parallel()
	e := newTestEnv(t)
	a := e.admin(t, "owner@gym.test")
	m := e.member(t, a.ID, "sam@gym.test")
	p := e.pkg(t, a.ID, "Gold", "1500")

	t.Run("pending by default without receipt", func(t *testing.T) {
		b, err := e.billing.CreateBill(e.ctx, a.ID, BillInput{
			MemberID:  m.ID,
			PackageID: &p.ID,
			Amount:    decimal.RequireFromString("1500"),
			DueDate:   e.clock.Now().AddDate(0, 0, 7),
		})
		require.NoError(t, err)
		require.Equal(t, domain.BillPending, b.Status)
		require.Equal(t, "Gold", b.PackageName)
		require.Equal(t, m.Name, b.MemberName)
		require.Nil(t, b.PaidDate)
		require.Nil(t, b.ReceiptID)
	})

	t.Run("paid bills get a receipt", func(t *testing.T) {
		b, err := e.billing.CreateBill(e.ctx, a.ID, BillInput{
			MemberID: m.ID,
			Amount:   decimal.RequireFromString("200"),
			DueDate:  e.clock.Now(),
			Status:   "Paid",
		})
		require.NoError(t, err)
		require.Equal(t, domain.BillPaid, b.Status)
		require.NotNil(t, b.PaidDate)
		require.NotNil(t, b.ReceiptID)

		rc, err := e.billing.GetReceiptForBill(e.ctx, a.ID, b.ID)
		require.NoError(t, err)
		require.Regexp(t, receiptNoPattern, rc.Receipt.ReceiptNo)
		require.Equal(t, DefaultPaymentMethod, rc.Receipt.PaymentMethod)
		require.Equal(t, "Iron Temple", rc.Gym.Name)
	})

	t.Run("validation", func(t *testing.T) {
		other := e.admin(t, "rival@gym.test")
		stranger := e.member(t, other.ID, "stranger@gym.test")

		cases := map[string]BillInput{
			"zero amount":     {MemberID: m.ID, Amount: decimal.Zero, DueDate: e.clock.Now()},
			"no due date":     {MemberID: m.ID, Amount: decimal.NewFromInt(1)},
			"bad status":      {MemberID: m.ID, Amount: decimal.NewFromInt(1), DueDate: e.clock.Now(), Status: "void"},
			"foreign member":  {MemberID: stranger.ID, Amount: decimal.NewFromInt(1), DueDate: e.clock.Now()},
			"unknown package": {MemberID: m.ID, PackageID: ptr("nope"), Amount: decimal.NewFromInt(1), DueDate: e.clock.Now()},
			"missing member":  {Amount: decimal.NewFromInt(1), DueDate: e.clock.Now()},
			"negative amount": {MemberID: m.ID, Amount: decimal.NewFromInt(-5), DueDate: e.clock.Now()},
		}
		for name, in := range cases {
			_, err := e.billing.CreateBill(e.ctx, a.ID, in)
			require.ErrorIs(t, err, ErrInvalidInput, name)
		}
	})
}

func TestUpdateBillStatus(t *testing.T) {
	t.Parallel()
	e := newTestEnv(t)
	a := e.admin(t, "owner@gym.test")
	m := e.member(t, a.ID, "sam@gym.test")
	p := e.pkg(t, a.ID, "Gold", "1500")

	b, err := e.billing.CreateBill(e.ctx, a.ID, BillInput{
		MemberID:  m.ID,
		PackageID: &p.ID,
		Amount:    p.Price,
		DueDate:   e.clock.Now().AddDate(0, 0, 3),
	})
	require.NoError(t, err)

	paidOn := e.clock.Now().Add(-time.Hour)
	paid, err := e.billing.UpdateBillStatus(e.ctx, a.ID, b.ID, StatusChange{Status: "paid", PaidDate: &paidOn, PaymentMethod: "card"})
	require.NoError(t, err)
	require.Equal(t, domain.BillPaid, paid.Status)
	require.WithinDuration(t, paidOn, *paid.PaidDate, time.Second)
	require.NotNil(t, paid.ReceiptID)

	notes, err := e.notify.List(e.ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, domain.NotificationPaymentConfirmation, notes[0].Type)
	require.Contains(t, notes[0].Message, "₹1500.00")
	require.Contains(t, notes[0].Message, "Gold")

	// Marking it paid again keeps the receipt and does not notify twice.
	again, err := e.billing.UpdateBillStatus(e.ctx, a.ID, b.ID, StatusChange{Status: "paid"})
	require.NoError(t, err)
	require.Equal(t, *paid.ReceiptID, *again.ReceiptID)
	notes, err = e.notify.List(e.ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)

	back, err := e.billing.UpdateBillStatus(e.ctx, a.ID, b.ID, StatusChange{Status: "pending"})
	require.NoError(t, err)
	require.Nil(t, back.PaidDate)
	require.Nil(t, back.ReceiptID)
	_, err = e.billing.GetReceiptForBill(e.ctx, a.ID, b.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = e.billing.UpdateBillStatus(e.ctx, a.ID, b.ID, StatusChange{Status: "refunded"})
	require.ErrorIs(t, err, ErrInvalidInput)

	other := e.admin(t, "rival@gym.test")
	_, err = e.billing.UpdateBillStatus(e.ctx, other.ID, b.ID, StatusChange{Status: "paid"})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestListBillsLimit(t *testing.T) {
	t.Parallel()
	e := newTestEnv(t)
	a := e.admin(t, "owner@gym.test")
	m := e.member(t, a.ID, "sam@gym.test")

	for i := range 12 {
		_, err := e.billing.CreateBill(e.ctx, a.ID, BillInput{
			MemberID: m.ID,
			Amount:   decimal.NewFromInt(100),
			DueDate:  e.clock.Now().AddDate(0, 0, i),
		})
		require.NoError(t, err)
	}

	bills, err := e.billing.ListBills(e.ctx, a.ID, 0)
	require.NoError(t, err)
	require.Len(t, bills, DefaultBillLimit)
	require.True(t, bills[0].DueDate.After(bills[1].DueDate))

	bills, err = e.billing.ListBills(e.ctx, a.ID, 500)
	require.NoError(t, err)
	require.Len(t, bills, 12)
}

func TestMemberReceipts(t *testing.T) {
	t.Parallel()
	e := newTestEnv(t)
	a := e.admin(t, "owner@gym.test")
	sam := e.member(t, a.ID, "sam@gym.test")
	kim := e.member(t, a.ID, "kim@gym.test")

	b, err := e.billing.CreateBill(e.ctx, a.ID, BillInput{
		MemberID: sam.ID,
		Amount:   decimal.NewFromInt(800),
		DueDate:  e.clock.Now(),
		Status:   "paid",
		Notes:    "front desk",
	})
	require.NoError(t, err)

	list, err := e.billing.MemberReceipts(e.ctx, sam.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, b.ID, list[0].Bill.ID)
	require.Equal(t, "front desk", list[0].Receipt.Notes)

	rc, err := e.billing.MemberReceipt(e.ctx, sam.ID, *b.ReceiptID)
	require.NoError(t, err)
	require.Equal(t, sam.Email, rc.Bill.MemberEmail)

	_, err = e.billing.MemberReceipt(e.ctx, kim.ID, *b.ReceiptID)
	require.ErrorIs(t, err, store.ErrNotFound)

	bills, err := e.billing.MemberBills(e.ctx, kim.ID)
	require.NoError(t, err)
	require.Empty(t, bills)
}

func TestSweepOverdue(t *testing.T) {
	t.Parallel()
	e := newTestEnv(t)
	a := e.admin(t, "owner@gym.test")
	m := e.member(t, a.ID, "sam@gym.test")

	late, err := e.billing.CreateBill(e.ctx, a.ID, BillInput{MemberID: m.ID, Amount: decimal.NewFromInt(100), DueDate: e.clock.Now().AddDate(0, 0, -2)})
	require.NoError(t, err)
	_, err = e.billing.CreateBill(e.ctx, a.ID, BillInput{MemberID: m.ID, Amount: decimal.NewFromInt(100), DueDate: e.clock.Now().AddDate(0, 0, 2)})
	require.NoError(t, err)
	_, err = e.billing.CreateBill(e.ctx, a.ID, BillInput{MemberID: m.ID, Amount: decimal.NewFromInt(100), DueDate: e.clock.Now().AddDate(0, 0, -2), Status: "paid"})
	require.NoError(t, err)

	n, err := e.billing.SweepOverdue(e.ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	b, err := e.store.Bills().GetBill(e.ctx, a.ID, late.ID)
	require.NoError(t, err)
	require.Equal(t, domain.BillOverdue, b.Status)

	notes, err := e.notify.List(e.ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, domain.NotificationOverduePayment, notes[0].Type)
	require.Equal(t, "Overdue Payment", domain.DisplayTitle(notes[0].Type))

	n, err = e.billing.SweepOverdue(e.ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}
