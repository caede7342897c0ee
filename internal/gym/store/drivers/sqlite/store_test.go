package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
	"github.com/aussiebroadwan/gymdesk/internal/gym/store"
	"github.com/aussiebroadwan/gymdesk/pkg/idx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedAdmin(t *testing.T, s *Store, email string) domain.Admin {
	t.Helper()

	now := time.Now().UTC()
	a := domain.Admin{
		ID:        idx.New().String(),
		Email:     email,
		Name:      "Owner",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.Admins().CreateAdmin(context.Background(), a))
	return a
}

func seedMember(t *testing.T, s *Store, adminID, email string) domain.Member {
	t.Helper()

	now := time.Now().UTC()
	m := domain.Member{
		ID:        idx.New().String(),
		AdminID:   adminID,
		Name:      "Member " + email,
		Email:     email,
		Status:    domain.MemberActive,
		JoinDate:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.Members().CreateMember(context.Background(), m))
	return m
}

func seedProduct(t *testing.T, s *Store, adminID string, stock int) domain.Product {
	t.Helper()

	now := time.Now().UTC()
	p := domain.Product{
		ID:        idx.New().String(),
		AdminID:   adminID,
		Name:      "Whey",
		Category:  domain.DefaultProductCategory,
		Price:     decimal.RequireFromString("49.90"),
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.Products().CreateProduct(context.Background(), p))
	return p
}

func TestMigrationsAreIdempotent(t *testing.T) {
	s := newTestStore(t)

	// Second run must be a no-op
	require.NoError(t, s.ApplyMigrations())

	version, dirty, err := s.SchemaVersion()
	require.NoError(t, err)
	require.False(t, dirty)
	require.Equal(t, uint(1), version)
}

func TestAdminEmailIsUniqueIgnoringCase(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedAdmin(t, s, "owner@gym.test")

	dup := domain.Admin{
		ID:        idx.New().String(),
		Email:     "OWNER@gym.test",
		Name:      "Other",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.ErrorIs(t, s.Admins().CreateAdmin(ctx, dup), store.ErrAlreadyExists)

	got, err := s.Admins().GetAdminByEmail(ctx, "Owner@Gym.Test")
	require.NoError(t, err)
	require.Equal(t, "owner@gym.test", got.Email)
}

func TestMembersAreTenantScoped(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := seedAdmin(t, s, "a@gym.test")
	b := seedAdmin(t, s, "b@gym.test")
	m := seedMember(t, s, a.ID, "m@gym.test")

	_, err := s.Members().GetMember(ctx, b.ID, m.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, s.Members().DeleteMember(ctx, b.ID, m.ID), store.ErrNotFound)

	list, err := s.Members().ListMembers(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestBillViewJoinsPackageAndReceipt(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := seedAdmin(t, s, "a@gym.test")
	m := seedMember(t, s, a.ID, "m@gym.test")

	now := time.Now().UTC()
	pkg := domain.Package{
		ID:           idx.New().String(),
		AdminID:      a.ID,
		Name:         "Gold",
		Price:        decimal.RequireFromString("120.00"),
		BillingCycle: "monthly",
		Features:     []string{"sauna", "classes"},
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Packages().CreatePackage(ctx, pkg))

	bill := domain.Bill{
		ID:        idx.New().String(),
		AdminID:   a.ID,
		MemberID:  m.ID,
		PackageID: &pkg.ID,
		Amount:    decimal.RequireFromString("120.00"),
		DueDate:   now.Add(72 * time.Hour),
		Status:    domain.BillPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.Bills().CreateBill(ctx, bill))

	v, err := s.Bills().GetBill(ctx, a.ID, bill.ID)
	require.NoError(t, err)
	require.Equal(t, "Gold", v.PackageName)
	require.True(t, v.PackagePrice.Equal(pkg.Price))
	require.Equal(t, m.Name, v.MemberName)
	require.Nil(t, v.ReceiptID)

	paid := now
	require.NoError(t, s.Bills().UpdateBillStatus(ctx, bill.ID, domain.BillPaid, &paid))
	require.NoError(t, s.Receipts().CreateReceipt(ctx, domain.Receipt{
		ID:            idx.New().String(),
		AdminID:       a.ID,
		BillID:        bill.ID,
		MemberID:      m.ID,
		ReceiptNo:     "RCT-20260101-ABCDEF",
		Amount:        bill.Amount,
		PaymentMethod: "cash",
		IssuedAt:      now,
	}))

	v, err = s.Bills().GetBill(ctx, a.ID, bill.ID)
	require.NoError(t, err)
	require.Equal(t, domain.BillPaid, v.Status)
	require.NotNil(t, v.PaidDate)
	require.NotNil(t, v.ReceiptID)

	// Deleting the package detaches the bill instead of deleting it
	require.NoError(t, s.Packages().DeletePackage(ctx, a.ID, pkg.ID))
	v, err = s.Bills().GetBill(ctx, a.ID, bill.ID)
	require.NoError(t, err)
	require.False(t, v.HasPackage())
	require.Empty(t, v.PackageName)
}

func TestListBillsFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := seedAdmin(t, s, "a@gym.test")
	m := seedMember(t, s, a.ID, "m@gym.test")

	now := time.Now().UTC()
	mk := func(status domain.BillStatus, due time.Time) {
		require.NoError(t, s.Bills().CreateBill(ctx, domain.Bill{
			ID:        idx.New().String(),
			AdminID:   a.ID,
			MemberID:  m.ID,
			Amount:    decimal.NewFromInt(10),
			DueDate:   due,
			Status:    status,
			CreatedAt: now,
			UpdatedAt: now,
		}))
	}
	mk(domain.BillPending, now.Add(-48*time.Hour))
	mk(domain.BillPending, now.Add(48*time.Hour))
	mk(domain.BillPaid, now.Add(-48*time.Hour))

	overdue, err := s.Bills().ListBills(ctx, store.BillFilter{
		Statuses:  []domain.BillStatus{domain.BillPending},
		DueBefore: &now,
	})
	require.NoError(t, err)
	require.Len(t, overdue, 1)

	all, err := s.Bills().ListBills(ctx, store.BillFilter{AdminID: a.ID, OrderBy: store.BillsByDueAsc, Limit: 2})
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.False(t, all[0].DueDate.After(all[1].DueDate))
}

func TestAdjustStockGuardsAgainstOversell(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := seedAdmin(t, s, "a@gym.test")
	p := seedProduct(t, s, a.ID, 3)

	require.NoError(t, s.Products().AdjustStock(ctx, p.ID, -2, 2))
	require.ErrorIs(t, s.Products().AdjustStock(ctx, p.ID, -2, 2), store.ErrInsufficientStock)
	require.ErrorIs(t, s.Products().AdjustStock(ctx, "missing", -1, 1), store.ErrNotFound)

	got, err := s.Products().GetProduct(ctx, a.ID, p.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.Stock)
	require.Equal(t, 2, got.Sales)

	// Restocking never drives sales negative
	require.NoError(t, s.Products().AdjustStock(ctx, p.ID, 5, -5))
	got, err = s.Products().GetProduct(ctx, a.ID, p.ID)
	require.NoError(t, err)
	require.Equal(t, 6, got.Stock)
	require.Equal(t, 0, got.Sales)
}

func TestOrdersRoundTripWithItems(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := seedAdmin(t, s, "a@gym.test")
	m := seedMember(t, s, a.ID, "m@gym.test")
	p := seedProduct(t, s, a.ID, 10)

	now := time.Now().UTC()
	orderID := idx.New().String()
	o := domain.Order{
		ID:            orderID,
		AdminID:       a.ID,
		MemberID:      &m.ID,
		MemberName:    m.Name,
		TotalAmount:   decimal.RequireFromString("99.80"),
		Status:        domain.OrderPending,
		PaymentStatus: domain.PaymentPending,
		Items: []domain.OrderItem{{
			ID:          idx.New().String(),
			OrderID:     orderID,
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    2,
			Price:       p.Price,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.WithTx(ctx, func(tx store.Tx) error {
		return tx.Orders().CreateOrder(ctx, o)
	})
	require.NoError(t, err)

	got, err := s.Orders().GetOrder(ctx, a.ID, orderID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.True(t, got.TotalAmount.Equal(o.TotalAmount))
	require.True(t, got.Items[0].LineTotal().Equal(o.TotalAmount))

	mine, err := s.Orders().ListOrders(ctx, store.OrderFilter{MemberID: m.ID})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Len(t, mine[0].Items, 1)

	// Deleting the product keeps the snapshot
	require.NoError(t, s.Products().DeleteProduct(ctx, a.ID, p.ID))
	got, err = s.Orders().GetOrder(ctx, a.ID, orderID)
	require.NoError(t, err)
	require.Empty(t, got.Items[0].ProductID)
	require.Equal(t, "Whey", got.Items[0].ProductName)

	require.NoError(t, s.Orders().DeleteOrder(ctx, a.ID, orderID))
	_, err = s.Orders().GetOrder(ctx, a.ID, orderID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := seedAdmin(t, s, "a@gym.test")
	p := seedProduct(t, s, a.ID, 1)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Products().AdjustStock(ctx, p.ID, -1, 1))
		return tx.Products().AdjustStock(ctx, p.ID, -1, 1)
	})
	require.ErrorIs(t, err, store.ErrInsufficientStock)

	got, err := s.Products().GetProduct(ctx, a.ID, p.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.Stock)
	require.Equal(t, 0, got.Sales)
}

func TestConsumeLoginTokenIsSingleUse(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	tok := domain.LoginToken{
		ID:        idx.New().String(),
		TokenHash: "hash-1",
		Portal:    domain.PortalMember,
		SubjectID: "subject",
		Email:     "m@gym.test",
		ExpiresAt: now.Add(time.Hour),
		CreatedAt: now,
	}
	require.NoError(t, s.LoginTokens().CreateLoginToken(ctx, tok))

	// Wrong portal does not consume
	_, err := s.LoginTokens().ConsumeLoginToken(ctx, "hash-1", domain.PortalAdmin, now)
	require.ErrorIs(t, err, store.ErrNotFound)

	got, err := s.LoginTokens().ConsumeLoginToken(ctx, "hash-1", domain.PortalMember, now)
	require.NoError(t, err)
	require.Equal(t, "subject", got.SubjectID)
	require.NotNil(t, got.UsedAt)

	_, err = s.LoginTokens().ConsumeLoginToken(ctx, "hash-1", domain.PortalMember, now)
	require.ErrorIs(t, err, store.ErrNotFound)

	// Expired tokens are rejected and later swept
	expired := tok
	expired.ID = idx.New().String()
	expired.TokenHash = "hash-2"
	expired.ExpiresAt = now.Add(-time.Minute)
	require.NoError(t, s.LoginTokens().CreateLoginToken(ctx, expired))

	_, err = s.LoginTokens().ConsumeLoginToken(ctx, "hash-2", domain.PortalMember, now)
	require.ErrorIs(t, err, store.ErrNotFound)

	n, err := s.LoginTokens().DeleteStaleLoginTokens(ctx, now.Add(time.Second))
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
}

func TestBackupCodesConsumeOnce(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := seedAdmin(t, s, "a@gym.test")
	require.NoError(t, s.BackupCodes().CreateBackupCode(ctx, a.ID, "fp-1"))

	ok, err := s.BackupCodes().ConsumeBackupCode(ctx, a.ID, "fp-1")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.BackupCodes().ConsumeBackupCode(ctx, a.ID, "fp-1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestNotificationsScopedToMember(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := seedAdmin(t, s, "a@gym.test")
	m1 := seedMember(t, s, a.ID, "one@gym.test")
	m2 := seedMember(t, s, a.ID, "two@gym.test")

	n := domain.Notification{
		ID:        idx.New().String(),
		AdminID:   a.ID,
		MemberID:  m1.ID,
		Title:     "Hello",
		Message:   "Welcome",
		Type:      domain.NotificationAnnouncement,
		CreatedAt: time.Now(),
	}
	require.NoError(t, s.Notifications().CreateNotification(ctx, n))

	require.ErrorIs(t, s.Notifications().MarkRead(ctx, m2.ID, n.ID), store.ErrNotFound)
	count, err := s.Notifications().MarkAllRead(ctx, m1.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	// Already read notifications still match
	require.NoError(t, s.Notifications().MarkRead(ctx, m1.ID, n.ID))

	list, err := s.Notifications().ListByMember(ctx, m1.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.True(t, list[0].Read)

	require.ErrorIs(t, s.Notifications().DeleteNotification(ctx, m2.ID, n.ID), store.ErrNotFound)
	require.NoError(t, s.Notifications().DeleteNotification(ctx, m1.ID, n.ID))
}
