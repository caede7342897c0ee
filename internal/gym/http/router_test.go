package http_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	gymhttp "github.com/aussiebroadwan/gymdesk/internal/gym/http"
	"github.com/aussiebroadwan/gymdesk/internal/gym/mail"
	"github.com/aussiebroadwan/gymdesk/internal/gym/service"
	"github.com/aussiebroadwan/gymdesk/internal/gym/store/drivers/sqlite"
	"github.com/aussiebroadwan/gymdesk/pkg/cryptox"
	"github.com/aussiebroadwan/gymdesk/pkg/gymsdk"
	"github.com/aussiebroadwan/gymdesk/pkg/jwtx"
)

const bootstrapToken = "test-bootstrap"

type api struct {
	client *gymsdk.Client
	mail   *mail.Recorder
}

func newAPI(t *testing.T) *api {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	keys, err := jwtx.NewKeyRing(pemKey, "https://gym.test", []string{"gymdesk"})
	require.NoError(t, err)

	rec := &mail.Recorder{}
	logger := slog.New(slog.DiscardHandler)
	mfa := &service.MFAService{Store: st, Issuer: "Gymdesk"}
	billing := &service.BillingService{Store: st}

	r := gymhttp.NewRouter(keys, "test", st, logger)
	r.LoginService = &service.LoginService{
		Store:   st,
		Mailer:  rec,
		Keys:    keys,
		MFA:     mfa,
		BaseURL: "https://gym.test",
	}
	r.MFAService = mfa
	r.AdminService = &service.AdminService{Store: st, BootstrapToken: bootstrapToken}
	r.MemberService = &service.MemberService{Store: st}
	r.PackageService = &service.PackageService{Store: st}
	r.BillingService = billing
	r.NotificationService = &service.NotificationService{Store: st, Mailer: rec}
	r.ReportService = &service.ReportService{Store: st}
	r.ShopService = &service.ShopService{Store: st}
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &api{client: gymsdk.NewClient(srv.URL), mail: rec}
}

// signIn requests a link for addr and exchanges the mailed token.
func (a *api) signIn(t *testing.T, portal, addr, otp string) *gymsdk.Session {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, a.client.RequestLink(ctx, addr, portal))
	s, err := a.client.Exchange(ctx, a.lastToken(t, addr), portal, otp)
	require.NoError(t, err)
	return s
}

func (a *api) lastToken(t *testing.T, addr string) string {
	t.Helper()
	msg, ok := a.mail.Last(addr)
	require.True(t, ok, "no mail sent to %s", addr)

	fields := strings.Fields(msg.Text)
	u, err := url.Parse(fields[len(fields)-1])
	require.NoError(t, err)
	return u.Query().Get("token")
}

func (a *api) owner(t *testing.T) *gymsdk.Session {
	t.Helper()
	_, err := a.client.RegisterAdmin(context.Background(), bootstrapToken, gymsdk.CreateAdminRequest{
		Email:   "owner@gym.test",
		Name:    "Owner",
		GymName: "Iron Temple",
	})
	require.NoError(t, err)
	return a.signIn(t, gymsdk.PortalAdmin, "owner@gym.test", "")
}

func TestHealthAndKeys(t *testing.T) {
	t.Parallel()
	a := newAPI(t)
	ctx := context.Background()

	live, err := a.client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := a.client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.Signer)

	jwks, err := a.client.GetJWKS(ctx)
	require.NoError(t, err)
	require.Len(t, jwks.Keys, 1)
}

func TestBootstrap(t *testing.T) {
	t.Parallel()
	a := newAPI(t)
	ctx := context.Background()
	req := gymsdk.CreateAdminRequest{Email: "owner@gym.test", Name: "Owner"}

	_, err := a.client.RegisterAdmin(ctx, "wrong", req)
	require.Equal(t, http.StatusUnauthorized, gymsdk.StatusCode(err))

	admin, err := a.client.RegisterAdmin(ctx, bootstrapToken, req)
	require.NoError(t, err)
	require.Equal(t, "owner@gym.test", admin.Email)
	require.False(t, admin.MFAEnabled)

	_, err = a.client.RegisterAdmin(ctx, bootstrapToken, req)
	require.True(t, gymsdk.IsCode(err, gymsdk.ErrorCodeConflict))
}

func TestSignIn(t *testing.T) {
	t.Parallel()
	a := newAPI(t)
	ctx := context.Background()
	owner := a.owner(t)

	t.Run("session identity", func(t *testing.T) {
		me, err := owner.Whoami(ctx)
		require.NoError(t, err)
		require.Equal(t, gymsdk.PortalAdmin, me.Type)
		require.Equal(t, me.ID, me.TenantID)
		require.True(t, owner.IsAdmin())
	})

	t.Run("unknown address is accepted quietly", func(t *testing.T) {
		require.NoError(t, a.client.RequestLink(ctx, "nobody@gym.test", gymsdk.PortalMember))
		_, ok := a.mail.Last("nobody@gym.test")
		require.False(t, ok)
	})

	t.Run("links are single use", func(t *testing.T) {
		token := a.lastToken(t, "owner@gym.test")
		_, err := a.client.Exchange(ctx, token, gymsdk.PortalAdmin, "")
		require.True(t, gymsdk.IsCode(err, gymsdk.ErrorCodeInvalidGrant))
	})

	t.Run("bad portal type", func(t *testing.T) {
		err := a.client.RequestLink(ctx, "owner@gym.test", "STAFF")
		require.True(t, gymsdk.IsCode(err, gymsdk.ErrorCodeInvalidRequest))
	})
}

func TestMFASignIn(t *testing.T) {
	t.Parallel()
	a := newAPI(t)
	ctx := context.Background()
	owner := a.owner(t)

	enroll, err := owner.EnrollTOTP(ctx)
	require.NoError(t, err)
	code, err := totp.GenerateCode(enroll.Secret, time.Now())
	require.NoError(t, err)
	backup, err := owner.VerifyTOTP(ctx, code)
	require.NoError(t, err)
	require.Len(t, backup.BackupCodes, 10)

	require.NoError(t, a.client.RequestLink(ctx, "owner@gym.test", gymsdk.PortalAdmin))
	token := a.lastToken(t, "owner@gym.test")

	_, err = a.client.Exchange(ctx, token, gymsdk.PortalAdmin, "")
	require.Equal(t, http.StatusUnauthorized, gymsdk.StatusCode(err))
	require.True(t, gymsdk.IsCode(err, gymsdk.ErrorCodeMFARequired))

	s, err := a.client.Exchange(ctx, token, gymsdk.PortalAdmin, backup.BackupCodes[0])
	require.NoError(t, err)
	profile, err := s.GetAdminProfile(ctx)
	require.NoError(t, err)
	require.True(t, profile.MFAEnabled)
}

func TestScopes(t *testing.T) {
	t.Parallel()
	a := newAPI(t)
	ctx := context.Background()
	owner := a.owner(t)

	_, err := owner.CreateMember(ctx, gymsdk.CreateMemberRequest{Name: "Sam", Email: "sam@gym.test"})
	require.NoError(t, err)
	member := a.signIn(t, gymsdk.PortalMember, "sam@gym.test", "")

	_, err = member.ListMembers(ctx)
	require.Equal(t, http.StatusForbidden, gymsdk.StatusCode(err))

	_, err = owner.MyBills(ctx)
	require.Equal(t, http.StatusForbidden, gymsdk.StatusCode(err))

	_, err = a.client.SessionFromToken("not-a-jwt").ListMembers(ctx)
	require.True(t, gymsdk.IsCode(err, gymsdk.ErrorCodeInvalidToken))
}

func TestMemberSessionFollowsAccountStatus(t *testing.T) {
	t.Parallel()
	a := newAPI(t)
	ctx := context.Background()
	owner := a.owner(t)

	m, err := owner.CreateMember(ctx, gymsdk.CreateMemberRequest{Name: "Sam", Email: "sam@gym.test"})
	require.NoError(t, err)
	member := a.signIn(t, gymsdk.PortalMember, "sam@gym.test", "")

	_, err = member.MyBills(ctx)
	require.NoError(t, err)

	_, err = owner.UpdateMember(ctx, m.ID, gymsdk.UpdateMemberRequest{Status: ptr("suspended")})
	require.NoError(t, err)

	_, err = member.MyBills(ctx)
	require.Equal(t, http.StatusForbidden, gymsdk.StatusCode(err))
	require.True(t, gymsdk.IsCode(err, gymsdk.ErrorCodeAccessDenied))
	_, err = member.PlaceOrder(ctx, gymsdk.OrderItemRequest{ProductID: "x", Quantity: 1})
	require.True(t, gymsdk.IsCode(err, gymsdk.ErrorCodeAccessDenied))

	_, err = owner.UpdateMember(ctx, m.ID, gymsdk.UpdateMemberRequest{Status: ptr("active")})
	require.NoError(t, err)
	_, err = member.MyBills(ctx)
	require.NoError(t, err)

	require.NoError(t, owner.DeleteMember(ctx, m.ID))
	_, err = member.MyBills(ctx)
	require.Equal(t, http.StatusUnauthorized, gymsdk.StatusCode(err))
	require.True(t, gymsdk.IsCode(err, gymsdk.ErrorCodeInvalidToken))
}

func TestBillingFlow(t *testing.T) {
	t.Parallel()
	a := newAPI(t)
	ctx := context.Background()
	owner := a.owner(t)

	m, err := owner.CreateMember(ctx, gymsdk.CreateMemberRequest{Name: "Sam", Email: "sam@gym.test"})
	require.NoError(t, err)
	p, err := owner.CreatePackage(ctx, gymsdk.CreatePackageRequest{
		Name:         "Monthly",
		Price:        decimal.RequireFromString("1500"),
		BillingCycle: "Monthly",
		Features:     []string{"Gym floor", "Lockers"},
	})
	require.NoError(t, err)
	require.Equal(t, "monthly", p.BillingCycle)

	b, err := owner.CreateBill(ctx, gymsdk.CreateBillRequest{
		MemberID:  m.ID,
		PackageID: &p.ID,
		Amount:    p.Price,
		DueDate:   time.Now().Add(7 * 24 * time.Hour),
	})
	require.NoError(t, err)
	require.Equal(t, "pending", b.Status)
	require.False(t, b.Receipt)

	_, err = owner.GetBillReceipt(ctx, b.ID)
	require.True(t, gymsdk.IsCode(err, gymsdk.ErrorCodeNotFound))

	paid, err := owner.UpdateBillStatus(ctx, b.ID, gymsdk.UpdateBillStatusRequest{Status: "paid", PaymentMethod: "upi"})
	require.NoError(t, err)
	require.Equal(t, "paid", paid.Status)
	require.True(t, paid.Receipt)
	require.NotNil(t, paid.PaidDate)

	rc, err := owner.GetBillReceipt(ctx, b.ID)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(rc.ReceiptNo, "RCT-"))
	require.Equal(t, "Iron Temple", rc.Gym.Name)
	require.Equal(t, "upi", rc.PaymentMethod)

	bills, err := owner.ListBills(ctx, 5)
	require.NoError(t, err)
	require.Len(t, bills, 1)
	require.Equal(t, "Sam", bills[0].MemberName)
	require.Equal(t, "Monthly", bills[0].PackageName)

	member := a.signIn(t, gymsdk.PortalMember, "sam@gym.test", "")

	receipts, err := member.MyReceipts(ctx)
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	got, err := member.GetReceipt(ctx, receipts[0].ID)
	require.NoError(t, err)
	require.Equal(t, rc.ReceiptNo, got.ReceiptNo)

	notes, err := member.MyNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, "Payment Received", notes[0].DisplayTitle)
	require.NoError(t, member.MarkNotificationRead(ctx, notes[0].ID))

	dash, err := member.MemberDashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, "Iron Temple", dash.GymName)
	require.NotNil(t, dash.CurrentPackage)
	require.True(t, dash.OutstandingBalance.IsZero())

	summary, err := owner.PaymentSummary(ctx)
	require.NoError(t, err)
	require.True(t, summary.Collected.Equal(decimal.RequireFromString("1500")))
	require.InDelta(t, 100.0, summary.CollectionRate, 0.001)
}

func TestNotifications(t *testing.T) {
	t.Parallel()
	a := newAPI(t)
	ctx := context.Background()
	owner := a.owner(t)

	_, err := owner.SendNotification(ctx, gymsdk.SendNotificationRequest{
		Title:      "Closed Monday",
		Message:    "The gym is **closed** on Monday.",
		Recipients: gymsdk.RecipientsAll,
	})
	require.Equal(t, http.StatusNotFound, gymsdk.StatusCode(err))

	_, err = owner.CreateMember(ctx, gymsdk.CreateMemberRequest{Name: "Sam", Email: "sam@gym.test"})
	require.NoError(t, err)
	_, err = owner.CreateMember(ctx, gymsdk.CreateMemberRequest{Name: "Kim", Email: "kim@gym.test", Status: "inactive"})
	require.NoError(t, err)

	res, err := owner.SendNotification(ctx, gymsdk.SendNotificationRequest{
		Title:      "Closed Monday",
		Message:    "The gym is **closed** on Monday.",
		Recipients: "Active Members Only",
	})
	require.NoError(t, err)
	require.Equal(t, 1, res.Recipients)
	require.Equal(t, 1, res.EmailsSent)

	msg, ok := a.mail.Last("sam@gym.test")
	require.True(t, ok)
	require.Contains(t, msg.HTML, "<strong>closed</strong>")

	sent, err := owner.ListSentNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	require.Equal(t, "Announcement", sent[0].DisplayTitle)
}

func TestStoreFlow(t *testing.T) {
	t.Parallel()
	a := newAPI(t)
	ctx := context.Background()
	owner := a.owner(t)

	_, err := owner.CreateMember(ctx, gymsdk.CreateMemberRequest{Name: "Sam", Email: "sam@gym.test"})
	require.NoError(t, err)
	whey, err := owner.CreateProduct(ctx, gymsdk.CreateProductRequest{
		Name:  "Whey",
		Price: decimal.RequireFromString("2500"),
		Stock: 3,
	})
	require.NoError(t, err)

	member := a.signIn(t, gymsdk.PortalMember, "sam@gym.test", "")

	catalogue, err := member.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, catalogue, 1)
	require.Equal(t, "General", catalogue[0].Category)
	require.True(t, catalogue[0].InStock)

	_, err = member.PlaceOrder(ctx, gymsdk.OrderItemRequest{ProductID: whey.ID, Quantity: 4})
	require.True(t, gymsdk.IsCode(err, gymsdk.ErrorCodeInsufficientStock))
	require.Contains(t, err.Error(), "Insufficient stock for Whey. Available: 3")

	_, err = member.PlaceOrder(ctx, gymsdk.OrderItemRequest{ProductID: "missing", Quantity: 1})
	require.Equal(t, http.StatusBadRequest, gymsdk.StatusCode(err))
	require.Contains(t, err.Error(), "Some products not found")

	o, err := member.PlaceOrder(ctx,
		gymsdk.OrderItemRequest{ProductID: whey.ID, Quantity: 1},
		gymsdk.OrderItemRequest{ProductID: whey.ID, Quantity: 1},
	)
	require.NoError(t, err)
	require.Len(t, o.Items, 1)
	require.Equal(t, 2, o.Items[0].Quantity)
	require.True(t, o.TotalAmount.Equal(decimal.RequireFromString("5000")))
	require.Equal(t, "Sam", o.MemberName)

	mine, err := member.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	status := "paid"
	_, err = owner.UpdateOrderStatus(ctx, o.ID, gymsdk.UpdateOrderStatusRequest{PaymentStatus: &status})
	require.NoError(t, err)

	stats, err := owner.StoreAnalytics(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, stats.TotalSales)
	require.True(t, stats.TotalRevenue.Equal(decimal.RequireFromString("5000")))

	require.NoError(t, owner.DeleteOrder(ctx, o.ID))
	products, err := owner.ListProducts(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, products[0].Stock)
	require.Equal(t, 0, products[0].Sales)
}

func TestReports(t *testing.T) {
	t.Parallel()
	a := newAPI(t)
	ctx := context.Background()
	owner := a.owner(t)

	var overview map[string]any
	require.NoError(t, owner.Report(ctx, "overview", &overview))
	require.Contains(t, overview, "collectionRate")

	err := owner.Report(ctx, "nope", &overview)
	require.Contains(t, err.Error(), "Invalid report type")

	err = owner.CustomReport(ctx, gymsdk.CustomReportRequest{ReportType: "weather"}, &overview)
	require.True(t, gymsdk.IsCode(err, gymsdk.ErrorCodeInvalidRequest))

	data, name, err := owner.ExportReport(ctx, gymsdk.ExportReportRequest{
		CustomReportRequest: gymsdk.CustomReportRequest{ReportType: "financial", DateRange: "last30days"},
		Format:              "csv",
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(name, "report_"))
	require.True(t, strings.HasSuffix(name, ".csv"))
	require.Contains(t, string(data), "FINANCIAL SUMMARY")

	_, _, err = owner.ExportReport(ctx, gymsdk.ExportReportRequest{
		CustomReportRequest: gymsdk.CustomReportRequest{ReportType: "financial"},
		Format:              "pdf",
	})
	require.True(t, gymsdk.IsCode(err, gymsdk.ErrorCodeInvalidRequest))

	dash, err := owner.AdminDashboard(ctx)
	require.NoError(t, err)
	require.Len(t, dash.Chart, 6)
}

func ptr[T any](v T) *T { return &v }
