package report

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 9, 0, 0, 0, time.UTC) }

func ptr[T any](v T) *T { return &v }

// fixture is a tenant on 15 June 2025 with three members and six bills
// spread across two years.
func fixture() Dataset {
	members := []domain.Member{
		{ID: "m1", Name: "Ana", Email: "ana@example.com", Status: domain.MemberActive, JoinDate: day(2025, 6, 3)},
		{ID: "m2", Name: "Ben", Email: "ben@example.com", Status: domain.MemberInactive, JoinDate: day(2025, 5, 10)},
		{ID: "m3", Name: "Cy", Email: "cy@example.com", Status: domain.MemberSuspended, JoinDate: day(2024, 11, 1)},
	}
	pkgs := []domain.Package{
		{ID: "pA", Name: "Gold", Price: dec("50"), BillingCycle: "monthly", IsActive: true, Features: []string{"pool"}},
		{ID: "pB", Name: "Silver", Price: dec("30"), BillingCycle: "monthly", IsActive: true},
		{ID: "pC", Name: "Old", Price: dec("10"), BillingCycle: "yearly", IsActive: false},
	}
	byMember := map[string]domain.Member{}
	for _, m := range members {
		byMember[m.ID] = m
	}
	byPkg := map[string]domain.Package{}
	for _, p := range pkgs {
		byPkg[p.ID] = p
	}

	bill := func(id, member, pkg, amount string, status domain.BillStatus, created, due time.Time, paid *time.Time) domain.BillView {
		m := byMember[member]
		v := domain.BillView{
			Bill: domain.Bill{
				ID: id, MemberID: member, Amount: dec(amount), Status: status,
				CreatedAt: created, DueDate: due, PaidDate: paid,
			},
			MemberName: m.Name, MemberEmail: m.Email, MemberStatus: m.Status, MemberJoinDate: m.JoinDate,
		}
		if pkg != "" {
			p := byPkg[pkg]
			v.PackageID = ptr(pkg)
			v.PackageName = p.Name
			v.PackagePrice = p.Price
			v.PackageBillingCycle = p.BillingCycle
		}
		return v
	}

	return Dataset{
		Members:  members,
		Packages: pkgs,
		Bills: []domain.BillView{
			bill("b1", "m1", "pA", "50", domain.BillPaid, day(2025, 6, 5), day(2025, 6, 10), ptr(day(2025, 6, 6))),
			bill("b2", "m2", "pA", "50", domain.BillPending, day(2025, 5, 20), day(2025, 6, 20), nil),
			bill("b3", "m2", "pB", "30", domain.BillPending, day(2025, 4, 1), day(2025, 5, 1), nil),
			bill("b4", "m3", "", "20", domain.BillOverdue, day(2025, 3, 1), day(2025, 3, 15), nil),
			bill("b5", "m1", "pA", "50", domain.BillPaid, day(2025, 5, 1), day(2025, 5, 10), ptr(day(2025, 5, 2))),
			bill("b6", "m3", "pC", "10", domain.BillPaid, day(2024, 12, 1), day(2024, 12, 10), ptr(day(2024, 12, 2))),
		},
		Now: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestBuildOverview(t *testing.T) {
	t.Parallel()

	got := BuildOverview(fixture())
	want := Overview{
		TotalRevenue:   dec("200"),
		CollectionRate: 50,
		TotalMembers:   3,
		ActiveMembers:  1,
		NewJoiners:     1,
	}
	if diff := cmp.Diff(want, got, decimalEqual); diff != "" {
		t.Errorf("overview mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildOverviewGrowth(t *testing.T) {
	t.Parallel()

	d := fixture()
	// Two joiners in June against one in May, and double the June takings.
	d.Members = append(d.Members, domain.Member{ID: "m4", Status: domain.MemberActive, JoinDate: day(2025, 6, 14)})
	d.Bills[0].Amount = dec("100")

	got := BuildOverview(d)
	require.Equal(t, 100.0, got.MemberGrowth)
	require.Equal(t, 100.0, got.RevenueGrowth)
}

func TestBuildPaymentSummary(t *testing.T) {
	t.Parallel()

	got := BuildPaymentSummary(fixture())
	want := PaymentSummary{
		Collected:      dec("110"),
		Pending:        dec("50"),
		Overdue:        dec("50"),
		Total:          dec("210"),
		CollectedCount: 3,
		PendingCount:   1,
		OverdueCount:   2,
		CollectionRate: 52.4,
	}
	if diff := cmp.Diff(want, got, decimalEqual); diff != "" {
		t.Errorf("payment summary mismatch (-want +got):\n%s", diff)
	}
}

func TestMonthlyRevenueTrend(t *testing.T) {
	t.Parallel()

	got := MonthlyRevenueTrend(fixture())
	want := []TrendPoint{
		{Month: "Jan", Year: 2025},
		{Month: "Feb", Year: 2025},
		{Month: "Mar", Year: 2025, Revenue: dec("20"), Pending: dec("20")},
		{Month: "Apr", Year: 2025, Revenue: dec("30"), Pending: dec("30")},
		{Month: "May", Year: 2025, Revenue: dec("100"), Paid: dec("50"), Pending: dec("50")},
		{Month: "Jun", Year: 2025, Revenue: dec("50"), Paid: dec("50")},
	}
	if diff := cmp.Diff(want, got, decimalEqual); diff != "" {
		t.Errorf("trend mismatch (-want +got):\n%s", diff)
	}
}

func TestMonthlyRevenueTrendCrossesYear(t *testing.T) {
	t.Parallel()

	d := fixture()
	d.Now = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	got := MonthlyRevenueTrend(d)
	require.Len(t, got, 6)
	require.Equal(t, "Sep", got[0].Month)
	require.Equal(t, 2024, got[0].Year)
	require.Equal(t, "Dec", got[3].Month)
	require.True(t, got[3].Paid.Equal(dec("10")))
}

func TestBuildRevenueByPackage(t *testing.T) {
	t.Parallel()

	got := BuildRevenueByPackage(fixture())
	want := RevenueByPackage{
		Packages: []PackageRevenue{
			{PackageID: "pA", PackageName: "Gold", TotalBills: 3, PaidBills: 2, PendingBills: 1,
				TotalRevenue: dec("150"), CollectedRevenue: dec("100"), PendingRevenue: dec("50"), CollectionRate: 66.7},
			{PackageID: "pC", PackageName: "Old", TotalBills: 1, PaidBills: 1,
				TotalRevenue: dec("10"), CollectedRevenue: dec("10"), CollectionRate: 100},
			{PackageID: "pB", PackageName: "Silver", TotalBills: 1, PendingBills: 1,
				TotalRevenue: dec("30"), PendingRevenue: dec("30")},
			{PackageID: UnassignedPackageID, PackageName: UnassignedPackageName, TotalBills: 1, PendingBills: 1,
				TotalRevenue: dec("20"), PendingRevenue: dec("20")},
		},
		Totals: RevenueTotals{
			TotalBills: 6, PaidBills: 3, PendingBills: 3,
			TotalRevenue: dec("210"), CollectedRevenue: dec("110"), PendingRevenue: dec("100"),
			OverallCollectionRate: 50,
		},
	}
	if diff := cmp.Diff(want, got, decimalEqual); diff != "" {
		t.Errorf("revenue by package mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildMembershipDistribution(t *testing.T) {
	t.Parallel()

	got := BuildMembershipDistribution(fixture())
	require.Len(t, got.Packages, 2, "inactive packages are left out")

	gold := got.Packages[0]
	require.Equal(t, "Gold", gold.PackageName)
	require.Equal(t, 2, gold.TotalMembers)
	require.Equal(t, 1, gold.ActiveMembers)
	require.Equal(t, 1, gold.InactiveMembers)
	require.Equal(t, []string{"m1", "m2"}, []string{gold.Members[0].ID, gold.Members[1].ID})
	require.Equal(t, "2025-06-03", gold.Members[0].JoinDate)

	want := MembershipSummary{
		TotalPackages:         2,
		TotalMembers:          3,
		TotalActiveMembers:    1,
		TotalInactiveMembers:  2,
		TotalPotentialRevenue: dec("130"),
	}
	if diff := cmp.Diff(want, got.Summary, decimalEqual); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildStatusDistribution(t *testing.T) {
	t.Parallel()

	got := BuildStatusDistribution(fixture())
	want := StatusDistribution{
		StatusDistribution: []StatusBucket{
			{Status: "Active", Count: 1, Percentage: 33.3},
			{Status: "Inactive", Count: 1, Percentage: 33.3},
			{Status: "Suspended", Count: 1, Percentage: 33.3},
		},
		PackageDistribution: []PackageBucket{
			{PackageName: "Gold", MemberCount: 2, Percentage: 66.7},
			{PackageName: NoPackage, MemberCount: 1, Percentage: 33.3},
		},
		Totals: StatusTotals{Total: 3, Active: 1, Inactive: 1, Suspended: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("status distribution mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildStatusDistributionDropsEmptyBuckets(t *testing.T) {
	t.Parallel()

	d := fixture()
	d.Members = d.Members[:1]
	got := BuildStatusDistribution(d)
	require.Equal(t, []StatusBucket{{Status: "Active", Count: 1, Percentage: 100}}, got.StatusDistribution)
}

func TestBuildMemberStatsByPackage(t *testing.T) {
	t.Parallel()

	got := BuildMemberStatsByPackage(fixture())
	want := MemberStatsByPackage{
		Packages: []PackageMemberStats{
			{PackageID: "pA", PackageName: "Gold", TotalMembers: 2, ActiveMembers: 1, InactiveMembers: 1,
				AvgMonthlyRevenue: dec("100"), NewMembersThisMonth: 1},
			{PackageID: "pB", PackageName: "Silver", TotalMembers: 1, InactiveMembers: 1,
				AvgMonthlyRevenue: dec("30")},
		},
		Summary: PackageStatsSummary{
			TotalPackages: 2, TotalMembers: 3, TotalActiveMembers: 1,
			TotalPotentialRevenue: dec("130"), NewMembersThisMonth: 1,
		},
	}
	if diff := cmp.Diff(want, got, decimalEqual); diff != "" {
		t.Errorf("member stats mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildMemberStatistics(t *testing.T) {
	t.Parallel()

	got := BuildMemberStatistics(fixture())
	want := MemberStatistics{
		TotalMembers:    3,
		ActiveMembers:   1,
		NewJoiners:      1,
		InactiveMembers: 1,
		MonthlyTrends: []MonthlyChange{
			{Month: "March", Change: "+0 members"},
			{Month: "April", Change: "+0 members"},
			{Month: "May", Joined: 1, Change: "+1 members"},
			{Month: "June", Joined: 1, Change: "+1 members"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("member statistics mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildAdminDashboard(t *testing.T) {
	t.Parallel()

	got := BuildAdminDashboard(fixture())
	require.Equal(t, 3, got.TotalMembers)
	require.True(t, got.MonthlyRevenue.Equal(dec("50")))
	require.Equal(t, 2, got.PendingBills)
	require.True(t, got.PendingAmount.Equal(dec("80")))
	require.Equal(t, 1, got.OverdueBills)

	wantChart := []ChartPoint{
		{Month: "Jan", Year: 2025},
		{Month: "Feb", Year: 2025},
		{Month: "Mar", Year: 2025},
		{Month: "Apr", Year: 2025},
		{Month: "May", Year: 2025, Revenue: dec("50"), Members: 1},
		{Month: "Jun", Year: 2025, Revenue: dec("50"), Members: 1},
	}
	if diff := cmp.Diff(wantChart, got.Chart, decimalEqual); diff != "" {
		t.Errorf("chart mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildAdminDashboardSameMonthLastYear(t *testing.T) {
	t.Parallel()

	d := fixture()
	// A June 2024 payment must not count as June 2025 revenue.
	d.Bills = append(d.Bills, domain.BillView{Bill: domain.Bill{
		ID: "old", MemberID: "m3", Amount: dec("999"), Status: domain.BillPaid,
		PaidDate: ptr(day(2024, 6, 10)), CreatedAt: day(2024, 6, 1), DueDate: day(2024, 6, 1),
	}})
	got := BuildAdminDashboard(d)
	require.True(t, got.MonthlyRevenue.Equal(dec("50")))
	require.True(t, got.Chart[5].Revenue.Equal(dec("50")))
}

func TestBuildMemberDashboard(t *testing.T) {
	t.Parallel()

	d := fixture()
	var bills []domain.BillView
	for _, b := range d.Bills {
		if b.MemberID == "m2" {
			bills = append(bills, b)
		}
	}

	got := BuildMemberDashboard(d.Members[1], bills, "Iron Temple")
	want := MemberDashboard{
		Name:               "Ben",
		Status:             "inactive",
		JoinDate:           day(2025, 5, 10),
		CurrentPackage:     &CurrentPackage{Name: "Gold", Price: dec("50"), BillingCycle: "monthly"},
		OutstandingBalance: dec("80"),
		NextBillDue:        &DueBill{BillID: "b3", DueDate: day(2025, 5, 1), Amount: dec("30")},
		RecentBills: []BillSummary{
			{ID: "b2", Amount: dec("50"), Status: "pending", PackageName: "Gold", DueDate: day(2025, 6, 20), CreatedAt: day(2025, 5, 20)},
			{ID: "b3", Amount: dec("30"), Status: "pending", PackageName: "Silver", DueDate: day(2025, 5, 1), CreatedAt: day(2025, 4, 1)},
		},
		GymName: "Iron Temple",
	}
	if diff := cmp.Diff(want, got, decimalEqual); diff != "" {
		t.Errorf("member dashboard mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildMemberDashboardNoBills(t *testing.T) {
	t.Parallel()

	got := BuildMemberDashboard(domain.Member{Name: "New", Status: domain.MemberActive}, nil, "")
	require.Nil(t, got.CurrentPackage)
	require.Nil(t, got.NextBillDue)
	require.Empty(t, got.RecentBills)
	require.True(t, got.OutstandingBalance.IsZero())
}

func TestBuildStoreAnalytics(t *testing.T) {
	t.Parallel()

	products := []domain.Product{
		{ID: "p1", Name: "Whey", Stock: 5},
		{ID: "p2", Name: "Bar", Stock: 0},
		{ID: "p3", Name: "Creatine", Stock: 2},
	}
	item := func(product, name string, qty int, price string) domain.OrderItem {
		return domain.OrderItem{ProductID: product, ProductName: name, Quantity: qty, Price: dec(price)}
	}
	orders := []domain.Order{
		{ID: "o1", PaymentStatus: domain.PaymentPaid, TotalAmount: dec("60"), CreatedAt: day(2025, 6, 2),
			Items: []domain.OrderItem{item("p1", "Whey", 2, "20"), item("p2", "Bar", 1, "20")}},
		{ID: "o2", PaymentStatus: domain.PaymentPending, TotalAmount: dec("20"), CreatedAt: day(2025, 6, 10),
			Items: []domain.OrderItem{item("p1", "Whey", 1, "20")}},
		{ID: "o3", PaymentStatus: domain.PaymentPaid, TotalAmount: dec("30"), CreatedAt: day(2025, 5, 5),
			Items: []domain.OrderItem{item("p3", "Creatine", 1, "30")}},
		{ID: "o4", PaymentStatus: domain.PaymentPaid, TotalAmount: dec("30"), CreatedAt: day(2025, 5, 20),
			Items: []domain.OrderItem{item("", "Discontinued", 3, "10")}},
	}

	got := BuildStoreAnalytics(products, orders, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), nil)
	want := StoreAnalytics{
		TotalRevenue:  dec("120"),
		TotalSales:    8,
		AvgOrderValue: dec("40"),
		RevenueGrowth: 0,
		TopProducts: []TopProduct{
			{ID: "p1", Name: "Whey", Sales: 3, Revenue: dec("60"), Stock: 5},
			{ID: "p2", Name: "Bar", Sales: 1, Revenue: dec("20"), Stock: 0},
			{ID: "p3", Name: "Creatine", Sales: 1, Revenue: dec("30"), Stock: 2},
		},
		ActiveProducts: 2,
		TotalOrders:    4,
	}
	if diff := cmp.Diff(want, got, decimalEqual); diff != "" {
		t.Errorf("store analytics mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildCustomFinancial(t *testing.T) {
	t.Parallel()

	got, err := BuildCustom(fixture(), Request{
		Type:  TypeFinancial,
		Range: RangeCustom,
		Start: ptr(day(2025, 5, 1)),
		End:   ptr(time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)),
	})
	require.NoError(t, err)
	require.Equal(t, "Financial Summary Report", got.Title)
	require.Nil(t, got.Member)

	r := got.Financial
	require.NotNil(t, r)
	require.Equal(t, 3, r.BillCount)
	require.True(t, r.TotalRevenue.Equal(dec("150")))
	require.True(t, r.TotalCollected.Equal(dec("100")))
	require.True(t, r.PendingAmount.Equal(dec("50")))
	require.True(t, r.OverdueAmount.IsZero())
	require.Equal(t, 66.7, r.CollectionRate)

	ids := make([]string, 0, len(r.Bills))
	for _, b := range r.Bills {
		ids = append(ids, b.ID)
	}
	require.Equal(t, []string{"b5", "b2", "b1"}, ids)
}

func TestBuildCustomMembership(t *testing.T) {
	t.Parallel()

	got, err := BuildCustom(fixture(), Request{Type: "Membership", Range: RangeThisYear})
	require.NoError(t, err)

	r := got.Membership
	require.NotNil(t, r)
	require.Equal(t, 3, r.TotalPackages)
	require.Equal(t, 3, r.TotalMembers)
	require.Equal(t, []MembershipMember{
		{Name: "Ana", Email: "ana@example.com", Status: "active"},
		{Name: "Ben", Email: "ben@example.com", Status: "inactive"},
	}, r.Packages[0].Members)
	require.Empty(t, r.Packages[2].Members, "2024 bills fall outside this year")
}

func TestBuildCustomMemberAndPayment(t *testing.T) {
	t.Parallel()

	mem, err := BuildCustom(fixture(), Request{Type: TypeMember, Range: RangeLast6Months})
	require.NoError(t, err)
	require.Equal(t, 2, mem.Member.TotalMembers)
	require.Equal(t, "m2", mem.Member.Members[0].ID)
	require.Equal(t, "Gold", mem.Member.Members[0].PackageName)
	require.Equal(t, 2, mem.Member.Members[0].BillsCount)

	pay, err := BuildCustom(fixture(), Request{Type: TypePayment, Range: RangeLast6Months})
	require.NoError(t, err)
	p := pay.Payment
	require.Equal(t, 5, p.TotalBills)
	require.Equal(t, p.TotalBills, p.PaidBills+p.PendingBills+p.OverdueBills)
	require.Equal(t, 40.0, p.CollectionRate)
}

func TestBuildCustomRejectsUnknownType(t *testing.T) {
	t.Parallel()

	_, err := BuildCustom(fixture(), Request{Type: "inventory"})
	require.ErrorIs(t, err, ErrInvalidReportType)
}

func TestResolvePeriod(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		rng      string
		start    *time.Time
		end      *time.Time
		wantFrom time.Time
		wantTo   time.Time
		wantErr  error
	}{
		{name: "last 30 days", rng: RangeLast30Days, wantFrom: now.AddDate(0, 0, -30), wantTo: now},
		{name: "last quarter", rng: RangeLastQuarter, wantFrom: now.AddDate(0, -3, 0), wantTo: now},
		{name: "last 6 months", rng: RangeLast6Months, wantFrom: now.AddDate(0, -6, 0), wantTo: now},
		{name: "this year", rng: RangeThisYear, wantFrom: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), wantTo: now},
		{name: "default is one month", rng: "", wantFrom: now.AddDate(0, -1, 0), wantTo: now},
		{name: "custom", rng: RangeCustom, start: ptr(day(2025, 1, 1)), end: ptr(day(2025, 2, 1)),
			wantFrom: day(2025, 1, 1), wantTo: day(2025, 2, 1)},
		{name: "custom missing end", rng: RangeCustom, start: ptr(day(2025, 1, 1)), wantFrom: day(2025, 1, 1), wantTo: now},
		{name: "custom inverted", rng: RangeCustom, start: ptr(day(2025, 3, 1)), end: ptr(day(2025, 2, 1)), wantErr: ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ResolvePeriod(tt.rng, tt.start, tt.end, now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.True(t, tt.wantFrom.Equal(got.From), "from: want %v got %v", tt.wantFrom, got.From)
			require.True(t, tt.wantTo.Equal(got.To), "to: want %v got %v", tt.wantTo, got.To)
		})
	}
}

func TestReportsOnEmptyTenant(t *testing.T) {
	t.Parallel()

	d := Dataset{Now: time.Now()}
	require.Zero(t, BuildPaymentSummary(d).CollectionRate)
	require.Empty(t, BuildRevenueByPackage(d).Packages)
	require.Empty(t, BuildStatusDistribution(d).StatusDistribution)
	require.Len(t, BuildAdminDashboard(d).Chart, 6)

	got := BuildOverview(d)
	if diff := cmp.Diff(Overview{}, got, decimalEqual, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("empty overview mismatch (-want +got):\n%s", diff)
	}
}
