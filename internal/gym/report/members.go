package report

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
)

// NoPackage labels members whose latest bill has no package.
const NoPackage = "No Package"

const dateLayout = "2006-01-02"

type PackageMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`
	JoinDate string `json:"joinDate"`
}

type PackageMembership struct {
	PackageID       string          `json:"packageId"`
	PackageName     string          `json:"packageName"`
	Price           decimal.Decimal `json:"price"`
	BillingCycle    string          `json:"billingCycle"`
	TotalMembers    int             `json:"totalMembers"`
	ActiveMembers   int             `json:"activeMembers"`
	InactiveMembers int             `json:"inactiveMembers"`
	Features        []string        `json:"features"`
	Members         []PackageMember `json:"members"`
}

type MembershipSummary struct {
	TotalPackages         int             `json:"totalPackages"`
	TotalMembers          int             `json:"totalMembers"`
	TotalActiveMembers    int             `json:"totalActiveMembers"`
	TotalInactiveMembers  int             `json:"totalInactiveMembers"`
	TotalPotentialRevenue decimal.Decimal `json:"totalPotentialRevenue"`
}

type MembershipDistribution struct {
	Packages []PackageMembership `json:"packages"`
	Summary  MembershipSummary   `json:"summary"`
}

// billedMembers returns, per package ID, the distinct members that were
// ever billed against it, in first-billed order.
func billedMembers(bills []domain.BillView) map[string][]domain.BillView {
	out := make(map[string][]domain.BillView)
	seen := make(map[[2]string]bool)
	for _, b := range bills {
		if !b.HasPackage() {
			continue
		}
		k := [2]string{*b.PackageID, b.MemberID}
		if seen[k] {
			continue
		}
		seen[k] = true
		out[*b.PackageID] = append(out[*b.PackageID], b)
	}
	return out
}

func activePackages(pkgs []domain.Package) []domain.Package {
	out := make([]domain.Package, 0, len(pkgs))
	for _, p := range pkgs {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}

// BuildMembershipDistribution lists active packages with the members billed
// against them. Inactive counts everything that is not active.
func BuildMembershipDistribution(d Dataset) MembershipDistribution {
	billed := billedMembers(d.Bills)
	pkgs := activePackages(d.Packages)

	out := MembershipDistribution{Packages: make([]PackageMembership, 0, len(pkgs))}
	for _, p := range pkgs {
		pm := PackageMembership{
			PackageID:    p.ID,
			PackageName:  p.Name,
			Price:        p.Price,
			BillingCycle: p.BillingCycle,
			Features:     p.Features,
			Members:      []PackageMember{},
		}
		for _, b := range billed[p.ID] {
			pm.Members = append(pm.Members, PackageMember{
				ID:       b.MemberID,
				Name:     b.MemberName,
				Email:    b.MemberEmail,
				Status:   string(b.MemberStatus),
				JoinDate: b.MemberJoinDate.In(d.loc()).Format(dateLayout),
			})
			if b.MemberStatus == domain.MemberActive {
				pm.ActiveMembers++
			}
		}
		pm.TotalMembers = len(pm.Members)
		pm.InactiveMembers = pm.TotalMembers - pm.ActiveMembers
		out.Packages = append(out.Packages, pm)

		s := &out.Summary
		s.TotalMembers += pm.TotalMembers
		s.TotalActiveMembers += pm.ActiveMembers
		s.TotalPotentialRevenue = s.TotalPotentialRevenue.Add(
			p.Price.Mul(decimal.NewFromInt(int64(pm.TotalMembers))),
		)
	}
	out.Summary.TotalPackages = len(out.Packages)
	out.Summary.TotalInactiveMembers = out.Summary.TotalMembers - out.Summary.TotalActiveMembers
	return out
}

type StatusBucket struct {
	Status     string  `json:"status"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type PackageBucket struct {
	PackageName string  `json:"packageName"`
	MemberCount int     `json:"memberCount"`
	Percentage  float64 `json:"percentage"`
}

type StatusTotals struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Inactive  int `json:"inactive"`
	Suspended int `json:"suspended"`
}

type StatusDistribution struct {
	StatusDistribution  []StatusBucket  `json:"statusDistribution"`
	PackageDistribution []PackageBucket `json:"packageDistribution"`
	Totals              StatusTotals    `json:"totals"`
}

// latestBills maps member ID to the member's most recently created bill.
func latestBills(bills []domain.BillView) map[string]domain.BillView {
	out := make(map[string]domain.BillView)
	for _, b := range bills {
		if cur, ok := out[b.MemberID]; !ok || b.CreatedAt.After(cur.CreatedAt) {
			out[b.MemberID] = b
		}
	}
	return out
}

// BuildStatusDistribution splits members by status (empty buckets dropped)
// and by the package of their latest bill.
func BuildStatusDistribution(d Dataset) StatusDistribution {
	totals := StatusTotals{
		Total:     len(d.Members),
		Active:    countWhere(d.Members, domain.MemberActive),
		Inactive:  countWhere(d.Members, domain.MemberInactive),
		Suspended: countWhere(d.Members, domain.MemberSuspended),
	}

	out := StatusDistribution{
		StatusDistribution:  []StatusBucket{},
		PackageDistribution: []PackageBucket{},
		Totals:              totals,
	}
	for _, s := range []struct {
		label string
		n     int
	}{
		{"Active", totals.Active},
		{"Inactive", totals.Inactive},
		{"Suspended", totals.Suspended},
	} {
		if s.n == 0 {
			continue
		}
		out.StatusDistribution = append(out.StatusDistribution, StatusBucket{
			Status:     s.label,
			Count:      s.n,
			Percentage: percentInt(s.n, totals.Total),
		})
	}

	latest := latestBills(d.Bills)
	counts := make(map[string]int)
	for _, m := range d.Members {
		name := NoPackage
		if b, ok := latest[m.ID]; ok {
			name = packageName(b, NoPackage)
		}
		counts[name]++
	}
	for name, n := range counts {
		out.PackageDistribution = append(out.PackageDistribution, PackageBucket{
			PackageName: name,
			MemberCount: n,
			Percentage:  percentInt(n, totals.Total),
		})
	}
	sort.Slice(out.PackageDistribution, func(i, j int) bool {
		a, b := out.PackageDistribution[i], out.PackageDistribution[j]
		if a.MemberCount != b.MemberCount {
			return a.MemberCount > b.MemberCount
		}
		return a.PackageName < b.PackageName
	})
	return out
}

type PackageMemberStats struct {
	PackageID           string          `json:"packageId"`
	PackageName         string          `json:"packageName"`
	TotalMembers        int             `json:"totalMembers"`
	ActiveMembers       int             `json:"activeMembers"`
	SuspendedMembers    int             `json:"suspendedMembers"`
	InactiveMembers     int             `json:"inactiveMembers"`
	AvgMonthlyRevenue   decimal.Decimal `json:"avgMonthlyRevenue"`
	NewMembersThisMonth int             `json:"newMembersThisMonth"`
}

type PackageStatsSummary struct {
	TotalPackages         int             `json:"totalPackages"`
	TotalMembers          int             `json:"totalMembers"`
	TotalActiveMembers    int             `json:"totalActiveMembers"`
	TotalPotentialRevenue decimal.Decimal `json:"totalPotentialRevenue"`
	NewMembersThisMonth   int             `json:"newMembersThisMonth"`
}

type MemberStatsByPackage struct {
	Packages []PackageMemberStats `json:"packages"`
	Summary  PackageStatsSummary  `json:"summary"`
}

func BuildMemberStatsByPackage(d Dataset) MemberStatsByPackage {
	billed := billedMembers(d.Bills)
	thisMonth := monthStart(d.now(), 0)
	pkgs := activePackages(d.Packages)

	out := MemberStatsByPackage{Packages: make([]PackageMemberStats, 0, len(pkgs))}
	for _, p := range pkgs {
		st := PackageMemberStats{PackageID: p.ID, PackageName: p.Name}
		for _, b := range billed[p.ID] {
			st.TotalMembers++
			switch b.MemberStatus {
			case domain.MemberActive:
				st.ActiveMembers++
			case domain.MemberSuspended:
				st.SuspendedMembers++
			}
			if !b.MemberJoinDate.Before(thisMonth) {
				st.NewMembersThisMonth++
			}
		}
		st.InactiveMembers = st.TotalMembers - st.ActiveMembers - st.SuspendedMembers
		st.AvgMonthlyRevenue = p.Price.Mul(decimal.NewFromInt(int64(st.TotalMembers)))
		out.Packages = append(out.Packages, st)

		s := &out.Summary
		s.TotalMembers += st.TotalMembers
		s.TotalActiveMembers += st.ActiveMembers
		s.TotalPotentialRevenue = s.TotalPotentialRevenue.Add(st.AvgMonthlyRevenue)
		s.NewMembersThisMonth += st.NewMembersThisMonth
	}
	out.Summary.TotalPackages = len(out.Packages)
	return out
}

type MonthlyChange struct {
	Month  string `json:"month"`
	Joined int    `json:"joined"`
	Change string `json:"change"`
}

type MemberStatistics struct {
	TotalMembers    int             `json:"totalMembers"`
	ActiveMembers   int             `json:"activeThisMonth"`
	NewJoiners      int             `json:"newJoiners"`
	InactiveMembers int             `json:"inactiveMembers"`
	MonthlyTrends   []MonthlyChange `json:"monthlyTrends"`
}

const memberTrendMonths = 4

func BuildMemberStatistics(d Dataset) MemberStatistics {
	now := d.now()
	out := MemberStatistics{
		TotalMembers:    len(d.Members),
		ActiveMembers:   countWhere(d.Members, domain.MemberActive),
		InactiveMembers: countWhere(d.Members, domain.MemberInactive),
		NewJoiners:      joinedBetween(d.Members, monthStart(now, 0), monthStart(now, 1)),
		MonthlyTrends:   make([]MonthlyChange, 0, memberTrendMonths),
	}
	for i := memberTrendMonths - 1; i >= 0; i-- {
		from := monthStart(now, -i)
		n := joinedBetween(d.Members, from, monthStart(now, -i+1))
		out.MonthlyTrends = append(out.MonthlyTrends, MonthlyChange{
			Month:  from.Format("January"),
			Joined: n,
			Change: fmt.Sprintf("+%d members", n),
		})
	}
	return out
}
