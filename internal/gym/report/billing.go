package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
)

type Overview struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	CollectionRate float64         `json:"collectionRate"`
	TotalMembers   int             `json:"totalMembers"`
	ActiveMembers  int             `json:"activeMembers"`
	NewJoiners     int             `json:"newJoiners"`
	RevenueGrowth  float64         `json:"revenueGrowth"`
	MemberGrowth   float64         `json:"memberGrowth"`
}

// BuildOverview covers year-to-date bills by creation date.
func BuildOverview(d Dataset) Overview {
	now := d.now()
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	thisMonth := monthStart(now, 0)
	lastMonth := monthStart(now, -1)
	nextMonth := monthStart(now, 1)

	var total, collected, collectedThis, collectedLast decimal.Decimal
	for _, b := range d.Bills {
		if !b.CreatedAt.Before(yearStart) {
			total = total.Add(b.Amount)
			if b.Status == domain.BillPaid {
				collected = collected.Add(b.Amount)
			}
		}
		if b.Status != domain.BillPaid || b.PaidDate == nil {
			continue
		}
		switch paid := *b.PaidDate; {
		case !paid.Before(thisMonth) && paid.Before(nextMonth):
			collectedThis = collectedThis.Add(b.Amount)
		case !paid.Before(lastMonth) && paid.Before(thisMonth):
			collectedLast = collectedLast.Add(b.Amount)
		}
	}

	joinedThis := joinedBetween(d.Members, thisMonth, nextMonth)
	joinedLast := joinedBetween(d.Members, lastMonth, thisMonth)

	return Overview{
		TotalRevenue:   total,
		CollectionRate: percent(collected, total),
		TotalMembers:   len(d.Members),
		ActiveMembers:  countWhere(d.Members, domain.MemberActive),
		NewJoiners:     joinedThis,
		RevenueGrowth:  growth(collectedThis, collectedLast),
		MemberGrowth: growth(
			decimal.NewFromInt(int64(joinedThis)),
			decimal.NewFromInt(int64(joinedLast)),
		),
	}
}

// PaymentSummary partitions every bill into exactly one of collected,
// pending or overdue, so the three amounts always add up to Total.
type PaymentSummary struct {
	Collected      decimal.Decimal `json:"collected"`
	Pending        decimal.Decimal `json:"pending"`
	Overdue        decimal.Decimal `json:"overdue"`
	Total          decimal.Decimal `json:"total"`
	CollectedCount int             `json:"collectedCount"`
	PendingCount   int             `json:"pendingCount"`
	OverdueCount   int             `json:"overdueCount"`
	CollectionRate float64         `json:"collectionRate"`
}

func BuildPaymentSummary(d Dataset) PaymentSummary {
	var s PaymentSummary
	for _, b := range d.Bills {
		s.Total = s.Total.Add(b.Amount)
		switch {
		case b.Status == domain.BillPaid:
			s.Collected = s.Collected.Add(b.Amount)
			s.CollectedCount++
		case b.Status == domain.BillOverdue || !b.DueDate.After(d.Now):
			s.Overdue = s.Overdue.Add(b.Amount)
			s.OverdueCount++
		default:
			s.Pending = s.Pending.Add(b.Amount)
			s.PendingCount++
		}
	}
	s.CollectionRate = percent(s.Collected, s.Total)
	return s
}

type TrendPoint struct {
	Month   string          `json:"month"`
	Year    int             `json:"year"`
	Revenue decimal.Decimal `json:"revenue"`
	Paid    decimal.Decimal `json:"paid"`
	Pending decimal.Decimal `json:"pending"`
}

// trendMonths is the window of MonthlyRevenueTrend, current month included.
const trendMonths = 6

// MonthlyRevenueTrend buckets bills by creation month. Anything not paid
// counts as pending.
func MonthlyRevenueTrend(d Dataset) []TrendPoint {
	now := d.now()
	points := make([]TrendPoint, trendMonths)
	index := make(map[monthKey]int, trendMonths)
	for i := range trendMonths {
		m := monthStart(now, i-(trendMonths-1))
		points[i] = TrendPoint{Month: m.Format("Jan"), Year: m.Year()}
		index[monthKey{m.Year(), m.Month()}] = i
	}

	for _, b := range d.Bills {
		i, ok := index[keyOf(b.CreatedAt, d.loc())]
		if !ok {
			continue
		}
		p := &points[i]
		p.Revenue = p.Revenue.Add(b.Amount)
		if b.Status == domain.BillPaid {
			p.Paid = p.Paid.Add(b.Amount)
		} else {
			p.Pending = p.Pending.Add(b.Amount)
		}
	}
	return points
}

// UnassignedPackage groups bills that have no package.
const (
	UnassignedPackageID   = "unassigned"
	UnassignedPackageName = "Unassigned"
)

type PackageRevenue struct {
	PackageID        string          `json:"packageId"`
	PackageName      string          `json:"packageName"`
	TotalBills       int             `json:"totalBills"`
	PaidBills        int             `json:"paidBills"`
	PendingBills     int             `json:"pendingBills"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	CollectedRevenue decimal.Decimal `json:"collectedRevenue"`
	PendingRevenue   decimal.Decimal `json:"pendingRevenue"`
	CollectionRate   float64         `json:"collectionRate"`
}

type RevenueTotals struct {
	TotalBills            int             `json:"totalBills"`
	PaidBills             int             `json:"paidBills"`
	PendingBills          int             `json:"pendingBills"`
	TotalRevenue          decimal.Decimal `json:"totalRevenue"`
	CollectedRevenue      decimal.Decimal `json:"collectedRevenue"`
	PendingRevenue        decimal.Decimal `json:"pendingRevenue"`
	OverallCollectionRate float64         `json:"overallCollectionRate"`
}

type RevenueByPackage struct {
	Packages []PackageRevenue `json:"packages"`
	Totals   RevenueTotals    `json:"totals"`
}

// BuildRevenueByPackage groups every bill by package. Collection rates here
// are by bill count, not amount.
func BuildRevenueByPackage(d Dataset) RevenueByPackage {
	byID := make(map[string]*PackageRevenue)
	var order []string
	for _, b := range d.Bills {
		id, name := UnassignedPackageID, UnassignedPackageName
		if b.HasPackage() {
			id, name = *b.PackageID, b.PackageName
		}
		r, ok := byID[id]
		if !ok {
			r = &PackageRevenue{PackageID: id, PackageName: name}
			byID[id] = r
			order = append(order, id)
		}
		r.TotalBills++
		r.TotalRevenue = r.TotalRevenue.Add(b.Amount)
		if b.Status == domain.BillPaid {
			r.PaidBills++
			r.CollectedRevenue = r.CollectedRevenue.Add(b.Amount)
		} else {
			r.PendingBills++
			r.PendingRevenue = r.PendingRevenue.Add(b.Amount)
		}
	}

	out := RevenueByPackage{Packages: make([]PackageRevenue, 0, len(order))}
	for _, id := range order {
		r := byID[id]
		r.CollectionRate = percentInt(r.PaidBills, r.TotalBills)
		out.Packages = append(out.Packages, *r)

		t := &out.Totals
		t.TotalBills += r.TotalBills
		t.PaidBills += r.PaidBills
		t.PendingBills += r.PendingBills
		t.TotalRevenue = t.TotalRevenue.Add(r.TotalRevenue)
		t.CollectedRevenue = t.CollectedRevenue.Add(r.CollectedRevenue)
		t.PendingRevenue = t.PendingRevenue.Add(r.PendingRevenue)
	}
	out.Totals.OverallCollectionRate = percentInt(out.Totals.PaidBills, out.Totals.TotalBills)

	sort.SliceStable(out.Packages, func(i, j int) bool {
		return out.Packages[i].CollectedRevenue.GreaterThan(out.Packages[j].CollectedRevenue)
	})
	return out
}
