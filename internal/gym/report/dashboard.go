package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
)

type ChartPoint struct {
	Month   string          `json:"month"`
	Year    int             `json:"year"`
	Revenue decimal.Decimal `json:"revenue"`
	Members int             `json:"members"`
}

type AdminDashboard struct {
	TotalMembers   int             `json:"totalMembers"`
	MonthlyRevenue decimal.Decimal `json:"monthlyRevenue"`
	PendingBills   int             `json:"pendingBills"`
	PendingAmount  decimal.Decimal `json:"pendingAmount"`
	OverdueBills   int             `json:"overdueBills"`
	Chart          []ChartPoint    `json:"chartData"`
}

const chartMonths = 6

// BuildAdminDashboard buckets revenue by paid date and new members by join
// date over the last six months, current month included.
func BuildAdminDashboard(d Dataset) AdminDashboard {
	now := d.now()
	loc := d.loc()

	out := AdminDashboard{
		TotalMembers: len(d.Members),
		Chart:        make([]ChartPoint, chartMonths),
	}
	index := make(map[monthKey]int, chartMonths)
	for i := range chartMonths {
		m := monthStart(now, i-(chartMonths-1))
		out.Chart[i] = ChartPoint{Month: m.Format("Jan"), Year: m.Year()}
		index[monthKey{m.Year(), m.Month()}] = i
	}
	current := keyOf(now, loc)

	for _, b := range d.Bills {
		switch b.Status {
		case domain.BillPending:
			out.PendingBills++
			out.PendingAmount = out.PendingAmount.Add(b.Amount)
		case domain.BillOverdue:
			out.OverdueBills++
		case domain.BillPaid:
			if b.PaidDate == nil {
				continue
			}
			k := keyOf(*b.PaidDate, loc)
			if k == current {
				out.MonthlyRevenue = out.MonthlyRevenue.Add(b.Amount)
			}
			if i, ok := index[k]; ok {
				out.Chart[i].Revenue = out.Chart[i].Revenue.Add(b.Amount)
			}
		}
	}
	for _, m := range d.Members {
		if i, ok := index[keyOf(m.JoinDate, loc)]; ok {
			out.Chart[i].Members++
		}
	}
	return out
}

type CurrentPackage struct {
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	BillingCycle string          `json:"billingCycle"`
}

type DueBill struct {
	BillID  string          `json:"billId"`
	DueDate time.Time       `json:"dueDate"`
	Amount  decimal.Decimal `json:"amount"`
}

type BillSummary struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	PackageName string          `json:"packageName"`
	DueDate     time.Time       `json:"dueDate"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type MemberDashboard struct {
	Name               string          `json:"name"`
	Status             string          `json:"status"`
	JoinDate           time.Time       `json:"joinDate"`
	CurrentPackage     *CurrentPackage `json:"currentPackage"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`
	NextBillDue        *DueBill        `json:"nextBillDue"`
	RecentBills        []BillSummary   `json:"recentBills"`
	GymName            string          `json:"gymName"`
}

const recentBillCount = 5

// BuildMemberDashboard summarises one member's bills. bills must all belong
// to m; order does not matter.
func BuildMemberDashboard(m domain.Member, bills []domain.BillView, gymName string) MemberDashboard {
	sorted := make([]domain.BillView, len(bills))
	copy(sorted, bills)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	out := MemberDashboard{
		Name:        m.Name,
		Status:      string(m.Status),
		JoinDate:    m.JoinDate,
		RecentBills: make([]BillSummary, 0, min(len(sorted), recentBillCount)),
		GymName:     gymName,
	}

	if len(sorted) > 0 && sorted[0].HasPackage() {
		out.CurrentPackage = &CurrentPackage{
			Name:         sorted[0].PackageName,
			Price:        sorted[0].PackagePrice,
			BillingCycle: sorted[0].PackageBillingCycle,
		}
	}

	for i, b := range sorted {
		if b.Status == domain.BillPending || b.Status == domain.BillOverdue {
			out.OutstandingBalance = out.OutstandingBalance.Add(b.Amount)
		}
		if b.Status == domain.BillPending && (out.NextBillDue == nil || b.DueDate.Before(out.NextBillDue.DueDate)) {
			out.NextBillDue = &DueBill{BillID: b.ID, DueDate: b.DueDate, Amount: b.Amount}
		}
		if i < recentBillCount {
			out.RecentBills = append(out.RecentBills, BillSummary{
				ID:          b.ID,
				Amount:      b.Amount,
				Status:      string(b.Status),
				PackageName: packageName(b, ""),
				DueDate:     b.DueDate,
				CreatedAt:   b.CreatedAt,
			})
		}
	}
	return out
}
