package report

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
)

var (
	ErrInvalidReportType = errors.New("invalid report type")
	ErrInvalidRange      = errors.New("invalid date range")
)

type Type string

const (
	TypeFinancial  Type = "financial"
	TypeMember     Type = "member"
	TypePayment    Type = "payment"
	TypeMembership Type = "membership"
)

func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case TypeFinancial, TypeMember, TypePayment, TypeMembership:
		return t, nil
	}
	return "", ErrInvalidReportType
}

// Date ranges for custom reports. Anything unrecognised means the last month.
const (
	RangeLast30Days   = "last30days"
	RangeLastQuarter  = "lastquarter"
	RangeLast6Months  = "last6months"
	RangeThisYear     = "thisyear"
	RangeCustom       = "custom"
	RangeDefaultMonth = "lastmonth"
)

// Request selects a custom report.
type Request struct {
	Type  Type
	Range string
	Start *time.Time
	End   *time.Time
}

// Period is an inclusive time window.
type Period struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// ResolvePeriod turns a named range into a window ending at now. A custom
// range falls back to now for a missing bound.
func ResolvePeriod(rangeName string, start, end *time.Time, now time.Time) (Period, error) {
	p := Period{From: now, To: now}
	switch strings.ToLower(strings.TrimSpace(rangeName)) {
	case RangeLast30Days:
		p.From = now.AddDate(0, 0, -30)
	case RangeLastQuarter:
		p.From = now.AddDate(0, -3, 0)
	case RangeLast6Months:
		p.From = now.AddDate(0, -6, 0)
	case RangeThisYear:
		p.From = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	case RangeCustom:
		if start != nil {
			p.From = *start
		}
		if end != nil {
			p.To = *end
		}
	default:
		p.From = now.AddDate(0, -1, 0)
	}
	if p.To.Before(p.From) {
		return Period{}, ErrInvalidRange
	}
	return p, nil
}

// Custom is one of four report bodies; exactly one pointer is set.
type Custom struct {
	Type        Type              `json:"type"`
	Title       string            `json:"title"`
	Period      Period            `json:"period"`
	GeneratedAt time.Time         `json:"generatedAt"`
	Financial   *FinancialReport  `json:"financial,omitempty"`
	Member      *MemberReport     `json:"member,omitempty"`
	Payment     *PaymentReport    `json:"payment,omitempty"`
	Membership  *MembershipReport `json:"membership,omitempty"`
}

type FinancialBill struct {
	ID          string          `json:"id"`
	MemberID    string          `json:"memberId"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	PackageName string          `json:"packageName"`
	Date        time.Time       `json:"date"`
}

type FinancialReport struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalCollected decimal.Decimal `json:"totalCollected"`
	PendingAmount  decimal.Decimal `json:"pendingAmount"`
	OverdueAmount  decimal.Decimal `json:"overdueAmount"`
	CollectionRate float64         `json:"collectionRate"`
	BillCount      int             `json:"billCount"`
	Bills          []FinancialBill `json:"bills"`
}

type MemberRow struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	PackageName string    `json:"packageName"`
	Status      string    `json:"status"`
	JoinDate    time.Time `json:"joinDate"`
	BillsCount  int       `json:"billsCount"`
}

type MemberReport struct {
	TotalMembers     int         `json:"totalMembers"`
	ActiveMembers    int         `json:"activeMembers"`
	InactiveMembers  int         `json:"inactiveMembers"`
	SuspendedMembers int         `json:"suspendedMembers"`
	Members          []MemberRow `json:"members"`
}

type PaymentBill struct {
	ID          string          `json:"id"`
	MemberName  string          `json:"memberName"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	PackageName string          `json:"packageName"`
	Date        time.Time       `json:"date"`
}

type PaymentReport struct {
	TotalBills     int             `json:"totalBills"`
	PaidBills      int             `json:"paidBills"`
	PendingBills   int             `json:"pendingBills"`
	OverdueBills   int             `json:"overdueBills"`
	TotalCollected decimal.Decimal `json:"totalCollected"`
	TotalPending   decimal.Decimal `json:"totalPending"`
	TotalOverdue   decimal.Decimal `json:"totalOverdue"`
	CollectionRate float64         `json:"collectionRate"`
	Bills          []PaymentBill   `json:"bills"`
}

type MembershipMember struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

type MembershipPackage struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Price        decimal.Decimal    `json:"price"`
	BillingCycle string             `json:"billingCycle"`
	MemberCount  int                `json:"memberCount"`
	Members      []MembershipMember `json:"members"`
}

type MembershipReport struct {
	TotalPackages int                 `json:"totalPackages"`
	TotalMembers  int                 `json:"totalMembers"`
	Packages      []MembershipPackage `json:"packages"`
}

const notApplicable = "N/A"

// BuildCustom filters bills by creation date and members by join date
// into the requested window.
func BuildCustom(d Dataset, req Request) (Custom, error) {
	t, err := ParseType(string(req.Type))
	if err != nil {
		return Custom{}, err
	}
	period, err := ResolvePeriod(req.Range, req.Start, req.End, d.now())
	if err != nil {
		return Custom{}, err
	}

	var bills []domain.BillView
	for _, b := range d.Bills {
		if inRange(b.CreatedAt, period.From, period.To) {
			bills = append(bills, b)
		}
	}
	sort.SliceStable(bills, func(i, j int) bool { return bills[i].CreatedAt.Before(bills[j].CreatedAt) })

	out := Custom{Type: t, Period: period, GeneratedAt: d.Now}
	switch t {
	case TypeFinancial:
		out.Title = "Financial Summary Report"
		out.Financial = financialReport(bills, d.Now)
	case TypeMember:
		out.Title = "Member Activity Report"
		out.Member = memberReport(d.Members, bills, period)
	case TypePayment:
		out.Title = "Payment Collection Report"
		out.Payment = paymentReport(bills)
	case TypeMembership:
		out.Title = "Membership Analysis Report"
		out.Membership = membershipReport(d.Packages, bills)
	}
	return out, nil
}

func financialReport(bills []domain.BillView, now time.Time) *FinancialReport {
	r := &FinancialReport{BillCount: len(bills), Bills: make([]FinancialBill, 0, len(bills))}
	for _, b := range bills {
		r.TotalRevenue = r.TotalRevenue.Add(b.Amount)
		switch {
		case b.Status == domain.BillPaid:
			r.TotalCollected = r.TotalCollected.Add(b.Amount)
		case b.Status == domain.BillOverdue || !b.DueDate.After(now):
			r.OverdueAmount = r.OverdueAmount.Add(b.Amount)
		default:
			r.PendingAmount = r.PendingAmount.Add(b.Amount)
		}
		r.Bills = append(r.Bills, FinancialBill{
			ID:          b.ID,
			MemberID:    b.MemberID,
			Amount:      b.Amount,
			Status:      string(b.Status),
			PackageName: packageName(b, notApplicable),
			Date:        b.CreatedAt,
		})
	}
	r.CollectionRate = percent(r.TotalCollected, r.TotalRevenue)
	return r
}

func memberReport(members []domain.Member, bills []domain.BillView, period Period) *MemberReport {
	latest := latestBills(bills)
	counts := make(map[string]int)
	for _, b := range bills {
		counts[b.MemberID]++
	}

	r := &MemberReport{Members: []MemberRow{}}
	for _, m := range members {
		if !inRange(m.JoinDate, period.From, period.To) {
			continue
		}
		pkg := notApplicable
		if b, ok := latest[m.ID]; ok {
			pkg = packageName(b, notApplicable)
		}
		r.Members = append(r.Members, MemberRow{
			ID:          m.ID,
			Name:        m.Name,
			Email:       m.Email,
			Phone:       m.Phone,
			PackageName: pkg,
			Status:      string(m.Status),
			JoinDate:    m.JoinDate,
			BillsCount:  counts[m.ID],
		})
		switch m.Status {
		case domain.MemberActive:
			r.ActiveMembers++
		case domain.MemberInactive:
			r.InactiveMembers++
		case domain.MemberSuspended:
			r.SuspendedMembers++
		}
	}
	sort.SliceStable(r.Members, func(i, j int) bool { return r.Members[i].JoinDate.Before(r.Members[j].JoinDate) })
	r.TotalMembers = len(r.Members)
	return r
}

func paymentReport(bills []domain.BillView) *PaymentReport {
	r := &PaymentReport{TotalBills: len(bills), Bills: make([]PaymentBill, 0, len(bills))}
	for _, b := range bills {
		switch b.Status {
		case domain.BillPaid:
			r.PaidBills++
			r.TotalCollected = r.TotalCollected.Add(b.Amount)
		case domain.BillPending:
			r.PendingBills++
			r.TotalPending = r.TotalPending.Add(b.Amount)
		case domain.BillOverdue:
			r.OverdueBills++
			r.TotalOverdue = r.TotalOverdue.Add(b.Amount)
		}
		r.Bills = append(r.Bills, PaymentBill{
			ID:          b.ID,
			MemberName:  b.MemberName,
			Amount:      b.Amount,
			Status:      string(b.Status),
			PackageName: packageName(b, notApplicable),
			Date:        b.CreatedAt,
		})
	}
	r.CollectionRate = percentInt(r.PaidBills, r.TotalBills)
	return r
}

// membershipReport lists every package, active or not, with the distinct
// members billed against it inside the window.
func membershipReport(pkgs []domain.Package, bills []domain.BillView) *MembershipReport {
	billed := billedMembers(bills)
	r := &MembershipReport{Packages: make([]MembershipPackage, 0, len(pkgs))}
	for _, p := range pkgs {
		mp := MembershipPackage{
			ID:           p.ID,
			Name:         p.Name,
			Price:        p.Price,
			BillingCycle: p.BillingCycle,
			Members:      []MembershipMember{},
		}
		for _, b := range billed[p.ID] {
			mp.Members = append(mp.Members, MembershipMember{
				Name:   b.MemberName,
				Email:  b.MemberEmail,
				Status: string(b.MemberStatus),
			})
		}
		mp.MemberCount = len(mp.Members)
		r.TotalMembers += mp.MemberCount
		r.Packages = append(r.Packages, mp)
	}
	r.TotalPackages = len(r.Packages)
	return r
}
