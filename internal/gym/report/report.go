// Package report aggregates tenant data into dashboards, reports and store
// analytics. Every function is pure: callers load a Dataset and the package
// only scans, groups and sums it.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
)

// Dataset is everything a tenant report may look at. Bills are expected to
// carry their member and package columns (domain.BillView).
type Dataset struct {
	Members  []domain.Member
	Packages []domain.Package
	Bills    []domain.BillView

	// Now anchors "this month" and relative ranges. Loc decides where
	// month boundaries fall; nil means UTC.
	Now time.Time
	Loc *time.Location
}

func (d Dataset) loc() *time.Location {
	if d.Loc == nil {
		return time.UTC
	}
	return d.Loc
}

func (d Dataset) now() time.Time { return d.Now.In(d.loc()) }

// monthStart returns the first instant of the month offset months away
// from the month containing t.
func monthStart(t time.Time, offset int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(offset), 1, 0, 0, 0, 0, t.Location())
}

// monthKey identifies a calendar month in the dataset location.
type monthKey struct {
	year  int
	month time.Month
}

func keyOf(t time.Time, loc *time.Location) monthKey {
	t = t.In(loc)
	return monthKey{t.Year(), t.Month()}
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

var hundred = decimal.NewFromInt(100)

// percent returns part/whole*100 rounded to one decimal, 0 when whole is 0.
func percent(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(hundred).Round(1).InexactFloat64()
}

func percentInt(part, whole int) float64 {
	return percent(decimal.NewFromInt(int64(part)), decimal.NewFromInt(int64(whole)))
}

// growth is the change from last to current in percent, 0 when last is 0.
func growth(current, last decimal.Decimal) float64 {
	if last.IsZero() {
		return 0
	}
	return percent(current.Sub(last), last)
}

func countWhere(members []domain.Member, status domain.MemberStatus) int {
	n := 0
	for _, m := range members {
		if m.Status == status {
			n++
		}
	}
	return n
}

func joinedBetween(members []domain.Member, from, to time.Time) int {
	n := 0
	for _, m := range members {
		if !m.JoinDate.Before(from) && m.JoinDate.Before(to) {
			n++
		}
	}
	return n
}

func packageName(b domain.BillView, fallback string) string {
	if !b.HasPackage() || b.PackageName == "" {
		return fallback
	}
	return b.PackageName
}
