package service

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/gymdesk/internal/gym/report"
)

func seedReportData(t *testing.T, e *testEnv) string {
	t.Helper()
	a := e.admin(t, "owner@gym.test")
	sam := e.member(t, a.ID, "sam@gym.test")
	kim := e.member(t, a.ID, "kim@gym.test")
	gold := e.pkg(t, a.ID, "Gold", "1500")

	_, err := e.billing.CreateBill(e.ctx, a.ID, BillInput{
		MemberID: sam.ID, PackageID: &gold.ID, Amount: gold.Price, DueDate: e.clock.Now(), Status: "paid",
	})
	require.NoError(t, err)
	_, err = e.billing.CreateBill(e.ctx, a.ID, BillInput{
		MemberID: kim.ID, PackageID: &gold.ID, Amount: gold.Price, DueDate: e.clock.Now().AddDate(0, 0, 10),
	})
	require.NoError(t, err)
	return a.ID
}

func TestAdminDashboard(t *testing.T) {
	t.Parallel()
	e := newTestEnv(t)
	adminID := seedReportData(t, e)

	d, err := e.reports.AdminDashboard(e.ctx, adminID)
	require.NoError(t, err)
	require.Equal(t, 2, d.TotalMembers)
	require.Equal(t, 1, d.PendingBills)
	require.True(t, decimal.NewFromInt(1500).Equal(d.MonthlyRevenue))
	require.True(t, decimal.NewFromInt(1500).Equal(d.PendingAmount))
	require.Len(t, d.Chart, 6)
}

func TestMemberDashboard(t *testing.T) {
	t.Parallel()
	e := newTestEnv(t)
	seedReportData(t, e)
	kim, err := e.store.Members().GetMemberByEmail(e.ctx, "kim@gym.test")
	require.NoError(t, err)

	d, err := e.reports.MemberDashboard(e.ctx, kim.ID)
	require.NoError(t, err)
	require.Equal(t, "Iron Temple", d.GymName)
	require.NotNil(t, d.CurrentPackage)
	require.Equal(t, "Gold", d.CurrentPackage.Name)
	require.True(t, decimal.NewFromInt(1500).Equal(d.OutstandingBalance))
	require.NotNil(t, d.NextBillDue)
	require.Len(t, d.RecentBills, 1)
}

func TestNamedReports(t *testing.T) {
	t.Parallel()
	e := newTestEnv(t)
	adminID := seedReportData(t, e)

	for name := range namedReports {
		got, err := e.reports.Named(e.ctx, adminID, name)
		require.NoError(t, err, name)
		require.NotNil(t, got, name)
	}

	got, err := e.reports.Named(e.ctx, adminID, ReportPayments)
	require.NoError(t, err)
	summary := got.(report.PaymentSummary)
	require.True(t, decimal.NewFromInt(3000).Equal(summary.Total))

	_, err = e.reports.Named(e.ctx, adminID, "churn")
	require.ErrorIs(t, err, ErrInvalidReportType)
}

func TestCustomReportAndExport(t *testing.T) {
	t.Parallel()
	e := newTestEnv(t)
	adminID := seedReportData(t, e)

	_, err := e.reports.Custom(e.ctx, adminID, CustomReportInput{ReportType: "weekly"})
	require.ErrorIs(t, err, ErrInvalidReportType)

	end := e.clock.Now().AddDate(0, -2, 0)
	_, err = e.reports.Custom(e.ctx, adminID, CustomReportInput{ReportType: "financial", DateRange: "custom", End: &end})
	require.ErrorIs(t, err, ErrInvalidInput)

	c, err := e.reports.Custom(e.ctx, adminID, CustomReportInput{ReportType: "Payment", DateRange: "last30days"})
	require.NoError(t, err)
	require.NotNil(t, c.Payment)

	_, err = e.reports.Export(e.ctx, adminID, CustomReportInput{ReportType: "payment"}, "pdf")
	require.ErrorIs(t, err, ErrInvalidInput)

	file, err := e.reports.Export(e.ctx, adminID, CustomReportInput{ReportType: "financial", DateRange: "thisyear"}, "csv")
	require.NoError(t, err)
	require.Regexp(t, `^report_\d+\.csv$`, file.Name)
	require.Equal(t, "text/csv; charset=utf-8", file.ContentType)

	r := csv.NewReader(bytes.NewReader(file.Data))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Equal(t, "Financial Summary Report", rows[0][0])

	xlsx, err := e.reports.Export(e.ctx, adminID, CustomReportInput{ReportType: "membership"}, "excel")
	require.NoError(t, err)
	require.Regexp(t, `\.xlsx$`, xlsx.Name)
	require.NotEmpty(t, xlsx.Data)
}
