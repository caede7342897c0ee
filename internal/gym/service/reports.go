package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/gymdesk/internal/gym/report"
	"github.com/aussiebroadwan/gymdesk/internal/gym/store"
)

// ReportService loads a tenant's data and hands it to the report package.
type ReportService struct {
	Store store.Store
	Clock Clock

	// Location decides where month boundaries fall. Nil means UTC.
	Location *time.Location
}

type CustomReportInput struct {
	ReportType string
	DateRange  string
	Start      *time.Time
	End        *time.Time
}

// ExportFile is a rendered report ready to be sent as an attachment.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

func (s *ReportService) dataset(ctx context.Context, adminID string) (report.Dataset, error) {
	members, err := s.Store.Members().ListMembers(ctx, adminID)
	if err != nil {
		return report.Dataset{}, fmt.Errorf("load members: %w", err)
	}
	packages, err := s.Store.Packages().ListPackages(ctx, adminID)
	if err != nil {
		return report.Dataset{}, fmt.Errorf("load packages: %w", err)
	}
	bills, err := s.Store.Bills().ListBills(ctx, store.BillFilter{AdminID: adminID})
	if err != nil {
		return report.Dataset{}, fmt.Errorf("load bills: %w", err)
	}
	return report.Dataset{
		Members:  members,
		Packages: packages,
		Bills:    bills,
		Now:      s.Clock.now(),
		Loc:      s.Location,
	}, nil
}

func (s *ReportService) AdminDashboard(ctx context.Context, adminID string) (report.AdminDashboard, error) {
	d, err := s.dataset(ctx, adminID)
	if err != nil {
		return report.AdminDashboard{}, err
	}
	return report.BuildAdminDashboard(d), nil
}

func (s *ReportService) MemberDashboard(ctx context.Context, memberID string) (report.MemberDashboard, error) {
	m, err := s.Store.Members().GetMemberByID(ctx, memberID)
	if err != nil {
		return report.MemberDashboard{}, err
	}
	bills, err := s.Store.Bills().ListBills(ctx, store.BillFilter{MemberID: memberID})
	if err != nil {
		return report.MemberDashboard{}, err
	}
	return report.BuildMemberDashboard(m, bills, gymName(ctx, s.Store, m.AdminID)), nil
}

// Named reports served under /v1/admin/reports/{name}.
const (
	ReportOverview               = "overview"
	ReportPayments               = "payments"
	ReportRevenueTrend           = "revenue-trend"
	ReportRevenueByPackage       = "revenue-by-package"
	ReportMembershipDistribution = "membership-distribution"
	ReportStatusDistribution     = "status-distribution"
	ReportMemberStatsByPackage   = "member-stats-by-package"
	ReportMemberStatistics       = "member-statistics"
)

// Named builds one of the fixed reports. Unknown names return
// ErrInvalidReportType.
func (s *ReportService) Named(ctx context.Context, adminID, name string) (any, error) {
	build, ok := namedReports[name]
	if !ok {
		return nil, ErrInvalidReportType
	}
	d, err := s.dataset(ctx, adminID)
	if err != nil {
		return nil, err
	}
	return build(d), nil
}

var namedReports = map[string]func(report.Dataset) any{
	ReportOverview:               func(d report.Dataset) any { return report.BuildOverview(d) },
	ReportPayments:               func(d report.Dataset) any { return report.BuildPaymentSummary(d) },
	ReportRevenueTrend:           func(d report.Dataset) any { return report.MonthlyRevenueTrend(d) },
	ReportRevenueByPackage:       func(d report.Dataset) any { return report.BuildRevenueByPackage(d) },
	ReportMembershipDistribution: func(d report.Dataset) any { return report.BuildMembershipDistribution(d) },
	ReportStatusDistribution:     func(d report.Dataset) any { return report.BuildStatusDistribution(d) },
	ReportMemberStatsByPackage:   func(d report.Dataset) any { return report.BuildMemberStatsByPackage(d) },
	ReportMemberStatistics:       func(d report.Dataset) any { return report.BuildMemberStatistics(d) },
}

func (s *ReportService) Custom(ctx context.Context, adminID string, in CustomReportInput) (report.Custom, error) {
	typ, err := report.ParseType(in.ReportType)
	if err != nil {
		return report.Custom{}, err
	}
	d, err := s.dataset(ctx, adminID)
	if err != nil {
		return report.Custom{}, err
	}
	c, err := report.BuildCustom(d, report.Request{
		Type:  typ,
		Range: in.DateRange,
		Start: in.Start,
		End:   in.End,
	})
	if err != nil {
		return report.Custom{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	return c, nil
}

// Export builds a custom report and renders it as CSV or XLSX.
func (s *ReportService) Export(ctx context.Context, adminID string, in CustomReportInput, format string) (ExportFile, error) {
	f, err := report.ParseFormat(format)
	if err != nil {
		return ExportFile{}, invalid("format must be csv or xlsx")
	}
	c, err := s.Custom(ctx, adminID, in)
	if err != nil {
		return ExportFile{}, err
	}

	var buf bytes.Buffer
	if err := report.Export(&buf, f, c); err != nil {
		return ExportFile{}, fmt.Errorf("render report: %w", err)
	}
	return ExportFile{
		Name:        f.FileName(s.Clock.now()),
		ContentType: f.ContentType(),
		Data:        buf.Bytes(),
	}, nil
}
