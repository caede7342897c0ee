package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var ErrInvalidFormat = errors.New("invalid export format")

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatXLSX:
		return f, nil
	case "excel":
		return FormatXLSX, nil
	}
	return "", ErrInvalidFormat
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// FileName is report_<unix millis>.<ext>.
func (f Format) FileName(now time.Time) string {
	return fmt.Sprintf("report_%d.%s", now.UnixMilli(), f)
}

// Export renders c in the given format.
func Export(w io.Writer, f Format, c Custom) error {
	rows := layout(c)
	switch f {
	case FormatCSV:
		return writeCSV(w, rows)
	case FormatXLSX:
		return writeXLSX(w, rows)
	}
	return ErrInvalidFormat
}

// row is one output line. Headings are section titles, styled in XLSX.
type row struct {
	cells   []string
	heading bool
}

type sheet []row

func (s *sheet) heading(title string) { *s = append(*s, row{cells: []string{title}, heading: true}) }
func (s *sheet) line(cells ...string) { *s = append(*s, row{cells: cells}) }
func (s *sheet) blank()               { *s = append(*s, row{}) }

func money(d decimal.Decimal) string { return d.StringFixed(2) }
func rate(r float64) string          { return strconv.FormatFloat(r, 'f', -1, 64) + "%" }
func stamp(t time.Time) string       { return t.UTC().Format(time.RFC3339) }

// layout lays out the custom report as section headings followed by
// key/value summaries and detail tables.
func layout(c Custom) sheet {
	var s sheet
	s.heading(c.Title)
	s.line("Period", stamp(c.Period.From), stamp(c.Period.To))
	s.blank()

	switch {
	case c.Financial != nil:
		r := c.Financial
		s.heading("FINANCIAL SUMMARY")
		s.line("Total Revenue", money(r.TotalRevenue))
		s.line("Total Collected", money(r.TotalCollected))
		s.line("Pending Amount", money(r.PendingAmount))
		s.line("Overdue Amount", money(r.OverdueAmount))
		s.line("Collection Rate", rate(r.CollectionRate))
		s.blank()
		s.heading("BILL DETAILS")
		s.line("Bill ID", "Member ID", "Amount", "Status", "Package", "Date")
		for _, b := range r.Bills {
			s.line(b.ID, b.MemberID, money(b.Amount), b.Status, b.PackageName, stamp(b.Date))
		}

	case c.Member != nil:
		r := c.Member
		s.heading("MEMBER ACTIVITY")
		s.line("Total Members", strconv.Itoa(r.TotalMembers))
		s.line("Active Members", strconv.Itoa(r.ActiveMembers))
		s.line("Inactive Members", strconv.Itoa(r.InactiveMembers))
		s.line("Suspended Members", strconv.Itoa(r.SuspendedMembers))
		s.blank()
		s.heading("MEMBER DETAILS")
		s.line("ID", "Name", "Email", "Phone", "Package", "Status", "Join Date", "Bills Count")
		for _, m := range r.Members {
			s.line(m.ID, m.Name, m.Email, m.Phone, m.PackageName, m.Status, stamp(m.JoinDate), strconv.Itoa(m.BillsCount))
		}

	case c.Payment != nil:
		r := c.Payment
		s.heading("PAYMENT COLLECTION")
		s.line("Total Bills", strconv.Itoa(r.TotalBills))
		s.line("Paid Bills", strconv.Itoa(r.PaidBills))
		s.line("Pending Bills", strconv.Itoa(r.PendingBills))
		s.line("Overdue Bills", strconv.Itoa(r.OverdueBills))
		s.line("Total Collected", money(r.TotalCollected))
		s.line("Total Pending", money(r.TotalPending))
		s.line("Total Overdue", money(r.TotalOverdue))
		s.line("Collection Rate", rate(r.CollectionRate))
		s.blank()
		s.heading("PAYMENT DETAILS")
		s.line("Bill ID", "Member Name", "Amount", "Status", "Package", "Date")
		for _, b := range r.Bills {
			s.line(b.ID, b.MemberName, money(b.Amount), b.Status, b.PackageName, stamp(b.Date))
		}

	case c.Membership != nil:
		r := c.Membership
		s.heading("MEMBERSHIP ANALYSIS")
		s.line("Total Packages", strconv.Itoa(r.TotalPackages))
		s.line("Total Members", strconv.Itoa(r.TotalMembers))
		s.blank()
		s.heading("PACKAGE DETAILS")
		s.line("Package Name", "Price", "Billing Cycle", "Member Count")
		for _, p := range r.Packages {
			s.line(p.Name, money(p.Price), p.BillingCycle, strconv.Itoa(p.MemberCount))
		}
		s.blank()
		s.heading("MEMBER DETAILS BY PACKAGE")
		for _, p := range r.Packages {
			s.blank()
			s.line(p.Name)
			s.line("Member Name", "Email", "Status")
			for _, m := range p.Members {
				s.line(m.Name, m.Email, m.Status)
			}
		}
	}
	return s
}

func writeCSV(w io.Writer, s sheet) error {
	cw := csv.NewWriter(w)
	for _, r := range s {
		if err := cw.Write(r.cells); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

const xlsxSheet = "Report"

func writeXLSX(w io.Writer, s sheet) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	for i, r := range s {
		if len(r.cells) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]any, len(r.cells))
		for j, v := range r.cells {
			values[j] = v
		}
		if err := f.SetSheetRow(xlsxSheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
		if r.heading {
			if err := f.SetCellStyle(xlsxSheet, cell, cell, bold); err != nil {
				return fmt.Errorf("style row %d: %w", i+1, err)
			}
		}
	}
	if err := f.SetColWidth(xlsxSheet, "A", "H", 20); err != nil {
		return fmt.Errorf("set widths: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
