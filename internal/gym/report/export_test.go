package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportCSVFinancial(t *testing.T) {
	t.Parallel()

	c, err := BuildCustom(fixture(), Request{Type: TypeFinancial, Range: RangeThisYear})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, FormatCSV, c))

	r := csv.NewReader(&buf)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)

	require.Equal(t, []string{"Financial Summary Report"}, records[0])
	require.Contains(t, records, []string{"FINANCIAL SUMMARY"})
	require.Contains(t, records, []string{"Total Revenue", "200.00"})
	require.Contains(t, records, []string{"Collection Rate", "50%"})
	require.Contains(t, records, []string{"BILL DETAILS"})
	require.Contains(t, records, []string{"Bill ID", "Member ID", "Amount", "Status", "Package", "Date"})
	require.Contains(t, records, []string{"b4", "m3", "20.00", "overdue", "N/A", "2025-03-01T09:00:00Z"})
}

func TestExportCSVQuotesNames(t *testing.T) {
	t.Parallel()

	d := fixture()
	d.Members[0].Name = `Ana "The Tank", Jr`
	c, err := BuildCustom(d, Request{Type: TypeMember, Range: RangeThisYear})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, FormatCSV, c))
	require.Contains(t, buf.String(), `"Ana ""The Tank"", Jr"`)
	require.Contains(t, buf.String(), "MEMBER ACTIVITY\n")
	require.Contains(t, buf.String(), "MEMBER DETAILS\n")
}

func TestExportMembershipSections(t *testing.T) {
	t.Parallel()

	c, err := BuildCustom(fixture(), Request{Type: TypeMembership, Range: RangeThisYear})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, FormatCSV, c))
	out := buf.String()
	for _, heading := range []string{"MEMBERSHIP ANALYSIS", "PACKAGE DETAILS", "MEMBER DETAILS BY PACKAGE"} {
		require.Contains(t, out, heading+"\n")
	}
	require.Less(t, strings.Index(out, "PACKAGE DETAILS"), strings.Index(out, "MEMBER DETAILS BY PACKAGE"))
	require.Contains(t, out, "Gold,50.00,monthly,2\n")
}

func TestExportXLSX(t *testing.T) {
	t.Parallel()

	c, err := BuildCustom(fixture(), Request{Type: TypePayment, Range: RangeThisYear})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, FormatXLSX, c))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsxSheet)
	require.NoError(t, err)
	require.Equal(t, "Payment Collection Report", rows[0][0])

	var found bool
	for _, r := range rows {
		if len(r) > 0 && r[0] == "PAYMENT DETAILS" {
			found = true
		}
	}
	require.True(t, found)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := ParseFormat("CSV")
	require.NoError(t, err)
	require.Equal(t, FormatCSV, f)

	f, err = ParseFormat("excel")
	require.NoError(t, err)
	require.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("pdf")
	require.ErrorIs(t, err, ErrInvalidFormat)

	now := time.UnixMilli(1718000000123)
	require.Equal(t, "report_1718000000123.xlsx", FormatXLSX.FileName(now))
	require.Equal(t, "text/csv; charset=utf-8", FormatCSV.ContentType())
}
