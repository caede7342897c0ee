package http

import (
	"net/http"

	"github.com/aussiebroadwan/gymdesk/internal/gym/service"
	"github.com/aussiebroadwan/gymdesk/pkg/gymsdk"
	"github.com/aussiebroadwan/gymdesk/pkg/httpx"
)

// ReportsHandler serves the admin dashboard and reports.
type ReportsHandler struct {
	ReportService *service.ReportService
}

// HandleDashboard handles GET /v1/admin/dashboard
//
//	@Summary		Admin dashboard
//	@Description	Member count, this month's revenue, pending and overdue bills and a six month chart.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	gymsdk.AdminDashboard	"Dashboard"
//	@Failure		401	{object}	gymsdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/admin/dashboard [get].
func (h *ReportsHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.ReportService.AdminDashboard(r.Context(), httpx.SubjectFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, d)
}

// HandleNamed handles GET /v1/admin/reports/{name}
//
//	@Summary		Named report
//	@Description	One of overview, payments, revenue-trend, revenue-by-package, membership-distribution,
//	@Description	status-distribution, member-stats-by-package or member-statistics.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Param			name	path		string					true	"Report name"
//	@Success		200		{object}	object					"Report body, shape depends on the name"
//	@Failure		400		{object}	gymsdk.ErrorResponse	"Invalid report type"
//	@Router			/v1/admin/reports/{name} [get].
func (h *ReportsHandler) HandleNamed(w http.ResponseWriter, r *http.Request) {
	out, err := h.ReportService.Named(r.Context(), httpx.SubjectFromContext(r.Context()), r.PathValue("name"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCustom handles POST /v1/admin/reports/custom
//
//	@Summary		Custom report
//	@Description	Builds a financial, member, payment or membership report for a date range.
//	@Description	Ranges: last30days, lastquarter, last6months, thisyear, custom; anything else means last month.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gymsdk.CustomReportRequest	true	"Report type and period"
//	@Success		200		{object}	object						"Report"
//	@Failure		400		{object}	gymsdk.ErrorResponse		"Invalid report type or range"
//	@Router			/v1/admin/reports/custom [post].
func (h *ReportsHandler) HandleCustom(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.CustomReportRequest
	if !decode(w, r, &req) {
		return
	}

	out, err := h.ReportService.Custom(r.Context(), httpx.SubjectFromContext(r.Context()), customInput(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleExport handles POST /v1/admin/reports/export
//
//	@Summary		Export a custom report
//	@Description	Renders a custom report as a CSV or XLSX attachment named report_<unix ms>.<ext>.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		text/csv
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param			request	body		gymsdk.ExportReportRequest	true	"Report type, period and format"
//	@Success		200		{file}		file						"Report file"
//	@Failure		400		{object}	gymsdk.ErrorResponse		"Invalid report type, range or format"
//	@Router			/v1/admin/reports/export [post].
func (h *ReportsHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.ExportReportRequest
	if !decode(w, r, &req) {
		return
	}

	f, err := h.ReportService.Export(r.Context(), httpx.SubjectFromContext(r.Context()), customInput(req.CustomReportRequest), req.Format)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteFile(w, f.Name, f.ContentType, f.Data)
}
