package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/gymdesk/internal/gym/service"
	"github.com/aussiebroadwan/gymdesk/pkg/gymsdk"
	"github.com/aussiebroadwan/gymdesk/pkg/httpx"
)

// BillsHandler serves invoices and their receipts for the admin portal.
type BillsHandler struct {
	BillingService *service.BillingService
}

// HandleList handles GET /v1/admin/bills
//
//	@Summary		List bills
//	@Description	Returns the latest bills by due date with member and package names.
//	@Tags			Bills
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int						false	"Maximum bills (default 10, max 100)"
//	@Success		200		{array}		gymsdk.Bill				"Bills"
//	@Failure		400		{object}	gymsdk.ErrorResponse	"Invalid limit"
//	@Failure		401		{object}	gymsdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/admin/bills [get].
func (h *BillsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, gymsdk.ErrorCodeInvalidRequest, "limit must be a number")
			return
		}
		limit = n
	}

	bills, err := h.BillingService.ListBills(r.Context(), httpx.SubjectFromContext(r.Context()), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapAll(bills, bill))
}

// HandleCreate handles POST /v1/admin/bills
//
//	@Summary		Create a bill
//	@Description	Bills a member, optionally against a package. A bill created as paid gets a receipt.
//	@Tags			Bills
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gymsdk.CreateBillRequest	true	"Bill details"
//	@Success		201		{object}	gymsdk.Bill					"Created bill"
//	@Failure		400		{object}	gymsdk.ErrorResponse		"Validation failed"
//	@Router			/v1/admin/bills [post].
func (h *BillsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.CreateBillRequest
	if !decode(w, r, &req) {
		return
	}

	b, err := h.BillingService.CreateBill(r.Context(), httpx.SubjectFromContext(r.Context()), service.BillInput{
		MemberID:      req.MemberID,
		PackageID:     req.PackageID,
		Amount:        req.Amount,
		DueDate:       req.DueDate,
		Status:        req.Status,
		PaidDate:      req.PaidDate,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, bill(b))
}

// HandleUpdateStatus handles PATCH /v1/admin/bills/{id}/status
//
//	@Summary		Change bill status
//	@Description	Marking a bill paid issues a receipt and notifies the member. Other statuses remove the receipt.
//	@Tags			Bills
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Bill ID"
//	@Param			request	body		gymsdk.UpdateBillStatusRequest	true	"New status"
//	@Success		200		{object}	gymsdk.Bill						"Updated bill"
//	@Failure		400		{object}	gymsdk.ErrorResponse			"Validation failed"
//	@Failure		404		{object}	gymsdk.ErrorResponse			"Not found"
//	@Router			/v1/admin/bills/{id}/status [patch].
func (h *BillsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.UpdateBillStatusRequest
	if !decode(w, r, &req) {
		return
	}

	b, err := h.BillingService.UpdateBillStatus(r.Context(), httpx.SubjectFromContext(r.Context()), r.PathValue("id"), service.StatusChange{
		Status:        req.Status,
		PaidDate:      req.PaidDate,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bill(b))
}

// HandleReceipt handles GET /v1/admin/bills/{id}/receipt
//
//	@Summary		Get the receipt of a bill
//	@Tags			Bills
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Bill ID"
//	@Success		200	{object}	gymsdk.Receipt			"Receipt with bill, member and gym details"
//	@Failure		404	{object}	gymsdk.ErrorResponse	"Bill or receipt not found"
//	@Router			/v1/admin/bills/{id}/receipt [get].
func (h *BillsHandler) HandleReceipt(w http.ResponseWriter, r *http.Request) {
	d, err := h.BillingService.GetReceiptForBill(r.Context(), httpx.SubjectFromContext(r.Context()), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, receipt(d))
}

// NotificationsHandler serves admin broadcasts.
type NotificationsHandler struct {
	NotificationService *service.NotificationService
}

// HandleSend handles POST /v1/admin/notifications
//
//	@Summary		Send a notification
//	@Description	Stores a notification for every member in the recipient group and e-mails it.
//	@Description	Recipients: all, active or pending_bills. The message is markdown.
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gymsdk.SendNotificationRequest	true	"Notification"
//	@Success		200		{object}	gymsdk.SendNotificationResponse	"Delivery counts"
//	@Failure		400		{object}	gymsdk.ErrorResponse			"Validation failed"
//	@Failure		404		{object}	gymsdk.ErrorResponse			"No members found"
//	@Router			/v1/admin/notifications [post].
func (h *NotificationsHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.SendNotificationRequest
	if !decode(w, r, &req) {
		return
	}

	res, err := h.NotificationService.Send(r.Context(), httpx.SubjectFromContext(r.Context()), service.NotificationInput{
		Title:      req.Title,
		Message:    req.Message,
		Type:       req.Type,
		Recipients: req.Recipients,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, gymsdk.SendNotificationResponse{
		Message:      fmt.Sprintf("Notification sent to %d members", res.Recipients),
		Recipients:   res.Recipients,
		EmailsSent:   res.EmailsSent,
		EmailsFailed: res.EmailsFailed,
	})
}

// HandleListSent handles GET /v1/admin/notifications
//
//	@Summary		List sent notifications
//	@Description	Returns the latest 50 notifications sent by the gym.
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		gymsdk.Notification		"Notifications"
//	@Failure		401	{object}	gymsdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/admin/notifications [get].
func (h *NotificationsHandler) HandleListSent(w http.ResponseWriter, r *http.Request) {
	ns, err := h.NotificationService.ListSent(r.Context(), httpx.SubjectFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapAll(ns, notification))
}
