package http

import (
	"net/http"

	"github.com/aussiebroadwan/gymdesk/internal/gym/service"
	"github.com/aussiebroadwan/gymdesk/pkg/gymsdk"
	"github.com/aussiebroadwan/gymdesk/pkg/httpx"
)

// PortalHandler serves the member portal. The subject is the member ID
// and the tenant claim is the owning admin.
type PortalHandler struct {
	MemberService       *service.MemberService
	BillingService      *service.BillingService
	NotificationService *service.NotificationService
	ReportService       *service.ReportService
	ShopService         *service.ShopService
}

// HandleGetProfile handles GET /v1/member/profile
//
//	@Summary		Member profile
//	@Tags			Member portal
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	gymsdk.MemberProfile	"Profile with gym name"
//	@Failure		401	{object}	gymsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		403	{object}	gymsdk.ErrorResponse	"Not a member session"
//	@Router			/v1/member/profile [get].
func (h *PortalHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.MemberService.Profile(r.Context(), httpx.SubjectFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, memberProfile(p))
}

// HandleUpdateProfile handles PATCH /v1/member/profile
//
//	@Summary		Update member profile
//	@Description	Members may change their name and phone only.
//	@Tags			Member portal
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gymsdk.UpdateProfileRequest	true	"Name and phone"
//	@Success		200		{object}	gymsdk.MemberProfile		"Updated profile"
//	@Failure		400		{object}	gymsdk.ErrorResponse		"Validation failed"
//	@Router			/v1/member/profile [patch].
func (h *PortalHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.UpdateProfileRequest
	if !decode(w, r, &req) {
		return
	}

	p, err := h.MemberService.UpdateProfile(r.Context(), httpx.SubjectFromContext(r.Context()), req.Name, req.Phone)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, memberProfile(p))
}

// HandleDashboard handles GET /v1/member/dashboard
//
//	@Summary		Member dashboard
//	@Description	Current package, outstanding balance, next bill due and the five latest bills.
//	@Tags			Member portal
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	gymsdk.MemberDashboard	"Dashboard"
//	@Failure		401	{object}	gymsdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/member/dashboard [get].
func (h *PortalHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.ReportService.MemberDashboard(r.Context(), httpx.SubjectFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, d)
}

// HandleBills handles GET /v1/member/bills
//
//	@Summary		My bills
//	@Tags			Member portal
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		gymsdk.Bill				"Bills, newest first, with receipt flags"
//	@Failure		401	{object}	gymsdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/member/bills [get].
func (h *PortalHandler) HandleBills(w http.ResponseWriter, r *http.Request) {
	bills, err := h.BillingService.MemberBills(r.Context(), httpx.SubjectFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapAll(bills, bill))
}

// HandleReceipts handles GET /v1/member/receipts
//
//	@Summary		My receipts
//	@Tags			Member portal
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		gymsdk.Receipt			"Receipts"
//	@Failure		401	{object}	gymsdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/member/receipts [get].
func (h *PortalHandler) HandleReceipts(w http.ResponseWriter, r *http.Request) {
	rs, err := h.BillingService.MemberReceipts(r.Context(), httpx.SubjectFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapAll(rs, receipt))
}

// HandleReceipt handles GET /v1/member/receipts/{id}
//
//	@Summary		Get one of my receipts
//	@Tags			Member portal
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Receipt ID"
//	@Success		200	{object}	gymsdk.Receipt			"Receipt with bill, package and gym details"
//	@Failure		404	{object}	gymsdk.ErrorResponse	"Not found"
//	@Router			/v1/member/receipts/{id} [get].
func (h *PortalHandler) HandleReceipt(w http.ResponseWriter, r *http.Request) {
	d, err := h.BillingService.MemberReceipt(r.Context(), httpx.SubjectFromContext(r.Context()), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, receipt(d))
}

// HandleNotifications handles GET /v1/member/notifications
//
//	@Summary		My notifications
//	@Tags			Member portal
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		gymsdk.Notification		"Notifications, newest first"
//	@Failure		401	{object}	gymsdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/member/notifications [get].
func (h *PortalHandler) HandleNotifications(w http.ResponseWriter, r *http.Request) {
	ns, err := h.NotificationService.List(r.Context(), httpx.SubjectFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapAll(ns, notification))
}

// HandleMarkRead handles POST /v1/member/notifications/{id}/read
//
//	@Summary		Mark a notification read
//	@Tags			Member portal
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Notification ID"
//	@Success		204	"Marked read"
//	@Failure		404	{object}	gymsdk.ErrorResponse	"Not found"
//	@Router			/v1/member/notifications/{id}/read [post].
func (h *PortalHandler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.NotificationService.MarkRead(r.Context(), httpx.SubjectFromContext(r.Context()), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleMarkAllRead handles POST /v1/member/notifications/read-all
//
//	@Summary		Mark every notification read
//	@Tags			Member portal
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	gymsdk.MarkAllReadResponse	"Number of notifications changed"
//	@Router			/v1/member/notifications/read-all [post].
func (h *PortalHandler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.NotificationService.MarkAllRead(r.Context(), httpx.SubjectFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, gymsdk.MarkAllReadResponse{Updated: n})
}

// HandleDeleteNotification handles DELETE /v1/member/notifications/{id}
//
//	@Summary		Delete a notification
//	@Tags			Member portal
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Notification ID"
//	@Success		204	"Deleted"
//	@Failure		404	{object}	gymsdk.ErrorResponse	"Not found"
//	@Router			/v1/member/notifications/{id} [delete].
func (h *PortalHandler) HandleDeleteNotification(w http.ResponseWriter, r *http.Request) {
	if err := h.NotificationService.Delete(r.Context(), httpx.SubjectFromContext(r.Context()), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleProducts handles GET /v1/member/products
//
//	@Summary		Browse the store
//	@Description	The gym's products, best sellers first.
//	@Tags			Member portal
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		gymsdk.Product			"Products"
//	@Failure		401	{object}	gymsdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/member/products [get].
func (h *PortalHandler) HandleProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.ShopService.Catalogue(r.Context(), httpx.TenantFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapAll(products, product))
}

// HandleOrders handles GET /v1/member/orders
//
//	@Summary		My orders
//	@Tags			Member portal
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		gymsdk.Order			"Orders with items"
//	@Failure		401	{object}	gymsdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/member/orders [get].
func (h *PortalHandler) HandleOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.ShopService.ListMyOrders(r.Context(), httpx.SubjectFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapAll(orders, order))
}

// HandlePlaceOrder handles POST /v1/member/orders
//
//	@Summary		Place an order
//	@Description	Prices come from the catalogue; the member's name is taken from their record.
//	@Tags			Member portal
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gymsdk.PlaceOrderRequest	true	"Items"
//	@Success		201		{object}	gymsdk.Order				"Placed order"
//	@Failure		400		{object}	gymsdk.ErrorResponse		"Validation failed or unknown products"
//	@Failure		409		{object}	gymsdk.ErrorResponse		"Insufficient stock"
//	@Router			/v1/member/orders [post].
func (h *PortalHandler) HandlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.PlaceOrderRequest
	if !decode(w, r, &req) {
		return
	}

	o, err := h.ShopService.PlaceOrder(r.Context(), httpx.SubjectFromContext(r.Context()), itemInputs(req.Items))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, order(o))
}
