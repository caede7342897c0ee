package http

import (
	"net/http"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
	"github.com/aussiebroadwan/gymdesk/internal/gym/service"
	"github.com/aussiebroadwan/gymdesk/pkg/gymsdk"
	"github.com/aussiebroadwan/gymdesk/pkg/httpx"
	"github.com/aussiebroadwan/gymdesk/pkg/slogx"
)

// BootstrapTokenHeader carries the operator token for POST /v1/admins.
const BootstrapTokenHeader = "X-Bootstrap-Token"

// AdminHandler serves gym owner accounts and gym settings.
type AdminHandler struct {
	AdminService *service.AdminService
}

// HandleCreate handles POST /v1/admins
//
//	@Summary		Register a gym owner
//	@Description	Creates an admin account. Requires the operator bootstrap token; disabled when none is configured.
//	@Tags			Admins
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string						true	"Operator bootstrap token"
//	@Param			request				body		gymsdk.CreateAdminRequest	true	"Owner details"
//	@Success		201					{object}	gymsdk.AdminProfile			"Created admin"
//	@Failure		400					{object}	gymsdk.ErrorResponse		"Validation failed"
//	@Failure		401					{object}	gymsdk.ErrorResponse		"Invalid bootstrap token"
//	@Failure		404					{object}	gymsdk.ErrorResponse		"Bootstrap disabled"
//	@Failure		409					{object}	gymsdk.ErrorResponse		"E-mail already registered"
//	@Router			/v1/admins [post].
func (h *AdminHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.AdminService.CheckBootstrapToken(r.Header.Get(BootstrapTokenHeader)); err != nil {
		log.Warn("admin bootstrap rejected", "err", err)
		writeError(w, r, err)
		return
	}

	var req gymsdk.CreateAdminRequest
	if !decode(w, r, &req) {
		return
	}

	admin, err := h.AdminService.CreateAdmin(ctx, service.CreateAdminParams{
		Email:   req.Email,
		Name:    req.Name,
		Phone:   req.Phone,
		GymName: req.GymName,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, adminProfile(admin))
}

// HandleGetProfile handles GET /v1/admin/profile
//
//	@Summary		Get admin profile
//	@Tags			Admins
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	gymsdk.AdminProfile		"Profile"
//	@Failure		401	{object}	gymsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		403	{object}	gymsdk.ErrorResponse	"Not an admin session"
//	@Router			/v1/admin/profile [get].
func (h *AdminHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	admin, err := h.AdminService.GetProfile(r.Context(), httpx.SubjectFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, adminProfile(admin))
}

// HandleUpdateProfile handles PATCH /v1/admin/profile
//
//	@Summary		Update admin profile
//	@Description	Changes the name and phone. Omitted fields are left alone.
//	@Tags			Admins
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gymsdk.UpdateProfileRequest	true	"Name and phone"
//	@Success		200		{object}	gymsdk.AdminProfile			"Updated profile"
//	@Failure		400		{object}	gymsdk.ErrorResponse		"Validation failed"
//	@Failure		401		{object}	gymsdk.ErrorResponse		"Invalid or missing access token"
//	@Router			/v1/admin/profile [patch].
func (h *AdminHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.UpdateProfileRequest
	if !decode(w, r, &req) {
		return
	}

	admin, err := h.AdminService.UpdateProfile(r.Context(), httpx.SubjectFromContext(r.Context()), req.Name, req.Phone)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, adminProfile(admin))
}

// HandleGetGym handles GET /v1/admin/gym
//
//	@Summary		Get gym settings
//	@Description	Returns the gym shown on receipts and e-mails. Defaults to the owner's name until saved.
//	@Tags			Admins
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	gymsdk.GymSettings		"Gym settings"
//	@Failure		401	{object}	gymsdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/admin/gym [get].
func (h *AdminHandler) HandleGetGym(w http.ResponseWriter, r *http.Request) {
	gym, err := h.AdminService.GetGym(r.Context(), httpx.SubjectFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, gymSettings(gym))
}

// HandleUpdateGym handles PUT /v1/admin/gym
//
//	@Summary		Save gym settings
//	@Tags			Admins
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gymsdk.GymSettings		true	"Gym name, e-mail, phone and address"
//	@Success		200		{object}	gymsdk.GymSettings		"Saved settings"
//	@Failure		400		{object}	gymsdk.ErrorResponse	"Validation failed"
//	@Failure		401		{object}	gymsdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/admin/gym [put].
func (h *AdminHandler) HandleUpdateGym(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.GymSettings
	if !decode(w, r, &req) {
		return
	}

	gym, err := h.AdminService.UpsertGym(r.Context(), domain.Gym{
		AdminID: httpx.SubjectFromContext(r.Context()),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, gymSettings(gym))
}
