package http

import (
	"net/http"

	"github.com/aussiebroadwan/gymdesk/internal/gym/service"
	"github.com/aussiebroadwan/gymdesk/pkg/gymsdk"
	"github.com/aussiebroadwan/gymdesk/pkg/httpx"
)

// MembersHandler serves the admin's member records.
type MembersHandler struct {
	MemberService *service.MemberService
}

// HandleList handles GET /v1/admin/members
//
//	@Summary		List members
//	@Description	Lists the gym's members, most recent join date first.
//	@Tags			Members
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		gymsdk.Member			"Members"
//	@Failure		401	{object}	gymsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		403	{object}	gymsdk.ErrorResponse	"Not an admin session"
//	@Router			/v1/admin/members [get].
func (h *MembersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	members, err := h.MemberService.List(r.Context(), httpx.SubjectFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapAll(members, member))
}

// HandleCreate handles POST /v1/admin/members
//
//	@Summary		Add a member
//	@Description	Status defaults to active and join date to now.
//	@Tags			Members
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gymsdk.CreateMemberRequest	true	"Member details"
//	@Success		201		{object}	gymsdk.Member				"Created member"
//	@Failure		400		{object}	gymsdk.ErrorResponse		"Validation failed"
//	@Failure		409		{object}	gymsdk.ErrorResponse		"E-mail already registered"
//	@Router			/v1/admin/members [post].
func (h *MembersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.CreateMemberRequest
	if !decode(w, r, &req) {
		return
	}

	m, err := h.MemberService.Add(r.Context(), httpx.SubjectFromContext(r.Context()), service.MemberInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Status:   req.Status,
		JoinDate: req.JoinDate,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, member(m))
}

// HandleGet handles GET /v1/admin/members/{id}
//
//	@Summary		Get a member
//	@Tags			Members
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Member ID"
//	@Success		200	{object}	gymsdk.Member			"Member"
//	@Failure		404	{object}	gymsdk.ErrorResponse	"Not found"
//	@Router			/v1/admin/members/{id} [get].
func (h *MembersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	m, err := h.MemberService.Get(r.Context(), httpx.SubjectFromContext(r.Context()), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, member(m))
}

// HandleUpdate handles PATCH /v1/admin/members/{id}
//
//	@Summary		Update a member
//	@Tags			Members
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Member ID"
//	@Param			request	body		gymsdk.UpdateMemberRequest	true	"Fields to change"
//	@Success		200		{object}	gymsdk.Member				"Updated member"
//	@Failure		400		{object}	gymsdk.ErrorResponse		"Validation failed"
//	@Failure		404		{object}	gymsdk.ErrorResponse		"Not found"
//	@Failure		409		{object}	gymsdk.ErrorResponse		"E-mail already registered"
//	@Router			/v1/admin/members/{id} [patch].
func (h *MembersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.UpdateMemberRequest
	if !decode(w, r, &req) {
		return
	}

	m, err := h.MemberService.Update(r.Context(), httpx.SubjectFromContext(r.Context()), r.PathValue("id"), service.MemberPatch{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Status:   req.Status,
		JoinDate: req.JoinDate,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, member(m))
}

// HandleDelete handles DELETE /v1/admin/members/{id}
//
//	@Summary		Delete a member
//	@Description	Deletes the member with their bills, receipts and notifications. Orders keep the member name.
//	@Tags			Members
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Member ID"
//	@Success		204	"Deleted"
//	@Failure		404	{object}	gymsdk.ErrorResponse	"Not found"
//	@Router			/v1/admin/members/{id} [delete].
func (h *MembersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.MemberService.Delete(r.Context(), httpx.SubjectFromContext(r.Context()), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PackagesHandler serves billing plans.
type PackagesHandler struct {
	PackageService *service.PackageService
}

// HandleList handles GET /v1/admin/packages
//
//	@Summary		List packages
//	@Tags			Packages
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		gymsdk.Package			"Packages, newest first"
//	@Failure		401	{object}	gymsdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/admin/packages [get].
func (h *PackagesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	pkgs, err := h.PackageService.List(r.Context(), httpx.SubjectFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapAll(pkgs, pkg))
}

// HandleCreate handles POST /v1/admin/packages
//
//	@Summary		Create a package
//	@Tags			Packages
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gymsdk.CreatePackageRequest	true	"Package details"
//	@Success		201		{object}	gymsdk.Package				"Created package"
//	@Failure		400		{object}	gymsdk.ErrorResponse		"Validation failed"
//	@Router			/v1/admin/packages [post].
func (h *PackagesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.CreatePackageRequest
	if !decode(w, r, &req) {
		return
	}

	p, err := h.PackageService.Create(r.Context(), httpx.SubjectFromContext(r.Context()), service.PackageInput{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		BillingCycle: req.BillingCycle,
		Features:     req.Features,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, pkg(p))
}

// HandleUpdate handles PATCH /v1/admin/packages/{id}
//
//	@Summary		Update a package
//	@Tags			Packages
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Package ID"
//	@Param			request	body		gymsdk.UpdatePackageRequest	true	"Fields to change"
//	@Success		200		{object}	gymsdk.Package				"Updated package"
//	@Failure		400		{object}	gymsdk.ErrorResponse		"Validation failed"
//	@Failure		404		{object}	gymsdk.ErrorResponse		"Not found"
//	@Router			/v1/admin/packages/{id} [patch].
func (h *PackagesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.UpdatePackageRequest
	if !decode(w, r, &req) {
		return
	}

	p, err := h.PackageService.Update(r.Context(), httpx.SubjectFromContext(r.Context()), r.PathValue("id"), service.PackagePatch{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		BillingCycle: req.BillingCycle,
		Features:     req.Features,
		IsActive:     req.IsActive,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pkg(p))
}

// HandleDelete handles DELETE /v1/admin/packages/{id}
//
//	@Summary		Delete a package
//	@Description	Bills keep their amount and lose the package link.
//	@Tags			Packages
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Package ID"
//	@Success		204	"Deleted"
//	@Failure		404	{object}	gymsdk.ErrorResponse	"Not found"
//	@Router			/v1/admin/packages/{id} [delete].
func (h *PackagesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.PackageService.Delete(r.Context(), httpx.SubjectFromContext(r.Context()), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
