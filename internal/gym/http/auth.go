package http

import (
	"net/http"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
	"github.com/aussiebroadwan/gymdesk/internal/gym/service"
	"github.com/aussiebroadwan/gymdesk/pkg/gymsdk"
	"github.com/aussiebroadwan/gymdesk/pkg/httpx"
	"github.com/aussiebroadwan/gymdesk/pkg/slogx"
)

// AuthHandler serves the passwordless sign-in flow.
type AuthHandler struct {
	LoginService *service.LoginService
}

// HandleRequestLink handles POST /v1/auth/link
//
//	@Summary		Request a sign-in link
//	@Description	E-mails a single-use sign-in link to the admin or member with this address.
//	@Description	The response is the same whether or not the account exists.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gymsdk.RequestLinkRequest	true	"E-mail and portal type (ADMIN or MEMBER)"
//	@Success		202		{object}	gymsdk.MessageResponse		"Link sent if the account exists"
//	@Failure		400		{object}	gymsdk.ErrorResponse		"Invalid e-mail or portal type"
//	@Failure		429		{object}	gymsdk.ErrorResponse		"Rate limit exceeded"
//	@Router			/v1/auth/link [post].
func (h *AuthHandler) HandleRequestLink(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.RequestLinkRequest
	if !decode(w, r, &req) {
		return
	}

	portal, ok := domain.ParsePortal(req.Type)
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, gymsdk.ErrorCodeInvalidRequest, "type must be ADMIN or MEMBER")
		return
	}

	if err := h.LoginService.RequestLink(r.Context(), portal, req.Email); err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusAccepted, gymsdk.MessageResponse{
		Message: "If the account exists, a sign-in link has been sent",
	})
}

// HandleExchange handles POST /v1/auth/exchange
//
//	@Summary		Exchange a sign-in token for a session
//	@Description	Consumes the token from a sign-in link and returns a signed session token.
//	@Description	Admins with MFA enabled must also send a TOTP or backup code in "otp".
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gymsdk.ExchangeRequest	true	"Token, portal type and optional one-time code"
//	@Success		200		{object}	gymsdk.SessionResponse	"Session token and account"
//	@Failure		400		{object}	gymsdk.ErrorResponse	"Invalid, expired or used link, or wrong one-time code"
//	@Failure		401		{object}	gymsdk.ErrorResponse	"One-time code required"
//	@Failure		403		{object}	gymsdk.ErrorResponse	"Account suspended"
//	@Failure		429		{object}	gymsdk.ErrorResponse	"Rate limit exceeded"
//	@Router			/v1/auth/exchange [post].
func (h *AuthHandler) HandleExchange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req gymsdk.ExchangeRequest
	if !decode(w, r, &req) {
		return
	}

	portal, ok := domain.ParsePortal(req.Type)
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, gymsdk.ErrorCodeInvalidRequest, "type must be ADMIN or MEMBER")
		return
	}

	sess, err := h.LoginService.Exchange(ctx, portal, req.Token, req.OTP)
	if err != nil {
		log.Warn("sign-in exchange failed", "portal", portal, "err", err)
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sessionResponse(sess))
}

// HandleSession handles GET /v1/session
//
//	@Summary		Current session
//	@Description	Returns the identity carried by the bearer token.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	gymsdk.SessionUser		"Session identity"
//	@Failure		401	{object}	gymsdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/session [get].
func (h *AuthHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	claims, ok := httpx.ClaimsFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, gymsdk.ErrorCodeInvalidToken, "missing session")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sessionUser(claims))
}
