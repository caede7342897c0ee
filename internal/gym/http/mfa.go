package http

import (
	"net/http"

	"github.com/aussiebroadwan/gymdesk/internal/gym/service"
	"github.com/aussiebroadwan/gymdesk/pkg/gymsdk"
	"github.com/aussiebroadwan/gymdesk/pkg/httpx"
	"github.com/aussiebroadwan/gymdesk/pkg/slogx"
)

// MFAHandler handles the admin TOTP endpoints.
type MFAHandler struct {
	MFAService *service.MFAService
}

// HandleEnroll handles POST /v1/admin/mfa/totp/enroll
//
//	@Summary		Enroll in TOTP MFA
//	@Description	Generates a TOTP secret for the admin and returns it with an otpauth URL for QR codes.
//	@Tags			MFA
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	gymsdk.TOTPEnrollResponse	"TOTP secret and otpauth URL"
//	@Failure		400	{object}	gymsdk.ErrorResponse		"MFA already enabled"
//	@Failure		401	{object}	gymsdk.ErrorResponse		"Invalid or missing access token"
//	@Failure		500	{object}	gymsdk.ErrorResponse		"Internal server error"
//	@Router			/v1/admin/mfa/totp/enroll [post].
func (h *MFAHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	adminID := httpx.SubjectFromContext(ctx)

	enroll, err := h.MFAService.EnrollTOTP(ctx, adminID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, gymsdk.TOTPEnrollResponse{
		Secret:     enroll.Secret,
		OTPAuthURL: enroll.QRCode,
		Issuer:     enroll.Issuer,
		Account:    enroll.Account,
	})
}

// HandleVerify handles POST /v1/admin/mfa/totp/verify
//
//	@Summary		Verify TOTP code and enable MFA
//	@Description	Verifies the first code from the authenticator and enables MFA. Returns backup codes once.
//	@Tags			MFA
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gymsdk.TOTPCodeRequest		true	"TOTP code"
//	@Success		200		{object}	gymsdk.BackupCodesResponse	"Backup codes (shown once)"
//	@Failure		400		{object}	gymsdk.ErrorResponse		"Invalid code or MFA state"
//	@Failure		401		{object}	gymsdk.ErrorResponse		"Invalid or missing access token"
//	@Router			/v1/admin/mfa/totp/verify [post].
func (h *MFAHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	adminID := httpx.SubjectFromContext(ctx)

	var req gymsdk.TOTPCodeRequest
	if !decode(w, r, &req) {
		return
	}

	codes, err := h.MFAService.VerifyTOTP(ctx, adminID, req.Code)
	if err != nil {
		log.Warn("TOTP verification failed", "admin_id", adminID, "err", err)
		writeError(w, r, err)
		return
	}

	log.Info("MFA enabled", "admin_id", adminID)
	httpx.WriteJSON(w, http.StatusOK, gymsdk.BackupCodesResponse{BackupCodes: codes})
}

// HandleDisable handles POST /v1/admin/mfa/totp/disable
//
//	@Summary		Disable MFA
//	@Description	Turns MFA off and deletes the backup codes. Requires a current TOTP code.
//	@Tags			MFA
//	@Security		BearerAuth
//	@Accept			json
//	@Param			request	body	gymsdk.TOTPCodeRequest	true	"TOTP code"
//	@Success		204		"MFA disabled"
//	@Failure		400		{object}	gymsdk.ErrorResponse	"Invalid code or MFA not enabled"
//	@Failure		401		{object}	gymsdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/admin/mfa/totp/disable [post].
func (h *MFAHandler) HandleDisable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	adminID := httpx.SubjectFromContext(ctx)

	var req gymsdk.TOTPCodeRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.MFAService.RemoveMFA(ctx, adminID, req.Code); err != nil {
		writeError(w, r, err)
		return
	}

	slogx.FromContext(ctx).Info("MFA disabled", "admin_id", adminID)
	w.WriteHeader(http.StatusNoContent)
}

// HandleRegenerateBackupCodes handles POST /v1/admin/mfa/backup-codes
//
//	@Summary		Regenerate backup codes
//	@Description	Replaces every backup code. Requires a current TOTP code.
//	@Tags			MFA
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gymsdk.TOTPCodeRequest		true	"TOTP code"
//	@Success		200		{object}	gymsdk.BackupCodesResponse	"New backup codes"
//	@Failure		400		{object}	gymsdk.ErrorResponse		"Invalid code or MFA not enabled"
//	@Failure		401		{object}	gymsdk.ErrorResponse		"Invalid or missing access token"
//	@Router			/v1/admin/mfa/backup-codes [post].
func (h *MFAHandler) HandleRegenerateBackupCodes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	adminID := httpx.SubjectFromContext(ctx)

	var req gymsdk.TOTPCodeRequest
	if !decode(w, r, &req) {
		return
	}

	codes, err := h.MFAService.RegenerateBackupCodes(ctx, adminID, req.Code)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, gymsdk.BackupCodesResponse{BackupCodes: codes})
}
