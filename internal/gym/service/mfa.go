package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
	"github.com/aussiebroadwan/gymdesk/internal/gym/store"
	"github.com/aussiebroadwan/gymdesk/pkg/cryptox"
)

const (
	backupCodeCount = 10 // Number of backup codes to generate
	backupCodeBytes = 10 // 80-bit readable codes, XXXX-XXXX-XXXX-XXXX
)

// MFAService manages TOTP for admin accounts. Members sign in with the
// e-mailed link alone.
type MFAService struct {
	Store  store.Store
	Issuer string // Issuer name shown in authenticator apps
}

// EnrollTOTP generates a TOTP secret for the admin and returns it with an
// otpauth URL. MFA is not enabled until VerifyTOTP succeeds.
func (s *MFAService) EnrollTOTP(ctx context.Context, adminID string) (domain.MFAEnrollResponse, error) {
	admin, err := s.Store.Admins().GetAdminByID(ctx, adminID)
	if err != nil {
		return domain.MFAEnrollResponse{}, fmt.Errorf("failed to get admin: %w", err)
	}
	if admin.MFAEnabled != nil {
		return domain.MFAEnrollResponse{}, ErrMFAAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: admin.Email,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return domain.MFAEnrollResponse{}, fmt.Errorf("failed to generate TOTP key: %w", err)
	}

	// Re-enrolling before verification replaces the pending secret.
	if err := s.Store.Admins().UpdateMFASecret(ctx, adminID, key.Secret()); err != nil {
		return domain.MFAEnrollResponse{}, fmt.Errorf("failed to store MFA secret: %w", err)
	}

	return domain.MFAEnrollResponse{
		Secret:  key.Secret(),
		QRCode:  key.URL(),
		Issuer:  s.Issuer,
		Account: admin.Email,
	}, nil
}

// VerifyTOTP checks the first code from the authenticator, enables MFA and
// returns a fresh set of backup codes. The codes are shown once.
func (s *MFAService) VerifyTOTP(ctx context.Context, adminID, code string) ([]string, error) {
	admin, err := s.Store.Admins().GetAdminByID(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	if admin.MFASecret == nil || *admin.MFASecret == "" {
		return nil, ErrMFANotEnrolled
	}
	if admin.MFAEnabled != nil {
		return nil, ErrMFAAlreadyEnabled
	}
	if !totp.Validate(strings.TrimSpace(code), *admin.MFASecret) {
		return nil, ErrInvalidTOTPCode
	}

	codes, err := generateBackupCodes()
	if err != nil {
		return nil, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := storeBackupCodes(ctx, tx, adminID, codes); err != nil {
			return err
		}
		if err := tx.Admins().EnableMFA(ctx, adminID); err != nil {
			return fmt.Errorf("failed to enable MFA: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return codes, nil
}

// RegenerateBackupCodes replaces every backup code after checking a TOTP code.
func (s *MFAService) RegenerateBackupCodes(ctx context.Context, adminID, totpCode string) ([]string, error) {
	if err := s.verifyTOTPCode(ctx, adminID, totpCode); err != nil {
		return nil, err
	}

	codes, err := generateBackupCodes()
	if err != nil {
		return nil, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.BackupCodes().DeleteAllBackupCodes(ctx, adminID); err != nil {
			return fmt.Errorf("failed to delete old backup codes: %w", err)
		}
		return storeBackupCodes(ctx, tx, adminID, codes)
	})
	if err != nil {
		return nil, err
	}
	return codes, nil
}

// RemoveMFA turns MFA off after checking a TOTP code.
func (s *MFAService) RemoveMFA(ctx context.Context, adminID, totpCode string) error {
	if err := s.verifyTOTPCode(ctx, adminID, totpCode); err != nil {
		return err
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.BackupCodes().DeleteAllBackupCodes(ctx, adminID); err != nil {
			return fmt.Errorf("failed to delete backup codes: %w", err)
		}
		if err := tx.Admins().DisableMFA(ctx, adminID); err != nil {
			return fmt.Errorf("failed to disable MFA: %w", err)
		}
		return nil
	})
}

func (s *MFAService) verifyTOTPCode(ctx context.Context, adminID, code string) error {
	admin, err := s.Store.Admins().GetAdminByID(ctx, adminID)
	if err != nil {
		return fmt.Errorf("failed to get admin: %w", err)
	}
	if !admin.HasMFA() {
		return ErrMFANotEnabled
	}
	if !totp.Validate(strings.TrimSpace(code), *admin.MFASecret) {
		return ErrInvalidTOTPCode
	}
	return nil
}

// checkSecondFactor accepts a current TOTP code or burns a backup code.
// It runs on the caller's transaction so the sign-in link and the backup
// code are consumed together.
func (s *MFAService) checkSecondFactor(ctx context.Context, st store.Store, admin domain.Admin, code string) (string, bool, error) {
	code = strings.TrimSpace(code)
	if totp.Validate(code, *admin.MFASecret) {
		return "otp", true, nil
	}

	ok, err := st.BackupCodes().ConsumeBackupCode(ctx, admin.ID, cryptox.FingerprintToken(cryptox.NormalizeCode(code)))
	if err != nil {
		return "", false, fmt.Errorf("failed to check backup code: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return "backup", true, nil
}

func generateBackupCodes() ([]string, error) {
	codes := make([]string, backupCodeCount)
	for i := range backupCodeCount {
		code, err := cryptox.GenerateReadableCode(backupCodeBytes)
		if err != nil {
			return nil, fmt.Errorf("failed to generate backup code: %w", err)
		}
		codes[i] = code
	}
	return codes, nil
}

// storeBackupCodes persists fingerprints of the normalized codes only.
func storeBackupCodes(ctx context.Context, tx store.Tx, adminID string, codes []string) error {
	for _, code := range codes {
		hash := cryptox.FingerprintToken(cryptox.NormalizeCode(code))
		if err := tx.BackupCodes().CreateBackupCode(ctx, adminID, hash); err != nil {
			return fmt.Errorf("failed to store backup code: %w", err)
		}
	}
	return nil
}
