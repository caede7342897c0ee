package service

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/gymdesk/internal/gym/report"
)

var (
	// ErrInvalidInput wraps every validation failure; the wrapped message
	// is safe to show to the caller.
	ErrInvalidInput = errors.New("invalid input")

	ErrLoginTokenInvalid = errors.New("sign-in link is invalid, expired or already used")
	ErrAccountSuspended  = errors.New("account is suspended")
	ErrSessionRevoked    = errors.New("session is no longer valid")
	ErrMFARequired       = errors.New("one-time code required")
	ErrInvalidTOTPCode   = errors.New("invalid one-time code")
	ErrMFANotEnabled     = errors.New("MFA not enabled for this account")
	ErrMFAAlreadyEnabled = errors.New("MFA already enabled for this account")
	ErrMFANotEnrolled    = errors.New("MFA not enrolled, enroll first")
	ErrBootstrapDisabled = errors.New("admin bootstrap is disabled")
	ErrBootstrapToken    = errors.New("invalid bootstrap token")

	ErrNoRecipients      = errors.New("no members found")
	ErrProductsNotFound  = errors.New("some products not found")
	ErrInvalidReportType = report.ErrInvalidReportType
)

// invalid builds an ErrInvalidInput carrying a caller-facing message.
func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// StockError reports a product that cannot cover the requested quantity.
type StockError struct {
	Product   string
	Available int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("Insufficient stock for %s. Available: %d", e.Product, e.Available)
}
