package domain

import "time"

// Admin is a gym owner. Every tenant-scoped record hangs off an admin ID.
type Admin struct {
	ID         string
	Email      string
	Name       string
	Phone      string
	MFAEnabled *time.Time // Timestamp when TOTP was enabled (nullable)
	MFASecret  *string    // TOTP secret (nullable, base32 encoded)
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasMFA reports whether the admin completed TOTP enrolment.
func (a Admin) HasMFA() bool {
	return a.MFAEnabled != nil && a.MFASecret != nil && *a.MFASecret != ""
}

// Gym holds the public details an admin shows on receipts and mails.
type Gym struct {
	AdminID   string
	Name      string
	Email     string
	Phone     string
	Address   string
	UpdatedAt time.Time
}

type MFAEnrollResponse struct {
	Secret  string // Base32 encoded secret for TOTP
	QRCode  string // otpauth:// URL for QR code generation
	Issuer  string
	Account string
}
