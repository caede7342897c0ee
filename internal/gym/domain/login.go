package domain

import (
	"strings"
	"time"
)

// Portal selects which account table a login link is issued against.
type Portal string

const (
	PortalAdmin  Portal = "admin"
	PortalMember Portal = "member"
)

func ParsePortal(s string) (Portal, bool) {
	switch Portal(strings.ToLower(strings.TrimSpace(s))) {
	case PortalAdmin:
		return PortalAdmin, true
	case PortalMember:
		return PortalMember, true
	}
	return "", false
}

// LinkType is the uppercase form used in sign-in URLs (type=ADMIN).
func (p Portal) LinkType() string { return strings.ToUpper(string(p)) }

// LoginToken is a single-use sign-in link. Only the SHA-256 fingerprint of
// the token is stored.
type LoginToken struct {
	ID        string
	TokenHash string
	Portal    Portal
	SubjectID string // admin or member ID
	Email     string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}
