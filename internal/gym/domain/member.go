package domain

import (
	"strings"
	"time"
)

type MemberStatus string

const (
	MemberActive    MemberStatus = "active"
	MemberInactive  MemberStatus = "inactive"
	MemberSuspended MemberStatus = "suspended"
)

// ParseMemberStatus accepts any casing ("Active", "ACTIVE").
func ParseMemberStatus(s string) (MemberStatus, bool) {
	switch MemberStatus(strings.ToLower(strings.TrimSpace(s))) {
	case MemberActive:
		return MemberActive, true
	case MemberInactive:
		return MemberInactive, true
	case MemberSuspended:
		return MemberSuspended, true
	}
	return "", false
}

type Member struct {
	ID        string
	AdminID   string
	Name      string
	Email     string
	Phone     string
	Status    MemberStatus
	JoinDate  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
