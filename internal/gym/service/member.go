package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
	"github.com/aussiebroadwan/gymdesk/internal/gym/store"
	"github.com/aussiebroadwan/gymdesk/pkg/idx"
	"github.com/aussiebroadwan/gymdesk/pkg/slogx"
)

type MemberService struct {
	Store store.Store
	Clock Clock
}

type MemberInput struct {
	Name     string
	Email    string
	Phone    string
	Status   string // defaults to active
	JoinDate *time.Time
}

// MemberPatch updates only the non-nil fields.
type MemberPatch struct {
	Name     *string
	Email    *string
	Phone    *string
	Status   *string
	JoinDate *time.Time
}

// MemberProfile is what a member sees about themselves.
type MemberProfile struct {
	domain.Member
	GymName string
}

func (s *MemberService) Add(ctx context.Context, adminID string, in MemberInput) (domain.Member, error) {
	now := s.Clock.now()
	m := domain.Member{
		ID:        idx.NewAt(now).String(),
		AdminID:   adminID,
		Name:      strings.TrimSpace(in.Name),
		Email:     normalizeEmail(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Status:    domain.MemberActive,
		JoinDate:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Status != "" {
		st, ok := domain.ParseMemberStatus(in.Status)
		if !ok {
			return domain.Member{}, invalid("status must be active, inactive or suspended")
		}
		m.Status = st
	}
	if in.JoinDate != nil {
		m.JoinDate = in.JoinDate.UTC()
	}
	if err := validateMember(m); err != nil {
		return domain.Member{}, err
	}

	if err := s.Store.Members().CreateMember(ctx, m); err != nil {
		return domain.Member{}, err
	}
	slogx.FromContext(ctx).Info("member added", slog.String("member_id", m.ID))
	return m, nil
}

func (s *MemberService) List(ctx context.Context, adminID string) ([]domain.Member, error) {
	return s.Store.Members().ListMembers(ctx, adminID)
}

func (s *MemberService) Get(ctx context.Context, adminID, id string) (domain.Member, error) {
	return s.Store.Members().GetMember(ctx, adminID, id)
}

func (s *MemberService) Update(ctx context.Context, adminID, id string, p MemberPatch) (domain.Member, error) {
	m, err := s.Store.Members().GetMember(ctx, adminID, id)
	if err != nil {
		return domain.Member{}, err
	}
	patchString(&m.Name, p.Name)
	patchString(&m.Phone, p.Phone)
	if p.Email != nil {
		m.Email = normalizeEmail(*p.Email)
	}
	if p.Status != nil {
		st, ok := domain.ParseMemberStatus(*p.Status)
		if !ok {
			return domain.Member{}, invalid("status must be active, inactive or suspended")
		}
		m.Status = st
	}
	if p.JoinDate != nil {
		m.JoinDate = p.JoinDate.UTC()
	}
	if err := validateMember(m); err != nil {
		return domain.Member{}, err
	}
	m.UpdatedAt = s.Clock.now()

	if err := s.Store.Members().UpdateMember(ctx, m); err != nil {
		return domain.Member{}, err
	}
	return m, nil
}

// Delete removes the member with their bills, receipts and notifications.
// Orders survive with the member name only.
func (s *MemberService) Delete(ctx context.Context, adminID, id string) error {
	if err := s.Store.Members().DeleteMember(ctx, adminID, id); err != nil {
		return err
	}
	slogx.FromContext(ctx).Info("member deleted", slog.String("member_id", id))
	return nil
}

// CheckSession confirms a member session still belongs to an active member
// of the tenant it was issued for.
func (s *MemberService) CheckSession(ctx context.Context, memberID, tenantID string) error {
	m, err := s.Store.Members().GetMemberByID(ctx, memberID)
	if err != nil {
		return mapMissing(err, ErrSessionRevoked)
	}
	if m.AdminID != tenantID {
		return ErrSessionRevoked
	}
	if m.Status == domain.MemberSuspended {
		return ErrAccountSuspended
	}
	return nil
}

func (s *MemberService) Profile(ctx context.Context, memberID string) (MemberProfile, error) {
	m, err := s.Store.Members().GetMemberByID(ctx, memberID)
	if err != nil {
		return MemberProfile{}, err
	}
	return MemberProfile{Member: m, GymName: gymName(ctx, s.Store, m.AdminID)}, nil
}

// UpdateProfile lets a member change their name and phone. E-mail and
// status stay under the admin's control.
func (s *MemberService) UpdateProfile(ctx context.Context, memberID string, name, phone *string) (MemberProfile, error) {
	m, err := s.Store.Members().GetMemberByID(ctx, memberID)
	if err != nil {
		return MemberProfile{}, err
	}
	patchString(&m.Name, name)
	patchString(&m.Phone, phone)
	if m.Name == "" {
		return MemberProfile{}, invalid("name is required")
	}
	if err := s.Store.Members().UpdateMemberContact(ctx, memberID, m.Name, m.Phone); err != nil {
		return MemberProfile{}, err
	}
	return s.Profile(ctx, memberID)
}

func validateMember(m domain.Member) error {
	switch {
	case m.Name == "":
		return invalid("name is required")
	case !validEmail(m.Email):
		return invalid("a valid email is required")
	}
	return nil
}
