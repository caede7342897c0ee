package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
	"github.com/aussiebroadwan/gymdesk/internal/gym/store"
	"github.com/aussiebroadwan/gymdesk/pkg/cryptox"
	"github.com/aussiebroadwan/gymdesk/pkg/idx"
	"github.com/aussiebroadwan/gymdesk/pkg/slogx"
)

// AdminService manages gym owner accounts and their gym settings.
type AdminService struct {
	Store store.Store

	// BootstrapToken guards POST /v1/admins. Empty disables the endpoint.
	BootstrapToken string
	Clock          Clock
}

type CreateAdminParams struct {
	Email   string
	Name    string
	Phone   string
	GymName string // optional; seeds the gym settings
}

// CheckBootstrapToken compares the presented token with the configured one.
func (s *AdminService) CheckBootstrapToken(token string) error {
	if s.BootstrapToken == "" {
		return ErrBootstrapDisabled
	}
	if token == "" || !cryptox.EqualFingerprint(cryptox.FingerprintToken(token), cryptox.FingerprintToken(s.BootstrapToken)) {
		return ErrBootstrapToken
	}
	return nil
}

// CreateAdmin registers a gym owner. A taken e-mail returns store.ErrAlreadyExists.
func (s *AdminService) CreateAdmin(ctx context.Context, p CreateAdminParams) (domain.Admin, error) {
	email := normalizeEmail(p.Email)
	name := strings.TrimSpace(p.Name)
	if !validEmail(email) {
		return domain.Admin{}, invalid("a valid email is required")
	}
	if name == "" {
		return domain.Admin{}, invalid("name is required")
	}

	now := s.Clock.now()
	admin := domain.Admin{
		ID:        idx.NewAt(now).String(),
		Email:     email,
		Name:      name,
		Phone:     strings.TrimSpace(p.Phone),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Admins().CreateAdmin(ctx, admin); err != nil {
			return err
		}
		gymName := strings.TrimSpace(p.GymName)
		if gymName == "" {
			return nil
		}
		return tx.Gyms().UpsertGym(ctx, domain.Gym{
			AdminID:   admin.ID,
			Name:      gymName,
			Email:     email,
			Phone:     admin.Phone,
			UpdatedAt: now,
		})
	})
	if err != nil {
		return domain.Admin{}, err
	}

	slogx.FromContext(ctx).Info("admin created", slog.String("admin_id", admin.ID))
	return admin, nil
}

func (s *AdminService) GetProfile(ctx context.Context, adminID string) (domain.Admin, error) {
	return s.Store.Admins().GetAdminByID(ctx, adminID)
}

// UpdateProfile changes the name and phone. Nil fields are left alone.
func (s *AdminService) UpdateProfile(ctx context.Context, adminID string, name, phone *string) (domain.Admin, error) {
	admin, err := s.Store.Admins().GetAdminByID(ctx, adminID)
	if err != nil {
		return domain.Admin{}, err
	}
	patchString(&admin.Name, name)
	patchString(&admin.Phone, phone)
	if admin.Name == "" {
		return domain.Admin{}, invalid("name is required")
	}
	if err := s.Store.Admins().UpdateAdminProfile(ctx, adminID, admin.Name, admin.Phone); err != nil {
		return domain.Admin{}, err
	}
	return s.Store.Admins().GetAdminByID(ctx, adminID)
}

// GetGym returns the gym settings, falling back to a record named after
// the owner when none were saved yet.
func (s *AdminService) GetGym(ctx context.Context, adminID string) (domain.Gym, error) {
	return gymFor(ctx, s.Store, adminID)
}

func (s *AdminService) UpsertGym(ctx context.Context, g domain.Gym) (domain.Gym, error) {
	g.Name = strings.TrimSpace(g.Name)
	g.Email = normalizeEmail(g.Email)
	g.Phone = strings.TrimSpace(g.Phone)
	g.Address = strings.TrimSpace(g.Address)
	if g.Name == "" {
		return domain.Gym{}, invalid("gym name is required")
	}
	if g.Email != "" && !validEmail(g.Email) {
		return domain.Gym{}, invalid("gym email is invalid")
	}
	g.UpdatedAt = s.Clock.now()
	if err := s.Store.Gyms().UpsertGym(ctx, g); err != nil {
		return domain.Gym{}, fmt.Errorf("save gym: %w", err)
	}
	return g, nil
}

func gymFor(ctx context.Context, st store.Store, adminID string) (domain.Gym, error) {
	g, err := st.Gyms().GetGym(ctx, adminID)
	if err == nil {
		return g, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Gym{}, err
	}
	admin, err := st.Admins().GetAdminByID(ctx, adminID)
	if err != nil {
		return domain.Gym{}, err
	}
	return domain.Gym{AdminID: adminID, Name: admin.Name + "'s Gym", Email: admin.Email, Phone: admin.Phone}, nil
}

// gymName resolves the display name used in mails and the member portal.
func gymName(ctx context.Context, st store.Store, adminID string) string {
	g, err := gymFor(ctx, st, adminID)
	if err != nil {
		return ""
	}
	return g.Name
}
